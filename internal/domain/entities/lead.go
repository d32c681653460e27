package entities

import "time"

// QualificationLevel is the lead's qualification bucket.
type QualificationLevel string

const (
	QualificationLevelEmergency QualificationLevel = "emergency"
	QualificationLevelStrategic QualificationLevel = "strategic"
	QualificationLevelEducation QualificationLevel = "education"
)

// LeadPriority drives sales follow-up ordering.
type LeadPriority string

const (
	LeadPriorityCritical LeadPriority = "critical"
	LeadPriorityHigh     LeadPriority = "high"
	LeadPriorityMedium   LeadPriority = "medium"
	LeadPriorityLow      LeadPriority = "low"
)

// LeadData is the raw lead record collected by the intake form.
//
// Every field is optional: scoring degrades gracefully, absent fields simply
// contribute zero to the total. Industry is free text matched by substring.

type LeadData struct {
	PeakDemand       float64 `json:"peak_demand"`       // kW
	MonthlyUsage     float64 `json:"monthly_usage"`     // kWh
	RateSchedule     string  `json:"rate_schedule"`     // e.g. "B-20", "E-19"
	EstimatedSavings float64 `json:"estimated_savings"` // annual, currency units
	CompanyName      string  `json:"company_name"`
	Industry         string  `json:"industry"`
	Email            string  `json:"email"`
	Phone            string  `json:"phone"`
}

// QualificationResult is the scored, tier-mapped outcome for a lead.
//
// Level, Priority, ResponseTime and CloseRate are a deterministic function of
// Score alone. NextActions is the fixed, ordered playbook for the tier.

type QualificationResult struct {
	Level         QualificationLevel `json:"level"`
	Score         int                `json:"score"` // 0-100
	Priority      LeadPriority       `json:"priority"`
	ResponseTime  string             `json:"response_time"` // SLA, human readable
	CloseRate     int                `json:"close_rate"`    // percentage
	AssignedTrack string             `json:"assigned_track"`
	NextActions   []string           `json:"next_actions"`
}

// QualifiedLead is the persisted lead record.
//
// Storage model (DynamoDB):
//   - PK: id

type QualifiedLead struct {
	ID        string              `json:"id"`
	Lead      LeadData            `json:"lead"`
	Result    QualificationResult `json:"result"`
	CreatedAt time.Time           `json:"created_at"`
}
