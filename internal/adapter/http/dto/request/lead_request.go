package request

import "github.com/Fusion-Data-Company/appredding-sub009/internal/domain/entities"

// LeadQualifyRequest is the intake-form payload. Every field is optional:
// scoring treats missing data as a zero contribution, so there is no binding
// validation here.
type LeadQualifyRequest struct {
	PeakDemand       float64 `json:"peak_demand"`
	MonthlyUsage     float64 `json:"monthly_usage"`
	RateSchedule     string  `json:"rate_schedule"`
	EstimatedSavings float64 `json:"estimated_savings"`
	CompanyName      string  `json:"company_name"`
	Industry         string  `json:"industry"`
	Email            string  `json:"email"`
	Phone            string  `json:"phone"`
}

func (r LeadQualifyRequest) ToLeadData() entities.LeadData {
	return entities.LeadData{
		PeakDemand:       r.PeakDemand,
		MonthlyUsage:     r.MonthlyUsage,
		RateSchedule:     r.RateSchedule,
		EstimatedSavings: r.EstimatedSavings,
		CompanyName:      r.CompanyName,
		Industry:         r.Industry,
		Email:            r.Email,
		Phone:            r.Phone,
	}
}
