package usecase

import (
	"strings"

	"github.com/Fusion-Data-Company/appredding-sub009/internal/domain/entities"
)

// Lead scoring weights. The four sub-scores top out at 40+30+15+15 = 100, so
// the final clamp only guards against future table edits.
const maxLeadScore = 100

// rateScheduleScores maps utility rate schedules to their sub-score. Any other
// non-empty schedule is worth 5 points.
var rateScheduleScores = map[string]int{
	"B-20": 15,
	"E-19": 13,
	"B-19": 12,
	"B-10": 10,
}

// industryScores is iterated in order: the first keyword contained in the
// lead's industry text wins, so ordering breaks ties when several match.
var industryScores = []struct {
	keyword string
	points  int
}{
	{"cold storage", 15},
	{"manufacturing", 14},
	{"medical", 13},
	{"agriculture", 12},
	{"data center", 15},
	{"warehouse", 11},
}

// qualificationTier bundles everything derived from the score band.
type qualificationTier struct {
	minScore      int
	level         entities.QualificationLevel
	priority      entities.LeadPriority
	responseTime  string
	closeRate     int
	assignedTrack string
	nextActions   []string
}

// qualificationTiers is evaluated high to low; the first band whose minScore
// is met wins.
var qualificationTiers = []qualificationTier{
	{
		minScore:      75,
		level:         entities.QualificationLevelEmergency,
		priority:      entities.LeadPriorityCritical,
		responseTime:  "4 hours",
		closeRate:     67,
		assignedTrack: "Emergency Response – Priority Track",
		nextActions: []string{
			"Call lead within the 4-hour SLA window",
			"Schedule an on-site load assessment",
			"Pull 12 months of interval data from the utility",
			"Prepare a peak-shaving savings projection",
			"Assign a senior energy consultant",
		},
	},
	{
		minScore:      50,
		level:         entities.QualificationLevelStrategic,
		priority:      entities.LeadPriorityHigh,
		responseTime:  "Next business day",
		closeRate:     41,
		assignedTrack: "Strategic Planning – 7-Day Nurture",
		nextActions: []string{
			"Send the commercial solar ROI overview",
			"Book a discovery call within two business days",
			"Request a copy of a recent utility bill",
			"Enroll in the 7-day nurture sequence",
			"Flag for weekly pipeline review",
		},
	},
	{
		minScore:      30,
		level:         entities.QualificationLevelEducation,
		priority:      entities.LeadPriorityMedium,
		responseTime:  "3-5 business days",
		closeRate:     23,
		assignedTrack: "Education Track – 21-Day Sequence",
		nextActions: []string{
			"Enroll in the 21-day education sequence",
			"Send the solar basics guide",
			"Invite to the monthly webinar",
			"Tag for quarterly rate-change alerts",
			"Re-score after the next form submission",
		},
	},
	{
		minScore:      0,
		level:         entities.QualificationLevelEducation,
		priority:      entities.LeadPriorityLow,
		responseTime:  "3-5 business days",
		closeRate:     23,
		assignedTrack: "Education Track – 21-Day Sequence",
		nextActions: []string{
			"Enroll in the 21-day education sequence",
			"Send the solar basics guide",
			"Invite to the monthly webinar",
			"Tag for quarterly rate-change alerts",
			"Re-score after the next form submission",
		},
	},
}

// ComputeLeadScore sums the four weighted sub-scores and clamps to 100.
// Absent fields contribute 0; there is no error path.
func ComputeLeadScore(lead entities.LeadData) int {
	score := demandScore(lead.PeakDemand) +
		savingsScore(lead.EstimatedSavings) +
		rateScheduleScore(lead.RateSchedule) +
		industryScore(lead.Industry)
	if score > maxLeadScore {
		return maxLeadScore
	}
	return score
}

// QualifyLead maps a lead to its tier. Pure function, no side effects.
func QualifyLead(lead entities.LeadData) entities.QualificationResult {
	score := ComputeLeadScore(lead)
	for _, tier := range qualificationTiers {
		if score >= tier.minScore {
			return entities.QualificationResult{
				Level:         tier.level,
				Score:         score,
				Priority:      tier.priority,
				ResponseTime:  tier.responseTime,
				CloseRate:     tier.closeRate,
				AssignedTrack: tier.assignedTrack,
				NextActions:   append([]string(nil), tier.nextActions...),
			}
		}
	}
	// Unreachable: the last tier's minScore is 0 and scores are never negative.
	return entities.QualificationResult{}
}

func demandScore(peakDemandKW float64) int {
	switch {
	case peakDemandKW > 500:
		return 40
	case peakDemandKW > 300:
		return 30
	case peakDemandKW > 150:
		return 20
	case peakDemandKW > 0:
		return 10
	default:
		return 0
	}
}

func savingsScore(estimatedSavings float64) int {
	switch {
	case estimatedSavings > 80000:
		return 30
	case estimatedSavings > 50000:
		return 25
	case estimatedSavings > 30000:
		return 20
	case estimatedSavings > 0:
		return 10
	default:
		return 0
	}
}

func rateScheduleScore(schedule string) int {
	schedule = strings.TrimSpace(schedule)
	if schedule == "" {
		return 0
	}
	if pts, ok := rateScheduleScores[schedule]; ok {
		return pts
	}
	return 5
}

func industryScore(industry string) int {
	industry = strings.ToLower(strings.TrimSpace(industry))
	if industry == "" {
		return 0
	}
	for _, entry := range industryScores {
		if strings.Contains(industry, entry.keyword) {
			return entry.points
		}
	}
	return 0
}
