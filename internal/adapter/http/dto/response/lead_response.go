package response

import (
	"time"

	"github.com/Fusion-Data-Company/appredding-sub009/internal/domain/entities"
)

type QualifiedLeadResponse struct {
	LeadID        string    `json:"lead_id"`
	Level         string    `json:"level"`
	Score         int       `json:"score"`
	Priority      string    `json:"priority"`
	ResponseTime  string    `json:"response_time"`
	CloseRate     int       `json:"close_rate"`
	AssignedTrack string    `json:"assigned_track"`
	NextActions   []string  `json:"next_actions"`
	CompanyName   string    `json:"company_name,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

func FromQualifiedLead(l entities.QualifiedLead) QualifiedLeadResponse {
	return QualifiedLeadResponse{
		LeadID:        l.ID,
		Level:         string(l.Result.Level),
		Score:         l.Result.Score,
		Priority:      string(l.Result.Priority),
		ResponseTime:  l.Result.ResponseTime,
		CloseRate:     l.Result.CloseRate,
		AssignedTrack: l.Result.AssignedTrack,
		NextActions:   l.Result.NextActions,
		CompanyName:   l.Lead.CompanyName,
		CreatedAt:     l.CreatedAt,
	}
}
