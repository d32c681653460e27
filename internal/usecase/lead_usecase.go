package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/Fusion-Data-Company/appredding-sub009/internal/domain/entities"
	"github.com/Fusion-Data-Company/appredding-sub009/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrLeadNotFound  = errors.New("lead not found")
	ErrInvalidLeadID = errors.New("invalid lead id")
)

// ILeadUseCase exposes lead qualification operations.
//
// Qualify scores the lead, persists the qualified record and forwards it to
// the CRM intake hook. Scoring itself never fails: missing or malformed lead
// fields degrade to zero contribution.

type ILeadUseCase interface {
	Qualify(ctx context.Context, lead entities.LeadData) (entities.QualifiedLead, error)
	GetByID(ctx context.Context, id string) (entities.QualifiedLead, error)
}

type LeadUseCase struct {
	repo   interfaces.ILeadRepository
	intake interfaces.ILeadIntakeGateway
}

var _ ILeadUseCase = (*LeadUseCase)(nil)

func NewLeadUseCase(repo interfaces.ILeadRepository, intake interfaces.ILeadIntakeGateway) *LeadUseCase {
	return &LeadUseCase{repo: repo, intake: intake}
}

func (u *LeadUseCase) Qualify(ctx context.Context, lead entities.LeadData) (entities.QualifiedLead, error) {
	result := QualifyLead(lead)
	log.Printf("[lead][usecase] qualified company=%q score=%d level=%s priority=%s", lead.CompanyName, result.Score, result.Level, result.Priority)

	qualified := entities.QualifiedLead{
		ID:        uuid.NewString(),
		Lead:      lead,
		Result:    result,
		CreatedAt: time.Now().UTC(),
	}

	created, err := u.repo.Create(ctx, qualified)
	if err != nil {
		log.Printf("[lead][usecase] persist failed lead_id=%s err=%v", qualified.ID, err)
		return entities.QualifiedLead{}, err
	}

	// CRM forwarding is best effort: a dead intake hook must not lose the
	// qualification we already persisted.
	if u.intake != nil {
		if err := u.intake.ForwardLead(ctx, created); err != nil {
			log.Printf("[lead][usecase] intake forward failed lead_id=%s err=%v", created.ID, err)
		}
	}

	return created, nil
}

func (u *LeadUseCase) GetByID(ctx context.Context, id string) (entities.QualifiedLead, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.QualifiedLead{}, ErrInvalidLeadID
	}

	l, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.QualifiedLead{}, err
	}
	if l.ID == "" {
		return entities.QualifiedLead{}, ErrLeadNotFound
	}
	return l, nil
}
