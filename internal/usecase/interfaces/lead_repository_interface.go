package interfaces

import (
	"context"

	"github.com/Fusion-Data-Company/appredding-sub009/internal/domain/entities"
)

// ILeadRepository abstracts DynamoDB persistence for qualified leads.

type ILeadRepository interface {
	Create(ctx context.Context, l entities.QualifiedLead) (entities.QualifiedLead, error)
	GetByID(ctx context.Context, id string) (entities.QualifiedLead, error)
}
