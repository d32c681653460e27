package interfaces

import (
	"context"

	"github.com/Fusion-Data-Company/appredding-sub009/internal/domain/entities"
)

// ILeadIntakeGateway forwards qualified leads to the CRM intake endpoint.
//
// Forwarding is best effort: callers log failures and never fail the
// qualification because the CRM hook was unreachable.

type ILeadIntakeGateway interface {
	ForwardLead(ctx context.Context, lead entities.QualifiedLead) error
}
