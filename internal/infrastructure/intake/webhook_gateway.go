package intake

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/Fusion-Data-Company/appredding-sub009/internal/domain/entities"
	"github.com/Fusion-Data-Company/appredding-sub009/internal/usecase/interfaces"
)

var ErrMissingIntakeURL = errors.New("missing LEAD_INTAKE_URL")

const defaultIntakeTimeout = 10 * time.Second

// WebhookGateway forwards qualified leads to the CRM intake endpoint with a
// plain JSON POST. The endpoint receives the persisted record as-is: lead
// snapshot plus qualification result.

type WebhookGateway struct {
	url    string
	client *http.Client
}

var _ interfaces.ILeadIntakeGateway = (*WebhookGateway)(nil)

func NewWebhookGateway(url string) (*WebhookGateway, error) {
	if url == "" {
		return nil, ErrMissingIntakeURL
	}
	return &WebhookGateway{
		url:    url,
		client: &http.Client{Timeout: defaultIntakeTimeout},
	}, nil
}

func (g *WebhookGateway) ForwardLead(ctx context.Context, lead entities.QualifiedLead) error {
	body, err := json.Marshal(lead)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	// Drain so the connection can be reused.
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("lead intake returned status %d", resp.StatusCode)
	}
	log.Printf("[lead][intake] forwarded lead_id=%s status=%d", lead.ID, resp.StatusCode)
	return nil
}
