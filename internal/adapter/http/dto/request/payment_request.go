package request

import "encoding/json"

// OrderPaymentCreateRequest is the payload for the create-and-process payment
// route.
//
// `provider_payload` is stored as-is (raw JSON) to support varying payment
// provider schemas.

type OrderPaymentCreateRequest struct {
	ProviderPayload json.RawMessage `json:"provider_payload"`
}
