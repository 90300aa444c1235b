package model

// PiUserProfile is the payload of Pi Network's GET /me.
type PiUserProfile struct {
	UID      string `json:"uid"`
	Username string `json:"username"`
}

// PiPaymentResult is the provider's response to an approve or complete
// call. Only the fields the workflow inspects are decoded.
type PiPaymentResult struct {
	Identifier string `json:"identifier"`
	Status     string `json:"status,omitempty"`

	// Simulated marks a locally synthesized result produced when the
	// provider call failed and degraded mode is enabled.
	Simulated bool `json:"-"`
}
