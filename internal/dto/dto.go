package dto

import "github.com/shopspring/decimal"

type StatusCheckCreateRequest struct {
	ClientName string `json:"client_name" validate:"required"`
}

type AuthRequest struct {
	AccessToken string `json:"accessToken" validate:"required"`
}

type AuthResponse struct {
	Success      bool        `json:"success"`
	User         *PublicUser `json:"user"`
	SessionToken string      `json:"sessionToken,omitempty"`
}

// PublicUser is the profile shape returned to callers. The stored access
// token never leaves the server.
type PublicUser struct {
	UID      string `json:"uid"`
	Username string `json:"username"`
}

type PaymentApprovalRequest struct {
	PaymentID string          `json:"paymentId" validate:"required"`
	Amount    decimal.Decimal `json:"amount"`
}

type PaymentCompletionRequest struct {
	PaymentID string `json:"paymentId" validate:"required"`
	Txid      string `json:"txid" validate:"required"`
}

type PaymentCancelRequest struct {
	PaymentID string `json:"paymentId" validate:"required"`
}

type PaymentErrorRequest struct {
	PaymentID string      `json:"paymentId" validate:"required"`
	Error     interface{} `json:"error"`
}

type PaymentAckResponse struct {
	Message   string `json:"message"`
	PaymentID string `json:"paymentId"`
}

type PaymentApprovalResponse struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	PaymentID string `json:"paymentId"`
	Degraded  bool   `json:"degraded,omitempty"`
}

type PaymentCompletionResponse struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	PaymentID string `json:"paymentId"`
	Txid      string `json:"txid"`
	Degraded  bool   `json:"degraded,omitempty"`
}
