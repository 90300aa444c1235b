package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

type StatusCheck struct {
	ID         string    `gorm:"primaryKey;size:64;not null" json:"id"`
	ClientName string    `gorm:"size:128;not null" json:"client_name"`
	Timestamp  time.Time `json:"timestamp"`
}

type User struct {
	UID         string    `gorm:"primaryKey;size:64;not null" json:"uid"` // Pi Network user id
	Username    string    `gorm:"size:128;index;not null" json:"username"`
	AccessToken string    `gorm:"size:512" json:"-"` // latest bearer token, never exposed
	CreatedAt   time.Time `json:"created_at"`
	LastLogin   time.Time `json:"last_login"`
}

type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentApproved  PaymentStatus = "approved"
	PaymentCompleted PaymentStatus = "completed"
	PaymentCancelled PaymentStatus = "cancelled"
	PaymentFailed    PaymentStatus = "failed"
)

// paymentTransitions is the allowed forward edges of the payment lifecycle.
// completed, cancelled and failed are terminal.
var paymentTransitions = map[PaymentStatus][]PaymentStatus{
	PaymentPending:  {PaymentApproved, PaymentCancelled, PaymentFailed},
	PaymentApproved: {PaymentCompleted, PaymentCancelled, PaymentFailed},
}

func (s PaymentStatus) CanTransitionTo(next PaymentStatus) bool {
	for _, allowed := range paymentTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

type Payment struct {
	ID        string          `gorm:"primaryKey;size:64;not null" json:"id"`
	PaymentID string          `gorm:"size:128;uniqueIndex;not null" json:"payment_id"` // Pi Network payment ID
	UserUID   string          `gorm:"size:64;index" json:"user_uid"`
	Amount    decimal.Decimal `gorm:"type:decimal(20,8);not null" json:"amount"`
	Memo      string          `gorm:"size:256" json:"memo"`
	Metadata  JSONMap         `gorm:"type:text" json:"metadata"`
	Status    PaymentStatus   `gorm:"size:32;index;not null" json:"status"`
	Txid      *string         `gorm:"size:128" json:"txid"`
	CreatedAt time.Time       `json:"created_at"`

	ApprovedAt  *time.Time `json:"approved_at"`
	CompletedAt *time.Time `json:"completed_at"`
}

// JSONMap stores arbitrary payment metadata as a JSON text column.
type JSONMap map[string]interface{}

func (m JSONMap) Value() (driver.Value, error) {
	if m == nil {
		return "{}", nil
	}
	b, err := json.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("marshal metadata: %w", err)
	}
	return string(b), nil
}

func (m *JSONMap) Scan(value interface{}) error {
	if value == nil {
		*m = JSONMap{}
		return nil
	}

	var raw []byte
	switch v := value.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("unsupported metadata column type %T", value)
	}

	return json.Unmarshal(raw, m)
}
