package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"github.com/sammytumzy/TunmzyTech/internal/config"
	"github.com/sammytumzy/TunmzyTech/internal/model"
)

// Error taxonomy for provider calls. Callers branch with errors.Is.
var (
	ErrUnauthorized        = errors.New("pi: access token rejected")
	ErrApprovalRejected    = errors.New("pi: payment approval rejected")
	ErrCompletionRejected  = errors.New("pi: payment completion rejected")
	ErrUpstreamUnavailable = errors.New("pi: api unreachable")
)

type PiClient interface {
	VerifyUser(ctx context.Context, accessToken string) (*model.PiUserProfile, error)
	ApprovePayment(ctx context.Context, paymentID string, amount decimal.Decimal, memo string, metadata map[string]interface{}) (*model.PiPaymentResult, error)
	CompletePayment(ctx context.Context, paymentID, txid string) (*model.PiPaymentResult, error)
}

type piClientImpl struct {
	httpClient *http.Client
	baseApiURL string
	apiKey     string
}

func NewPiClient(piCfg *config.Pi) PiClient {
	return &piClientImpl{
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		baseApiURL: piCfg.BaseApiURL,
		apiKey:     piCfg.APIKey,
	}
}

func (c *piClientImpl) VerifyUser(ctx context.Context, accessToken string) (*model.PiUserProfile, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseApiURL+"/me", nil)
	if err != nil {
		return nil, fmt.Errorf("create verify request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstreamUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: status=%d body=%s", ErrUnauthorized, resp.StatusCode, string(b))
	}

	var profile model.PiUserProfile
	if err := json.NewDecoder(resp.Body).Decode(&profile); err != nil {
		return nil, fmt.Errorf("decode verify response: %w", err)
	}
	if profile.UID == "" {
		return nil, fmt.Errorf("%w: response missing uid", ErrUnauthorized)
	}

	return &profile, nil
}

func (c *piClientImpl) ApprovePayment(ctx context.Context, paymentID string, amount decimal.Decimal, memo string, metadata map[string]interface{}) (*model.PiPaymentResult, error) {
	payload := map[string]interface{}{
		"amount":   amount,
		"memo":     memo,
		"metadata": metadata,
	}

	url := fmt.Sprintf("%s/payments/%s/approve", c.baseApiURL, paymentID)

	result, err := c.postPayment(ctx, url, payload, ErrApprovalRejected)
	if err != nil {
		return nil, err
	}
	if result.Identifier == "" {
		result.Identifier = paymentID
	}
	return result, nil
}

func (c *piClientImpl) CompletePayment(ctx context.Context, paymentID, txid string) (*model.PiPaymentResult, error) {
	payload := map[string]interface{}{
		"txid": txid,
	}

	url := fmt.Sprintf("%s/payments/%s/complete", c.baseApiURL, paymentID)

	result, err := c.postPayment(ctx, url, payload, ErrCompletionRejected)
	if err != nil {
		return nil, err
	}
	if result.Identifier == "" {
		result.Identifier = paymentID
	}
	return result, nil
}

// postPayment sends a server-credentialed payment call; non-200 responses
// are wrapped in rejectErr so callers can tell a rejection from an outage.
func (c *piClientImpl) postPayment(ctx context.Context, url string, payload map[string]interface{}, rejectErr error) (*model.PiPaymentResult, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal req payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(body))
	if err != nil {
		return nil, fmt.Errorf("create payment request: %w", err)
	}
	req.Header.Set("Authorization", "Key "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstreamUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: status=%d body=%s", rejectErr, resp.StatusCode, string(b))
	}

	var result model.PiPaymentResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decode payment response: %w", err)
	}

	return &result, nil
}
