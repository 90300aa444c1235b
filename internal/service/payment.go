package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/sammytumzy/TunmzyTech/internal/client"
	"github.com/sammytumzy/TunmzyTech/internal/model"
	"github.com/sammytumzy/TunmzyTech/internal/repository"
)

type ApproveResult struct {
	PaymentID       string
	AlreadyApproved bool
	Degraded        bool
}

type CompleteResult struct {
	PaymentID        string
	Txid             string
	AlreadyCompleted bool
	Degraded         bool
}

// AckResult reports a client-side cancellation or error acknowledgment.
// Changed is false when the payment was unknown or already terminal.
type AckResult struct {
	PaymentID string
	Changed   bool
}

type PaymentService interface {
	Approve(ctx context.Context, userUID, paymentID string, amount decimal.Decimal) (*ApproveResult, error)
	Complete(ctx context.Context, paymentID, txid string) (*CompleteResult, error)
	Cancel(ctx context.Context, paymentID string) (*AckResult, error)
	Fail(ctx context.Context, paymentID string, details interface{}) (*AckResult, error)
	Get(ctx context.Context, paymentID string) (*model.Payment, error)
	List(ctx context.Context) ([]*model.Payment, error)
}

type paymentServiceImpl struct {
	piClient      client.PiClient
	paymentRepo   repository.PaymentRepository
	allowDegraded bool
	logger        zerolog.Logger
}

func NewPaymentService(
	piClient client.PiClient,
	paymentRepo repository.PaymentRepository,
	allowDegraded bool,
	logger zerolog.Logger,
) PaymentService {
	return &paymentServiceImpl{
		piClient:      piClient,
		paymentRepo:   paymentRepo,
		allowDegraded: allowDegraded,
		logger:        logger,
	}
}

// Approve runs the first phase of the Pi payment lifecycle. Approval is
// idempotent on payment_id: a repeat request, or the loser of a concurrent
// race, gets a success with AlreadyApproved set and no second record.
func (s *paymentServiceImpl) Approve(ctx context.Context, userUID, paymentID string, amount decimal.Decimal) (*ApproveResult, error) {
	if !amount.IsPositive() {
		return nil, ErrInvalidAmount
	}

	_, err := s.paymentRepo.FindByPaymentID(ctx, paymentID)
	if err == nil {
		s.logger.Info().Str("payment_id", paymentID).Msg("payment already approved")
		return &ApproveResult{PaymentID: paymentID, AlreadyApproved: true}, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("find payment: %w", err)
	}

	memo := fmt.Sprintf("TunmzyTech AI Tool Access - π%s", amount.String())
	metadata := model.JSONMap{
		"service": "ai_tools",
		"amount":  amount,
	}

	degraded := false
	_, err = s.piClient.ApprovePayment(ctx, paymentID, amount, memo, metadata)
	if err != nil {
		if !s.allowDegraded {
			return nil, fmt.Errorf("%w: %v", ErrUpstreamDegraded, err)
		}
		s.logger.Warn().Err(err).Str("payment_id", paymentID).
			Msg("pi approval failed, recording simulated approval")
		degraded = true
	}

	now := time.Now().UTC()
	payment := &model.Payment{
		ID:         uuid.NewString(),
		PaymentID:  paymentID,
		UserUID:    userUID,
		Amount:     amount,
		Memo:       memo,
		Metadata:   metadata,
		Status:     model.PaymentApproved,
		CreatedAt:  now,
		ApprovedAt: &now,
	}

	inserted, err := s.paymentRepo.CreateIfAbsent(ctx, payment)
	if err != nil {
		return nil, fmt.Errorf("store payment: %w", err)
	}
	if !inserted {
		// another request approved the same payment_id first
		return &ApproveResult{PaymentID: paymentID, AlreadyApproved: true}, nil
	}

	s.logger.Info().Str("payment_id", paymentID).Str("user_uid", userUID).
		Bool("degraded", degraded).Msg("payment approved")

	return &ApproveResult{PaymentID: paymentID, Degraded: degraded}, nil
}

// Complete runs the second phase. Only an approved payment may complete;
// re-completing with the same txid is an idempotent success, a different
// txid is a conflict.
func (s *paymentServiceImpl) Complete(ctx context.Context, paymentID, txid string) (*CompleteResult, error) {
	payment, err := s.paymentRepo.FindByPaymentID(ctx, paymentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPaymentNotFound
		}
		return nil, fmt.Errorf("find payment: %w", err)
	}

	switch {
	case payment.Status == model.PaymentCompleted:
		if payment.Txid != nil && *payment.Txid == txid {
			return &CompleteResult{PaymentID: paymentID, Txid: txid, AlreadyCompleted: true}, nil
		}
		return nil, ErrTxidConflict
	case payment.Status.CanTransitionTo(model.PaymentCompleted):
		// approved, proceed with the provider call
	default:
		return nil, fmt.Errorf("%w: status=%s", ErrInvalidTransition, payment.Status)
	}

	degraded := false
	_, err = s.piClient.CompletePayment(ctx, paymentID, txid)
	if err != nil {
		if !s.allowDegraded {
			return nil, fmt.Errorf("%w: %v", ErrUpstreamDegraded, err)
		}
		s.logger.Warn().Err(err).Str("payment_id", paymentID).
			Msg("pi completion failed, recording simulated completion")
		degraded = true
	}

	if err := s.paymentRepo.MarkCompleted(ctx, paymentID, txid); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// the guarded update matched nothing: another request moved
			// the payment out of approved after our initial read
			return s.resolveCompletionRace(ctx, paymentID, txid)
		}
		return nil, fmt.Errorf("mark payment completed: %w", err)
	}

	s.logger.Info().Str("payment_id", paymentID).Str("txid", txid).
		Bool("degraded", degraded).Msg("payment completed")

	return &CompleteResult{PaymentID: paymentID, Txid: txid, Degraded: degraded}, nil
}

func (s *paymentServiceImpl) resolveCompletionRace(ctx context.Context, paymentID, txid string) (*CompleteResult, error) {
	payment, err := s.paymentRepo.FindByPaymentID(ctx, paymentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPaymentNotFound
		}
		return nil, fmt.Errorf("find payment: %w", err)
	}

	if payment.Status == model.PaymentCompleted {
		if payment.Txid != nil && *payment.Txid == txid {
			return &CompleteResult{PaymentID: paymentID, Txid: txid, AlreadyCompleted: true}, nil
		}
		return nil, ErrTxidConflict
	}

	return nil, fmt.Errorf("%w: status=%s", ErrInvalidTransition, payment.Status)
}

// Cancel records a client-reported cancellation. The Pi SDK drives the
// user-facing flow, so this is an acknowledgment: unknown or already
// terminal payments are acknowledged without a state change.
func (s *paymentServiceImpl) Cancel(ctx context.Context, paymentID string) (*AckResult, error) {
	return s.markTerminal(ctx, paymentID, model.PaymentCancelled, nil)
}

// Fail records a client-reported payment error, same acknowledgment
// semantics as Cancel.
func (s *paymentServiceImpl) Fail(ctx context.Context, paymentID string, details interface{}) (*AckResult, error) {
	return s.markTerminal(ctx, paymentID, model.PaymentFailed, details)
}

func (s *paymentServiceImpl) markTerminal(ctx context.Context, paymentID string, to model.PaymentStatus, details interface{}) (*AckResult, error) {
	event := s.logger.Info().Str("payment_id", paymentID).Str("reported", string(to))
	if details != nil {
		event = event.Interface("details", details)
	}

	payment, err := s.paymentRepo.FindByPaymentID(ctx, paymentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			event.Msg("client report for unknown payment")
			return &AckResult{PaymentID: paymentID}, nil
		}
		return nil, fmt.Errorf("find payment: %w", err)
	}

	if !payment.Status.CanTransitionTo(to) {
		event.Str("status", string(payment.Status)).Msg("client report for terminal payment")
		return &AckResult{PaymentID: paymentID}, nil
	}

	changed, err := s.paymentRepo.MarkStatusIf(ctx, paymentID, payment.Status, to)
	if err != nil {
		return nil, fmt.Errorf("mark payment %s: %w", to, err)
	}

	event.Bool("changed", changed).Msg("client payment report recorded")

	return &AckResult{PaymentID: paymentID, Changed: changed}, nil
}

func (s *paymentServiceImpl) Get(ctx context.Context, paymentID string) (*model.Payment, error) {
	payment, err := s.paymentRepo.FindByPaymentID(ctx, paymentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPaymentNotFound
		}
		return nil, err
	}

	return payment, nil
}

func (s *paymentServiceImpl) List(ctx context.Context) ([]*model.Payment, error) {
	return s.paymentRepo.List(ctx, listLimit)
}
