package service

import "errors"

var (
	ErrPaymentNotFound   = errors.New("payment not found")
	ErrInvalidAmount     = errors.New("amount must be positive")
	ErrTxidConflict      = errors.New("payment already completed with a different txid")
	ErrInvalidTransition = errors.New("payment is not in a completable state")

	// ErrUpstreamDegraded surfaces a provider failure when degraded-mode
	// simulation is disabled. Safe to retry: both approve and complete
	// are idempotent.
	ErrUpstreamDegraded = errors.New("payment provider unavailable")
)
