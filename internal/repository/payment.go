package repository

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/sammytumzy/TunmzyTech/internal/model"
)

type PaymentRepository interface {
	// CreateIfAbsent inserts the payment unless a row with the same
	// payment_id already exists. Returns whether the row was inserted,
	// so the loser of a concurrent approval race can take the
	// already-approved path instead of failing on the unique index.
	CreateIfAbsent(ctx context.Context, payment *model.Payment) (bool, error)
	FindByPaymentID(ctx context.Context, paymentID string) (*model.Payment, error)
	List(ctx context.Context, limit int) ([]*model.Payment, error)
	// MarkCompleted only matches an approved row, so of two concurrent
	// completions exactly one wins; the loser sees ErrRecordNotFound and
	// must re-read to find out why.
	MarkCompleted(ctx context.Context, paymentID, txid string) error
	// MarkStatusIf moves the payment from one status to another, returning
	// whether the guarded update matched.
	MarkStatusIf(ctx context.Context, paymentID string, from, to model.PaymentStatus) (bool, error)
}

type paymentRepoImpl struct {
	db *gorm.DB
}

func NewPaymentRepository(db *gorm.DB) PaymentRepository {
	return &paymentRepoImpl{
		db: db,
	}
}

func (r *paymentRepoImpl) CreateIfAbsent(ctx context.Context, payment *model.Payment) (bool, error) {
	result := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "payment_id"}},
		DoNothing: true,
	}).Create(&payment)

	if result.Error != nil {
		return false, result.Error
	}

	return result.RowsAffected > 0, nil
}

func (r *paymentRepoImpl) FindByPaymentID(ctx context.Context, paymentID string) (*model.Payment, error) {
	var payment model.Payment
	err := r.db.WithContext(ctx).
		Where("payment_id = ?", paymentID).
		First(&payment).Error
	if err != nil {
		return nil, err
	}

	return &payment, nil
}

func (r *paymentRepoImpl) List(ctx context.Context, limit int) ([]*model.Payment, error) {
	var payments []*model.Payment
	err := r.db.WithContext(ctx).
		Order("created_at").
		Limit(limit).
		Find(&payments).Error
	if err != nil {
		return nil, err
	}

	return payments, nil
}

// MarkCompleted sets status, txid and completed_at in one write.
func (r *paymentRepoImpl) MarkCompleted(ctx context.Context, paymentID, txid string) error {
	result := r.db.WithContext(ctx).Model(&model.Payment{}).
		Where("payment_id = ? AND status = ?", paymentID, model.PaymentApproved).
		Updates(map[string]interface{}{
			"status":       model.PaymentCompleted,
			"txid":         txid,
			"completed_at": time.Now().UTC(),
		})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

func (r *paymentRepoImpl) MarkStatusIf(ctx context.Context, paymentID string, from, to model.PaymentStatus) (bool, error) {
	result := r.db.WithContext(ctx).Model(&model.Payment{}).
		Where("payment_id = ? AND status = ?", paymentID, from).
		Update("status", to)

	if result.Error != nil {
		return false, result.Error
	}

	return result.RowsAffected > 0, nil
}
