package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/sammytumzy/TunmzyTech/internal/model"
)

type StatusCheckRepository interface {
	Create(ctx context.Context, check *model.StatusCheck) error
	List(ctx context.Context, limit int) ([]*model.StatusCheck, error)
}

type statusCheckRepoImpl struct {
	db *gorm.DB
}

func NewStatusCheckRepository(db *gorm.DB) StatusCheckRepository {
	return &statusCheckRepoImpl{
		db: db,
	}
}

func (r *statusCheckRepoImpl) Create(ctx context.Context, check *model.StatusCheck) error {
	return r.db.WithContext(ctx).Create(check).Error
}

func (r *statusCheckRepoImpl) List(ctx context.Context, limit int) ([]*model.StatusCheck, error) {
	var checks []*model.StatusCheck
	err := r.db.WithContext(ctx).
		Order("timestamp").
		Limit(limit).
		Find(&checks).Error
	if err != nil {
		return nil, err
	}

	return checks, nil
}
