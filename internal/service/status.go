package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/sammytumzy/TunmzyTech/internal/model"
	"github.com/sammytumzy/TunmzyTech/internal/repository"
)

// listLimit caps every list endpoint.
const listLimit = 1000

type StatusService interface {
	Create(ctx context.Context, clientName string) (*model.StatusCheck, error)
	List(ctx context.Context) ([]*model.StatusCheck, error)
}

type statusServiceImpl struct {
	statusRepo repository.StatusCheckRepository
}

func NewStatusService(
	statusRepo repository.StatusCheckRepository,
) StatusService {
	return &statusServiceImpl{
		statusRepo: statusRepo,
	}
}

func (s *statusServiceImpl) Create(ctx context.Context, clientName string) (*model.StatusCheck, error) {
	check := &model.StatusCheck{
		ID:         uuid.NewString(),
		ClientName: clientName,
		Timestamp:  time.Now().UTC(),
	}
	if err := s.statusRepo.Create(ctx, check); err != nil {
		return nil, err
	}

	return check, nil
}

func (s *statusServiceImpl) List(ctx context.Context) ([]*model.StatusCheck, error) {
	return s.statusRepo.List(ctx, listLimit)
}
