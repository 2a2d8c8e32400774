package service

import (
	"context"

	"blogapi/internal/repository"
)

type Status struct {
	Status     string `json:"status"`
	TableCount int    `json:"table_count"`
}

type StatusService interface {
	Check(ctx context.Context) (*Status, error)
}

type statusService struct {
	statusRepo repository.StatusRepository
}

func NewStatusService(statusRepo repository.StatusRepository) StatusService {
	return &statusService{statusRepo: statusRepo}
}

func (s *statusService) Check(ctx context.Context) (*Status, error) {
	count, err := s.statusRepo.CountTables(ctx)
	if err != nil {
		return nil, err
	}

	return &Status{
		Status:     "ok",
		TableCount: count,
	}, nil
}
