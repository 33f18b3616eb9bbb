package service

import (
	"context"

	apperrors "github.com/umalmyha/churn/internal/errors"
	"github.com/umalmyha/churn/internal/model"
	"github.com/umalmyha/churn/internal/repository"
)

type DashboardService interface {
	Summary(context.Context) (*model.DashboardSummary, error)
}

type dashboardService struct {
	summaryRps repository.SummaryRepository
}

func NewDashboardService(summaryRps repository.SummaryRepository) DashboardService {
	return &dashboardService{summaryRps: summaryRps}
}

func (s *dashboardService) Summary(ctx context.Context) (*model.DashboardSummary, error) {
	summary, err := s.summaryRps.Summary(ctx)
	if err != nil {
		return nil, apperrors.NewPersistenceErr("build dashboard summary", err)
	}
	return summary, nil
}
