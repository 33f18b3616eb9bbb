package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	apperrors "github.com/umalmyha/churn/internal/errors"
	"github.com/umalmyha/churn/internal/model"
	rpsMocks "github.com/umalmyha/churn/internal/repository/mocks"
)

func TestDashboardSummary(t *testing.T) {
	ctx := context.Background()
	summaryRpsMock := rpsMocks.NewSummaryRepository(t)
	svc := NewDashboardService(summaryRpsMock)

	summary := model.NewDashboardSummary()
	summary.TotalCount = 3
	summaryRpsMock.On("Summary", ctx).Return(summary, nil).Once()

	res, err := svc.Summary(ctx)
	require.NoError(t, err)
	require.Equal(t, int64(3), res.TotalCount)
}

func TestDashboardSummaryStorageFailure(t *testing.T) {
	ctx := context.Background()
	summaryRpsMock := rpsMocks.NewSummaryRepository(t)
	svc := NewDashboardService(summaryRpsMock)

	summaryRpsMock.On("Summary", ctx).Return(nil, errors.New("timeout")).Once()

	_, err := svc.Summary(ctx)
	var persistenceErr *apperrors.PersistenceErr
	require.ErrorAs(t, err, &persistenceErr)
}
