package repository

import (
	"context"
	"strconv"

	"github.com/jackc/pgx/v4"
	"github.com/umalmyha/churn/internal/model"
	"github.com/umalmyha/churn/pkg/db/transactor"
)

// SummaryRepository aggregates customers for dashboard
type SummaryRepository interface {
	Summary(context.Context) (*model.DashboardSummary, error)
}

type postgresSummaryRepository struct {
	trx transactor.PgxWithinTransactionExecutor
}

func NewPostgresSummaryRepository(trx transactor.PgxWithinTransactionExecutor) SummaryRepository {
	return &postgresSummaryRepository{trx: trx}
}

// Summary reads totals and satisfaction histogram in one round trip.
// Customers without probability take part in total and satisfaction counts only.
func (r *postgresSummaryRepository) Summary(ctx context.Context) (*model.DashboardSummary, error) {
	totalsQuery := `SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE c.probability >= $1),
			COUNT(*) FILTER (WHERE c.probability >= $2 AND c.probability < $1),
			COUNT(*) FILTER (WHERE c.probability < $2),
			COUNT(*) FILTER (WHERE EXISTS (SELECT 1 FROM status_events s WHERE s.customer_id = c.id))
		FROM customers c`
	satisfactionQuery := "SELECT satisfaction_score, COUNT(*) FROM customers GROUP BY satisfaction_score"

	b := &pgx.Batch{}
	b.Queue(totalsQuery, model.HighRiskThreshold, model.MediumRiskThreshold)
	b.Queue(satisfactionQuery)

	res := r.trx.Executor(ctx).SendBatch(ctx, b)
	defer res.Close()

	s := model.NewDashboardSummary()

	var high, medium, low, withInterventions int64
	if err := res.QueryRow().Scan(&s.TotalCount, &high, &medium, &low, &withInterventions); err != nil {
		return nil, err
	}

	s.HighProbCount = high
	s.RiskCounts[model.RiskHigh] = high
	s.RiskCounts[model.RiskMedium] = medium
	s.RiskCounts[model.RiskLow] = low
	s.InterventionCounts = model.InterventionCounts{
		NoIntervention: s.TotalCount - withInterventions,
		Intervention:   withInterventions,
	}

	rows, err := res.Query()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var score, count int64
		if err := rows.Scan(&score, &count); err != nil {
			return nil, err
		}
		s.SatisfactionCounts[strconv.FormatInt(score, 10)] = count
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}
	return s, nil
}
