package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgconn"
	apperrors "github.com/umalmyha/churn/internal/errors"
	"github.com/umalmyha/churn/internal/model"
	"github.com/umalmyha/churn/pkg/db/transactor"
)

const pgForeignKeyViolationCode = "23503"

// StatusRepository keeps interventions history, events are append-only
type StatusRepository interface {
	Create(context.Context, *model.StatusEvent) error
	FindByCustomerID(context.Context, int64) ([]*model.StatusEvent, error)
}

type postgresStatusRepository struct {
	trx transactor.PgxWithinTransactionExecutor
}

func NewPostgresStatusRepository(trx transactor.PgxWithinTransactionExecutor) StatusRepository {
	return &postgresStatusRepository{trx: trx}
}

// Create stamps event with database time and fills generated id
func (r *postgresStatusRepository) Create(ctx context.Context, e *model.StatusEvent) error {
	q := "INSERT INTO status_events(customer_id, created_at, description) VALUES($1, NOW(), $2) RETURNING id, created_at"

	err := r.trx.Executor(ctx).QueryRow(ctx, q, e.CustomerID, e.Description).Scan(&e.ID, &e.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolationCode {
			return apperrors.NewEntryNotFoundErr(fmt.Sprintf("customer %d doesn't exist", e.CustomerID))
		}
		return err
	}
	return nil
}

func (r *postgresStatusRepository) FindByCustomerID(ctx context.Context, customerID int64) ([]*model.StatusEvent, error) {
	q := `SELECT id, customer_id, created_at, description
		FROM status_events
		WHERE customer_id = $1
		ORDER BY created_at DESC, id DESC`

	rows, err := r.trx.Executor(ctx).Query(ctx, q, customerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	events := make([]*model.StatusEvent, 0)
	for rows.Next() {
		var e model.StatusEvent
		if err := rows.Scan(&e.ID, &e.CustomerID, &e.CreatedAt, &e.Description); err != nil {
			return nil, err
		}
		events = append(events, &e)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}
	return events, nil
}
