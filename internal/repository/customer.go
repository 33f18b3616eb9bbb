package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v4"
	"github.com/umalmyha/churn/internal/model"
	"github.com/umalmyha/churn/pkg/db/transactor"
)

// attributeColumns are writable customer columns in the same order as customerArgs
var attributeColumns = []string{
	"name", "probability", "churn",
	"senior_citizen", "married", "dependents", "number_of_dependents", "referred_a_friend",
	"number_of_referrals", "tenure_months", "phone_service", "multiple_lines", "internet_service",
	"internet_type", "online_security", "online_backup", "device_protection", "premium_tech_support",
	"streaming_tv", "streaming_movies", "streaming_music", "unlimited_data", "contract_type",
	"payment_method", "paperless_billing", "avg_monthly_long_distance_charges", "avg_monthly_gb_download",
	"monthly_charge", "total_charges", "total_refunds", "total_extra_data_charges",
	"total_long_distance_charges", "total_revenue", "cltv", "satisfaction_score",
}

var importColumns = append([]string{"customer_ref", "dataset_id"}, attributeColumns...)

// name, probability and churn lead attributeColumns and are never touched by Update
const bookkeepingColumns = 3

// serviceColumns are service and billing attributes, the only ones Update rewrites
var serviceColumns = attributeColumns[bookkeepingColumns:]

// CustomerRepository stores customers in relational database
type CustomerRepository interface {
	FindAll(context.Context, model.CustomerPage) ([]*model.Customer, error)
	FindByID(context.Context, int64) (*model.Customer, error)
	Create(context.Context, *model.Customer) error
	Update(context.Context, *model.Customer) (bool, error)
	UpdateProbability(context.Context, int64, float64) (bool, error)
	CustomerImporter
}

// CustomerImporter writes batch of uploaded customers and returns number of stored rows
type CustomerImporter interface {
	ImportBatch(context.Context, []*model.ImportedCustomer) (int64, error)
}

type postgresCustomerRepository struct {
	trx transactor.PgxWithinTransactionExecutor
}

func NewPostgresCustomerRepository(trx transactor.PgxWithinTransactionExecutor) CustomerRepository {
	return &postgresCustomerRepository{trx: trx}
}

func (r *postgresCustomerRepository) FindAll(ctx context.Context, page model.CustomerPage) ([]*model.Customer, error) {
	q := fmt.Sprintf(`SELECT c.id, %s, COUNT(s.id) AS intervention_count
		FROM customers c
		LEFT JOIN status_events s ON s.customer_id = c.id
		WHERE c.id > $1
		GROUP BY c.id
		ORDER BY c.id
		LIMIT $2`, prefixed("c", attributeColumns))

	rows, err := r.trx.Executor(ctx).Query(ctx, q, page.AfterID, page.Limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	customers := make([]*model.Customer, 0, page.Limit)
	for rows.Next() {
		c, err := r.scan(rows)
		if err != nil {
			return nil, err
		}
		customers = append(customers, c)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}
	return customers, nil
}

func (r *postgresCustomerRepository) FindByID(ctx context.Context, id int64) (*model.Customer, error) {
	q := fmt.Sprintf(`SELECT c.id, %s, (SELECT COUNT(*) FROM status_events s WHERE s.customer_id = c.id)
		FROM customers c
		WHERE c.id = $1`, prefixed("c", attributeColumns))

	c, err := r.scan(r.trx.Executor(ctx).QueryRow(ctx, q, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return c, nil
}

func (r *postgresCustomerRepository) Create(ctx context.Context, c *model.Customer) error {
	q := fmt.Sprintf("INSERT INTO customers(%s) VALUES(%s) RETURNING id",
		strings.Join(attributeColumns, ", "), placeholders(1, len(attributeColumns)))

	return r.trx.Executor(ctx).QueryRow(ctx, q, customerArgs(c)...).Scan(&c.ID)
}

// Update rewrites service and billing attributes. Name, churn label and model output are kept,
// probability changes through UpdateProbability only.
func (r *postgresCustomerRepository) Update(ctx context.Context, c *model.Customer) (bool, error) {
	assignments := make([]string, len(serviceColumns))
	for i, col := range serviceColumns {
		assignments[i] = fmt.Sprintf("%s = $%d", col, i+1)
	}

	q := fmt.Sprintf("UPDATE customers SET %s WHERE id = $%d", strings.Join(assignments, ", "), len(serviceColumns)+1)
	args := append(customerArgs(c)[bookkeepingColumns:], c.ID)

	comm, err := r.trx.Executor(ctx).Exec(ctx, q, args...)
	if err != nil {
		return false, err
	}
	return comm.RowsAffected() > 0, nil
}

func (r *postgresCustomerRepository) UpdateProbability(ctx context.Context, id int64, probability float64) (bool, error) {
	q := "UPDATE customers SET probability = $1 WHERE id = $2"
	comm, err := r.trx.Executor(ctx).Exec(ctx, q, probability, id)
	if err != nil {
		return false, err
	}
	return comm.RowsAffected() > 0, nil
}

func (r *postgresCustomerRepository) ImportBatch(ctx context.Context, batch []*model.ImportedCustomer) (int64, error) {
	rows := make([][]any, len(batch))
	for i, ic := range batch {
		rows[i] = append([]any{ic.CustomerRef, ic.DatasetID}, customerArgs(&ic.Customer)...)
	}
	return r.trx.Executor(ctx).CopyFrom(ctx, pgx.Identifier{"customers"}, importColumns, pgx.CopyFromRows(rows))
}

func (r *postgresCustomerRepository) scan(row pgx.Row) (*model.Customer, error) {
	var c model.Customer
	err := row.Scan(
		&c.ID, &c.Name, &c.Probability, &c.Churn,
		&c.SeniorCitizen, &c.Married, &c.Dependents, &c.NumberOfDependents, &c.ReferredAFriend,
		&c.NumberOfReferrals, &c.TenureMonths, &c.PhoneService, &c.MultipleLines, &c.InternetService,
		&c.InternetType, &c.OnlineSecurity, &c.OnlineBackup, &c.DeviceProtection, &c.PremiumTechSupport,
		&c.StreamingTV, &c.StreamingMovies, &c.StreamingMusic, &c.UnlimitedData, &c.ContractType,
		&c.PaymentMethod, &c.PaperlessBilling, &c.AvgMonthlyLongDistanceCharges, &c.AvgMonthlyGBDownload,
		&c.MonthlyCharge, &c.TotalCharges, &c.TotalRefunds, &c.TotalExtraDataCharges,
		&c.TotalLongDistanceCharges, &c.TotalRevenue, &c.CLTV, &c.SatisfactionScore,
		&c.InterventionCount,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func customerArgs(c *model.Customer) []any {
	return []any{
		c.Name, c.Probability, c.Churn,
		c.SeniorCitizen, c.Married, c.Dependents, c.NumberOfDependents, c.ReferredAFriend,
		c.NumberOfReferrals, c.TenureMonths, c.PhoneService, c.MultipleLines, c.InternetService,
		c.InternetType, c.OnlineSecurity, c.OnlineBackup, c.DeviceProtection, c.PremiumTechSupport,
		c.StreamingTV, c.StreamingMovies, c.StreamingMusic, c.UnlimitedData, c.ContractType,
		c.PaymentMethod, c.PaperlessBilling, c.AvgMonthlyLongDistanceCharges, c.AvgMonthlyGBDownload,
		c.MonthlyCharge, c.TotalCharges, c.TotalRefunds, c.TotalExtraDataCharges,
		c.TotalLongDistanceCharges, c.TotalRevenue, c.CLTV, c.SatisfactionScore,
	}
}

func prefixed(alias string, cols []string) string {
	res := make([]string, len(cols))
	for i, col := range cols {
		res[i] = alias + "." + col
	}
	return strings.Join(res, ", ")
}

func placeholders(from, count int) string {
	res := make([]string, count)
	for i := range res {
		res[i] = fmt.Sprintf("$%d", from+i)
	}
	return strings.Join(res, ", ")
}
