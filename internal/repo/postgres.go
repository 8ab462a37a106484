package repo

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/SergeyBogomolovv/shop-backoffice/internal/entities"
	"github.com/SergeyBogomolovv/shop-backoffice/pkg/trm"
	"github.com/google/uuid"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
)

var submissionColumns = []string{
	"id", "session_id", "status", "customer_id", "customer_name", "customer_phone",
	"customer_address", "discount", "subtotal", "total", "order_id", "error_message", "created_at",
}

type postgresRepo struct {
	db *sqlx.DB
	qb sq.StatementBuilderType
}

func NewPostgresRepo(db *sqlx.DB) *postgresRepo {
	return &postgresRepo{
		db: db,
		qb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *postgresRepo) SaveSubmission(ctx context.Context, s entities.Submission) error {
	query, args := r.qb.Insert("submissions").
		Columns(submissionColumns...).
		Values(
			s.ID, s.SessionID, string(s.Outcome),
			nullInt64(s.Customer.CustomerID), nullString(s.Customer.FullName),
			nullString(s.Customer.Phone), nullString(s.Customer.Address),
			s.Discount, s.Subtotal, s.Total,
			nullInt64(s.OrderID), nullString(s.Error), s.CreatedAt,
		).
		Suffix("ON CONFLICT (id) DO NOTHING").
		MustSql()

	_, err := r.execContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to save submission: %w", err)
	}
	return nil
}

func (r *postgresRepo) SaveSubmissionItems(ctx context.Context, submissionID uuid.UUID, items []entities.SubmissionItem) error {
	if len(items) == 0 {
		return nil
	}

	q := r.qb.Insert("submission_items").
		Columns("submission_id", "position", "product_id", "quantity", "unit_price").
		Suffix("ON CONFLICT (submission_id, position) DO NOTHING")

	for i, it := range items {
		q = q.Values(submissionID, i, it.ProductID, it.Quantity, it.UnitPrice)
	}

	query, args := q.MustSql()
	_, err := r.execContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to save submission items: %w", err)
	}
	return nil
}

// LatestSubmissions returns the newest count journal entries with their items.
func (r *postgresRepo) LatestSubmissions(ctx context.Context, count int) ([]entities.Submission, error) {
	query, args := r.qb.Select(submissionColumns...).
		From("submissions").
		OrderBy("created_at DESC").
		Limit(uint64(count)).
		MustSql()

	var submissions []Submission
	if err := r.selectContext(ctx, &submissions, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select submissions: %w", err)
	}

	if len(submissions) == 0 {
		return []entities.Submission{}, nil
	}

	ids := make([]uuid.UUID, len(submissions))
	for i, s := range submissions {
		ids[i] = s.ID
	}

	query, args = r.qb.Select("submission_id", "position", "product_id", "quantity", "unit_price").
		From("submission_items").
		Where(sq.Eq{"submission_id": ids}).
		OrderBy("submission_id", "position").
		MustSql()

	var items []SubmissionItem
	if err := r.selectContext(ctx, &items, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select submission items: %w", err)
	}
	itemsMap := make(map[uuid.UUID][]SubmissionItem, len(ids))
	for _, it := range items {
		itemsMap[it.SubmissionID] = append(itemsMap[it.SubmissionID], it)
	}

	result := make([]entities.Submission, 0, len(submissions))
	for _, s := range submissions {
		result = append(result, SubmissionToEntity(s, itemsMap[s.ID]))
	}
	return result, nil
}

func nullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

func nullInt64(i int64) sql.NullInt64 {
	if i == 0 {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: i, Valid: true}
}

func (r *postgresRepo) execContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	tx := trm.ExtractTx(ctx)
	if tx != nil {
		return tx.ExecContext(ctx, query, args...)
	}
	return r.db.ExecContext(ctx, query, args...)
}

func (r *postgresRepo) selectContext(ctx context.Context, dest any, query string, args ...any) error {
	tx := trm.ExtractTx(ctx)
	if tx != nil {
		return tx.SelectContext(ctx, dest, query, args...)
	}
	return r.db.SelectContext(ctx, dest, query, args...)
}
