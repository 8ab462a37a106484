package repo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/SergeyBogomolovv/shop-backoffice/internal/entities"
	"github.com/SergeyBogomolovv/shop-backoffice/pkg/trm"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockRepo(t *testing.T) (*postgresRepo, *sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	sqlxDB := sqlx.NewDb(db, "sqlmock")
	return NewPostgresRepo(sqlxDB), sqlxDB, mock
}

func TestPostgresRepo_SaveSubmissionInTx(t *testing.T) {
	repo, db, mock := newMockRepo(t)
	txManager := trm.NewManager(db)

	sub := entities.Submission{
		ID:        uuid.New(),
		SessionID: uuid.New(),
		Outcome:   entities.OutcomeSucceeded,
		Customer:  entities.CustomerIdentity{CustomerID: 7},
		Discount:  decimal.NewFromInt(10000),
		Subtotal:  decimal.NewFromInt(105000),
		Total:     decimal.NewFromInt(95000),
		OrderID:   41,
		CreatedAt: time.Date(2026, 10, 16, 9, 30, 0, 0, time.UTC),
		Items: []entities.SubmissionItem{
			{ProductID: 1, Quantity: 3, UnitPrice: decimal.NewFromInt(35000)},
		},
	}

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO submissions")).
		WithArgs(
			sub.ID, sub.SessionID, "succeeded",
			int64(7), nil, nil, nil,
			sub.Discount, sub.Subtotal, sub.Total,
			int64(41), nil, sub.CreatedAt,
		).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO submission_items (submission_id,position,product_id,quantity,unit_price) VALUES ($1,$2,$3,$4,$5)")).
		WithArgs(sub.ID, 0, int64(1), 3, decimal.NewFromInt(35000)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := txManager.Do(context.Background(), func(ctx context.Context) error {
		if err := repo.SaveSubmission(ctx, sub); err != nil {
			return err
		}
		return repo.SaveSubmissionItems(ctx, sub.ID, sub.Items)
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresRepo_SaveSubmissionRollsBack(t *testing.T) {
	repo, db, mock := newMockRepo(t)
	txManager := trm.NewManager(db)

	sub := entities.Submission{
		ID:       uuid.New(),
		Outcome:  entities.OutcomeRejected,
		Customer: entities.CustomerIdentity{FullName: "Le Chi", Phone: "0912"},
		Error:    "out of stock",
		Items:    []entities.SubmissionItem{{ProductID: 1, Quantity: 1, UnitPrice: decimal.NewFromInt(35000)}},
	}

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO submissions")).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO submission_items")).
		WillReturnError(errors.New("relation does not exist"))
	mock.ExpectRollback()

	err := txManager.Do(context.Background(), func(ctx context.Context) error {
		if err := repo.SaveSubmission(ctx, sub); err != nil {
			return err
		}
		return repo.SaveSubmissionItems(ctx, sub.ID, sub.Items)
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to save submission items")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresRepo_SaveSubmissionItems_Empty(t *testing.T) {
	repo, _, mock := newMockRepo(t)

	require.NoError(t, repo.SaveSubmissionItems(context.Background(), uuid.New(), nil))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresRepo_LatestSubmissions(t *testing.T) {
	repo, _, mock := newMockRepo(t)

	first, second := uuid.New(), uuid.New()
	createdAt := time.Date(2026, 10, 16, 9, 30, 0, 0, time.UTC)

	rows := sqlmock.NewRows(submissionColumns).
		AddRow(first.String(), uuid.New().String(), "succeeded", 7, nil, nil, nil, "10000", "105000", "95000", 41, nil, createdAt).
		AddRow(second.String(), uuid.New().String(), "rejected", nil, "Le Chi", "0912", nil, "0", "35000", "35000", nil, "out of stock", createdAt.Add(-time.Minute))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, session_id, status")).
		WillReturnRows(rows)

	items := sqlmock.NewRows([]string{"submission_id", "position", "product_id", "quantity", "unit_price"}).
		AddRow(first.String(), 0, 1, 3, "35000").
		AddRow(second.String(), 0, 1, 1, "35000")
	mock.ExpectQuery(regexp.QuoteMeta("FROM submission_items WHERE submission_id IN ($1,$2)")).
		WithArgs(first, second).
		WillReturnRows(items)

	subs, err := repo.LatestSubmissions(context.Background(), 2)
	require.NoError(t, err)
	require.Len(t, subs, 2)

	assert.Equal(t, first, subs[0].ID)
	assert.Equal(t, int64(7), subs[0].Customer.CustomerID)
	assert.Equal(t, int64(41), subs[0].OrderID)
	assert.True(t, subs[0].Total.Equal(decimal.NewFromInt(95000)))
	require.Len(t, subs[0].Items, 1)
	assert.Equal(t, 3, subs[0].Items[0].Quantity)

	assert.Equal(t, entities.OutcomeRejected, subs[1].Outcome)
	assert.Equal(t, "Le Chi", subs[1].Customer.FullName)
	assert.Equal(t, "out of stock", subs[1].Error)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresRepo_LatestSubmissions_Empty(t *testing.T) {
	repo, _, mock := newMockRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM submissions ORDER BY created_at DESC LIMIT 5")).
		WillReturnRows(sqlmock.NewRows(submissionColumns))

	subs, err := repo.LatestSubmissions(context.Background(), 5)
	require.NoError(t, err)
	assert.Empty(t, subs)
	assert.NoError(t, mock.ExpectationsWereMet())
}
