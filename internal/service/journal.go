package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/SergeyBogomolovv/shop-backoffice/internal/entities"
	"github.com/SergeyBogomolovv/shop-backoffice/pkg/utils"
)

const (
	defaultJournalCount = 20
	maxJournalCount     = 200
)

type SubmissionReader interface {
	LatestSubmissions(ctx context.Context, count int) ([]entities.Submission, error)
}

type journalService struct {
	logger *slog.Logger
	reader SubmissionReader
}

func NewJournalService(logger *slog.Logger, reader SubmissionReader) *journalService {
	return &journalService{
		logger: logger.With(slog.String("service", "journal")),
		reader: reader,
	}
}

// Latest returns the most recent submission attempts, newest first.
func (s *journalService) Latest(ctx context.Context, count int) ([]entities.Submission, error) {
	if count < 1 {
		count = defaultJournalCount
	}
	count = min(count, maxJournalCount)

	var subs []entities.Submission
	fn := func() error {
		var err error
		subs, err = s.reader.LatestSubmissions(ctx, count)
		return err
	}
	cfg := utils.RetryConfig{
		InitialDelay: 100 * time.Millisecond,
		MaxAttempts:  3,
		Multiplier:   2,
	}
	if err := utils.Retry(ctx, cfg, fn, context.Canceled, context.DeadlineExceeded); err != nil {
		s.logger.ErrorContext(ctx, "failed to read submission journal", slog.Any("error", err))
		return nil, err
	}
	return subs, nil
}
