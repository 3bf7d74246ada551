package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-search-keeper/internal/logger"
	"github.com/MKhiriev/go-search-keeper/models"
)

// usageLogRepository keeps the outbound usage-log queue in the access_logs
// table. Logs are consumed oldest first.
type usageLogRepository struct {
	*DB
	logger *logger.Logger
}

// NewUsageLogRepository constructs a [UsageLogRepository] over db.
func NewUsageLogRepository(db *DB, logger *logger.Logger) UsageLogRepository {
	return &usageLogRepository{
		DB:     db,
		logger: logger,
	}
}

// Add enqueues a log and returns its row id.
func (u *usageLogRepository) Add(ctx context.Context, usageLog models.UsageLog) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertUsageLogQuery(usageLog)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := u.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "usageLogRepository.Add").
			Str("keyword", usageLog.Keyword).
			Msg("failed to insert usage log")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return id, nil
}

// Oldest returns the first queued log or [ErrNoPendingUsageLogs].
func (u *usageLogRepository) Oldest(ctx context.Context) (models.UsageLog, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildOldestUsageLogQuery()
	if err != nil {
		return models.UsageLog{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var (
		usageLog      models.UsageLog
		intervieweeID sql.NullString
		keyword       sql.NullString
	)
	err = u.DB.QueryRowContext(ctx, query, args...).
		Scan(&usageLog.ID, &usageLog.SubmitTime, &intervieweeID, &keyword)
	if errors.Is(err, sql.ErrNoRows) {
		return models.UsageLog{}, ErrNoPendingUsageLogs
	}
	if err != nil {
		log.Err(err).
			Str("func", "usageLogRepository.Oldest").
			Msg("failed to read oldest usage log")
		return models.UsageLog{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	usageLog.IntervieweeID = intervieweeID.String
	usageLog.Keyword = keyword.String

	return usageLog, nil
}

// Delete removes a submitted log.
func (u *usageLogRepository) Delete(ctx context.Context, id int64) error {
	query, args, err := buildDeleteUsageLogQuery(id)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = u.DB.ExecContext(ctx, query, args...); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "usageLogRepository.Delete").
			Int64("id", id).
			Msg("failed to delete usage log")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// Count returns the queue length.
func (u *usageLogRepository) Count(ctx context.Context) (int64, error) {
	query, args, err := buildCountUsageLogsQuery()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var n int64
	if err = u.DB.QueryRowContext(ctx, query, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return n, nil
}
