package service

import (
	"context"
	"errors"
	"time"

	"github.com/MKhiriev/go-search-keeper/internal/adapter"
	"github.com/MKhiriev/go-search-keeper/internal/logger"
	"github.com/MKhiriev/go-search-keeper/internal/store"
	"github.com/MKhiriev/go-search-keeper/models"
)

type clientUsageService struct {
	logs      store.UsageLogRepository
	submitter adapter.UsageSubmitter
	usage     models.UsageContext
	now       func() time.Time
}

// NewClientUsageService returns a usage service. A nil submitter keeps logs
// queued locally and makes SubmitPending a no-op.
func NewClientUsageService(logs store.UsageLogRepository, submitter adapter.UsageSubmitter, usage models.UsageContext) ClientUsageService {
	return &clientUsageService{
		logs:      logs,
		submitter: submitter,
		usage:     usage,
		now:       time.Now,
	}
}

func (u *clientUsageService) Record(ctx context.Context, intervieweeID, keyword string) error {
	if keyword == "" {
		return ErrEmptyKeyword
	}

	_, err := u.logs.Add(ctx, models.UsageLog{
		SubmitTime:    u.now(),
		IntervieweeID: intervieweeID,
		Keyword:       keyword,
	})
	return err
}

func (u *clientUsageService) SubmitPending(ctx context.Context) (int, error) {
	if u.submitter == nil {
		return 0, nil
	}

	log := logger.FromContext(ctx)

	submitted := 0
	for {
		if err := ctx.Err(); err != nil {
			return submitted, err
		}

		usageLog, err := u.logs.Oldest(ctx)
		if errors.Is(err, store.ErrNoPendingUsageLogs) {
			break
		}
		if err != nil {
			return submitted, err
		}

		if err = u.submitter.Submit(ctx, usageLog, u.usage); err != nil {
			log.Warn().Err(err).
				Str("func", "clientUsageService.SubmitPending").
				Int64("log_id", usageLog.ID).
				Int("submitted", submitted).
				Msg("usage log not accepted, keeping queue")
			return submitted, err
		}

		if err = u.logs.Delete(ctx, usageLog.ID); err != nil {
			return submitted, err
		}
		submitted++
	}

	if submitted > 0 {
		log.Info().
			Str("func", "clientUsageService.SubmitPending").
			Int("submitted", submitted).
			Msg("usage logs submitted")
	}
	return submitted, nil
}
