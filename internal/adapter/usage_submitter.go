package adapter

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-search-keeper/internal/logger"
	"github.com/MKhiriev/go-search-keeper/internal/utils"
	"github.com/MKhiriev/go-search-keeper/models"
)

// httpUsageSubmitter reports one usage log per GET request.
type httpUsageSubmitter struct {
	client *utils.HTTPClient
	url    string
	logger *logger.Logger
}

// NewHTTPUsageSubmitter constructs a [UsageSubmitter] posting to usageURL.
func NewHTTPUsageSubmitter(usageURL string, timeout time.Duration, logger *logger.Logger) (UsageSubmitter, error) {
	u, err := normalizeURL(usageURL)
	if err != nil {
		return nil, fmt.Errorf("invalid usage url: %w", err)
	}

	client := utils.NewHTTPClient(timeout)
	client.SetTimeout(timeout)

	return &httpUsageSubmitter{
		client: client,
		url:    u,
		logger: logger,
	}, nil
}

// Submit sends usageLog. Only a 200 response counts as accepted.
func (h *httpUsageSubmitter) Submit(ctx context.Context, usageLog models.UsageLog, uc models.UsageContext) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"log":                 "true",
			"handset_submit_time": usageLog.SubmitTime.Format(models.UsageTimeLayout),
			"interviewee_id":      usageLog.IntervieweeID,
			"keyword":             usageLog.Keyword,
			"location":            uc.Location,
			"handset_id":          uc.HandsetID,
		}).
		Get(h.url)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "httpUsageSubmitter.Submit").
			Int64("log_id", usageLog.ID).
			Msg("usage log request failed")
		return fmt.Errorf("%w: %w", ErrUsageSubmit, err)
	}

	if err = mapHTTPError(resp); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "httpUsageSubmitter.Submit").
			Int64("log_id", usageLog.ID).
			Int("status", resp.StatusCode()).
			Msg("usage log rejected")
		return fmt.Errorf("%w: %w", ErrUsageSubmit, err)
	}

	return nil
}
