package store

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/MKhiriev/go-search-keeper/internal/logger"
	"github.com/MKhiriev/go-search-keeper/models"
)

// usageReportFileRepository appends usage reports to a JSON Lines file.
type usageReportFileRepository struct {
	path   string
	mu     sync.Mutex
	logger *logger.Logger
}

// NewUsageReportRepository returns a [UsageReportRepository] backed by the
// JSON Lines file at path. Parent directories are created on demand.
func NewUsageReportRepository(path string, logger *logger.Logger) (UsageReportRepository, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create usage log dir: %w", err)
	}
	return &usageReportFileRepository{path: path, logger: logger}, nil
}

func (u *usageReportFileRepository) Append(ctx context.Context, report models.UsageReport) error {
	line, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("encode usage report: %w", err)
	}
	line = append(line, '\n')

	u.mu.Lock()
	defer u.mu.Unlock()

	file, err := os.OpenFile(u.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "usageReportFileRepository.Append").
			Str("path", u.path).
			Msg("failed to open usage log")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	defer file.Close()

	if _, err = file.Write(line); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "usageReportFileRepository.Append").
			Str("path", u.path).
			Msg("failed to append usage report")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// List reads every stored report. Lines that fail to decode are skipped.
func (u *usageReportFileRepository) List(ctx context.Context) ([]models.UsageReport, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	file, err := os.Open(u.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer file.Close()

	var reports []models.UsageReport
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		var report models.UsageReport
		if err = json.Unmarshal(scanner.Bytes(), &report); err != nil {
			logger.FromContext(ctx).Warn().Err(err).
				Str("func", "usageReportFileRepository.List").
				Msg("skipping malformed usage report line")
			continue
		}
		reports = append(reports, report)
	}
	if err = scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return reports, nil
}
