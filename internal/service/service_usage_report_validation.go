package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-search-keeper/internal/validators"
	"github.com/MKhiriev/go-search-keeper/models"
)

type usageReportValidationService struct {
	inner     UsageReportService
	validator validators.Validator
}

func NewUsageReportValidationService() UsageReportServiceWrapper {
	return &usageReportValidationService{
		validator: validators.NewUsageReportValidator(),
	}
}

func (v *usageReportValidationService) Wrap(inner UsageReportService) UsageReportService {
	v.inner = inner
	return v
}

func (v *usageReportValidationService) Submit(ctx context.Context, report models.UsageReport) error {
	if err := v.validator.Validate(ctx, report); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.Submit(ctx, report)
}
