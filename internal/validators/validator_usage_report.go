package validators

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-search-keeper/models"
)

const (
	FieldKeyword       = "keyword"
	FieldSubmitTime    = "handset_submit_time"
	FieldIntervieweeID = "interviewee_id"
	FieldHandsetID     = "handset_id"
	FieldLocation      = "location"
	FieldReceived      = "received"
)

// MaxFieldLength bounds every free-text usage field.
const MaxFieldLength = 256

// submitTimeSkew is how far ahead of the server clock a handset clock may run.
const submitTimeSkew = 24 * time.Hour

// UsageReportValidator checks usage logs submitted by handsets.
type UsageReportValidator struct {
	now func() time.Time
}

func NewUsageReportValidator() Validator {
	return &UsageReportValidator{now: time.Now}
}

func (v *UsageReportValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.UsageReport:
		return v.validateUsageReport(ctx, value, fields...)
	case *models.UsageReport:
		return v.validateUsageReport(ctx, *value, fields...)

	case models.UsageLog:
		return v.validateUsageLog(ctx, value, fields...)
	case *models.UsageLog:
		return v.validateUsageLog(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *UsageReportValidator) validateUsageReport(ctx context.Context, report models.UsageReport, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldKeyword, FieldSubmitTime, FieldIntervieweeID, FieldHandsetID, FieldLocation, FieldReceived}
	}

	for _, f := range fields {
		switch f {
		case FieldKeyword, FieldSubmitTime, FieldIntervieweeID:
			if err := v.validateUsageLog(ctx, report.Log, f); err != nil {
				return err
			}
		case FieldHandsetID:
			if len(report.Context.HandsetID) > MaxFieldLength {
				return fmt.Errorf("%w: %s", ErrFieldTooLong, f)
			}
		case FieldLocation:
			if len(report.Context.Location) > MaxFieldLength {
				return fmt.Errorf("%w: %s", ErrFieldTooLong, f)
			}
		case FieldReceived:
			if report.Received.IsZero() {
				return ErrInvalidReceivedTime
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *UsageReportValidator) validateUsageLog(_ context.Context, log models.UsageLog, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldKeyword, FieldSubmitTime, FieldIntervieweeID}
	}

	for _, f := range fields {
		switch f {
		case FieldKeyword:
			if log.Keyword == "" {
				return ErrEmptyKeyword
			}
			if len(log.Keyword) > MaxFieldLength {
				return fmt.Errorf("%w: %s", ErrFieldTooLong, f)
			}
		case FieldSubmitTime:
			if log.SubmitTime.IsZero() {
				return ErrInvalidSubmitTime
			}
			if log.SubmitTime.After(v.now().Add(submitTimeSkew)) {
				return ErrSubmitTimeInFuture
			}
		case FieldIntervieweeID:
			if len(log.IntervieweeID) > MaxFieldLength {
				return fmt.Errorf("%w: %s", ErrFieldTooLong, f)
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
