// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-search-keeper/models"
	"github.com/stretchr/testify/assert"
)

var fixedNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func newTestValidator() *UsageReportValidator {
	return &UsageReportValidator{now: func() time.Time { return fixedNow }}
}

func validUsageReport() models.UsageReport {
	return models.UsageReport{
		Log: models.UsageLog{
			SubmitTime:    fixedNow.Add(-time.Hour),
			IntervieweeID: "iv-1",
			Keyword:       "wheat",
		},
		Context:  models.UsageContext{HandsetID: "h-1", Location: "north"},
		Received: fixedNow,
	}
}

func TestNewUsageReportValidator(t *testing.T) {
	v := NewUsageReportValidator()
	assert.NotNil(t, v)
	assert.IsType(t, &UsageReportValidator{}, v)
}

func TestUsageReportValidator_UnsupportedType(t *testing.T) {
	err := newTestValidator().Validate(context.Background(), "not a report")
	assert.ErrorIs(t, err, ErrUnsupportedType)
}

func TestUsageReportValidator_UsageReport(t *testing.T) {
	long := strings.Repeat("x", MaxFieldLength+1)

	tests := []struct {
		name    string
		mutate  func(r *models.UsageReport)
		fields  []string
		wantErr error
	}{
		{name: "valid", mutate: func(r *models.UsageReport) {}},
		{name: "empty interviewee and location are allowed", mutate: func(r *models.UsageReport) {
			r.Log.IntervieweeID = ""
			r.Context.Location = ""
		}},
		{name: "empty keyword", mutate: func(r *models.UsageReport) { r.Log.Keyword = "" }, wantErr: ErrEmptyKeyword},
		{name: "long keyword", mutate: func(r *models.UsageReport) { r.Log.Keyword = long }, wantErr: ErrFieldTooLong},
		{name: "zero submit time", mutate: func(r *models.UsageReport) { r.Log.SubmitTime = time.Time{} }, wantErr: ErrInvalidSubmitTime},
		{name: "submit time within skew", mutate: func(r *models.UsageReport) { r.Log.SubmitTime = fixedNow.Add(time.Hour) }},
		{name: "submit time far ahead", mutate: func(r *models.UsageReport) { r.Log.SubmitTime = fixedNow.Add(48 * time.Hour) }, wantErr: ErrSubmitTimeInFuture},
		{name: "long interviewee", mutate: func(r *models.UsageReport) { r.Log.IntervieweeID = long }, wantErr: ErrFieldTooLong},
		{name: "empty handset is allowed", mutate: func(r *models.UsageReport) { r.Context.HandsetID = "" }},
		{name: "long handset", mutate: func(r *models.UsageReport) { r.Context.HandsetID = long }, wantErr: ErrFieldTooLong},
		{name: "long location", mutate: func(r *models.UsageReport) { r.Context.Location = long }, wantErr: ErrFieldTooLong},
		{name: "zero received", mutate: func(r *models.UsageReport) { r.Received = time.Time{} }, wantErr: ErrInvalidReceivedTime},
		{name: "scoped to keyword skips received", mutate: func(r *models.UsageReport) { r.Received = time.Time{} }, fields: []string{FieldKeyword}},
		{name: "unknown field", mutate: func(r *models.UsageReport) {}, fields: []string{"bogus"}, wantErr: ErrUnknownField},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report := validUsageReport()
			tt.mutate(&report)

			err := newTestValidator().Validate(context.Background(), &report, tt.fields...)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestUsageReportValidator_UsageLog(t *testing.T) {
	v := newTestValidator()
	ctx := context.Background()

	log := validUsageReport().Log
	assert.NoError(t, v.Validate(ctx, log))

	log.Keyword = ""
	assert.ErrorIs(t, v.Validate(ctx, &log), ErrEmptyKeyword)
	assert.NoError(t, v.Validate(ctx, log, FieldSubmitTime))
	assert.ErrorIs(t, v.Validate(ctx, log, FieldHandsetID), ErrUnknownField)
}
