package http

import (
	"bytes"
	"testing"
	"time"

	"github.com/MKhiriev/go-search-keeper/internal/logger"
	"github.com/MKhiriev/go-search-keeper/internal/mock"
	"github.com/MKhiriev/go-search-keeper/internal/service"
	"github.com/MKhiriev/go-search-keeper/internal/store"
	"go.uber.org/mock/gomock"
)

type closingReader struct {
	*bytes.Reader
	closed bool
}

func (c *closingReader) Close() error {
	c.closed = true
	return nil
}

func newDocument(name, body string) (store.Document, *closingReader) {
	content := &closingReader{Reader: bytes.NewReader([]byte(body))}
	return store.Document{
		Name:    name,
		ModTime: time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
		Content: content,
	}, content
}

type testServer struct {
	handler *Handler
	feed    *mock.MockFeedService
	usage   *mock.MockUsageReportService
	logs    *bytes.Buffer
}

func newTestServer(t *testing.T) *testServer {
	ctrl := gomock.NewController(t)
	feed := mock.NewMockFeedService(ctrl)
	usage := mock.NewMockUsageReportService(ctrl)

	var logs bytes.Buffer
	h := NewHandler(&service.Services{
		FeedService:        feed,
		UsageReportService: usage,
	}, logger.NewLogger("server", &logs))

	return &testServer{handler: h, feed: feed, usage: usage, logs: &logs}
}
