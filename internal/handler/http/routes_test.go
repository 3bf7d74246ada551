// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"compress/gzip"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-search-keeper/internal/app"
	"github.com/MKhiriev/go-search-keeper/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const feedBody = `{"Version":"7","Menus":[{"id":"crops","label":"Crops"}]}`

func TestGetFeed_Plain(t *testing.T) {
	ts := newTestServer(t)
	doc, content := newDocument("feed.json", feedBody)
	ts.feed.EXPECT().Feed(gomock.Any()).Return(doc, nil)

	rec := httptest.NewRecorder()
	ts.handler.Init().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/feed", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, feedBody, rec.Body.String())
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.Empty(t, rec.Header().Get("Content-Encoding"))
	assert.True(t, content.closed)
}

func TestGetFeed_Gzip(t *testing.T) {
	ts := newTestServer(t)
	doc, _ := newDocument("feed.json", feedBody)
	ts.feed.EXPECT().Feed(gomock.Any()).Return(doc, nil)

	req := httptest.NewRequest(http.MethodGet, "/feed", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	req.Header.Set("Range", "bytes=0-3")
	rec := httptest.NewRecorder()
	ts.handler.Init().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "gzip", rec.Header().Get("Content-Encoding"))
	assert.Empty(t, rec.Header().Get("Content-Length"))

	zr, err := gzip.NewReader(rec.Body)
	require.NoError(t, err)
	body, err := io.ReadAll(zr)
	require.NoError(t, err)
	assert.Equal(t, feedBody, string(body))
}

func TestGetFeed_NotModifiedIsNotCompressed(t *testing.T) {
	ts := newTestServer(t)
	doc, _ := newDocument("feed.json", feedBody)
	ts.feed.EXPECT().Feed(gomock.Any()).Return(doc, nil)

	req := httptest.NewRequest(http.MethodGet, "/feed", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	req.Header.Set("If-Modified-Since", doc.ModTime.UTC().Format(http.TimeFormat))
	rec := httptest.NewRecorder()
	ts.handler.Init().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotModified, rec.Code)
	assert.Empty(t, rec.Header().Get("Content-Encoding"))
	assert.Zero(t, rec.Body.Len())
}

func TestGetFeed_Errors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "missing feed", err: store.ErrFeedNotFound, wantStatus: http.StatusNotFound},
		{name: "io error", err: io.ErrUnexpectedEOF, wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := newTestServer(t)
			ts.feed.EXPECT().Feed(gomock.Any()).Return(store.Document{}, tt.err)

			rec := httptest.NewRecorder()
			ts.handler.Init().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/feed", nil))
			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), app.MsgFeedUnavailable)
		})
	}
}

func TestGetImage(t *testing.T) {
	ts := newTestServer(t)
	doc, content := newDocument("img-1", "\x89PNG\r\n\x1a\n")
	ts.feed.EXPECT().Image(gomock.Any(), "img-1").Return(doc, nil)
	ts.feed.EXPECT().Image(gomock.Any(), "missing").Return(store.Document{}, store.ErrImageNotFound)

	router := ts.handler.Init()

	req := httptest.NewRequest(http.MethodGet, "/images/img-1", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Header().Get("Content-Encoding"), "images are not recompressed")
	assert.Equal(t, "\x89PNG\r\n\x1a\n", rec.Body.String())
	assert.True(t, content.closed)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/images/missing", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestInit_UnsupportedMethodIsNotFound(t *testing.T) {
	ts := newTestServer(t)
	router := ts.handler.Init()

	for _, path := range []string{"/feed", "/usage"} {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, path, nil))
		assert.Equal(t, http.StatusNotFound, rec.Code, path)
	}
}

func TestInit_TraceID(t *testing.T) {
	ts := newTestServer(t)
	ts.feed.EXPECT().Feed(gomock.Any()).Return(store.Document{}, store.ErrFeedNotFound).Times(2)
	router := ts.handler.Init()

	req := httptest.NewRequest(http.MethodGet, "/feed", nil)
	req.Header.Set(traceIDHeader, "trace-123")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, "trace-123", rec.Header().Get(traceIDHeader))
	assert.Contains(t, ts.logs.String(), `"trace_id":"trace-123"`)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/feed", nil))
	assert.NotEmpty(t, rec.Header().Get(traceIDHeader))
}

func TestInit_AccessLog(t *testing.T) {
	ts := newTestServer(t)
	doc, _ := newDocument("feed.json", feedBody)
	ts.feed.EXPECT().Feed(gomock.Any()).Return(doc, nil)

	rec := httptest.NewRecorder()
	ts.handler.Init().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/feed", nil))

	logs := ts.logs.String()
	assert.Contains(t, logs, `"uri":"/feed"`)
	assert.Contains(t, logs, `"method":"GET"`)
	assert.Contains(t, logs, `"status":200`)
	assert.Contains(t, logs, `"remote_ip":"192.0.2.1"`)
}
