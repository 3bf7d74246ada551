package adapter

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/MKhiriev/go-search-keeper/internal/logger"
	"github.com/MKhiriev/go-search-keeper/internal/utils"
)

// maxErrorBody caps how much of a rejected response is kept for the error.
const maxErrorBody = 512

// httpFeedDownloader fetches the catalog feed with a single GET and hands
// the body to the caller unread.
type httpFeedDownloader struct {
	client      *utils.HTTPClient
	url         string
	idleTimeout time.Duration
	logger      *logger.Logger
}

// NewHTTPFeedDownloader constructs a [FeedDownloader] for feedURL. timeout
// bounds connecting and every single read of the body.
func NewHTTPFeedDownloader(feedURL string, timeout time.Duration, logger *logger.Logger) (FeedDownloader, error) {
	u, err := normalizeURL(feedURL)
	if err != nil {
		return nil, fmt.Errorf("invalid feed url: %w", err)
	}

	return &httpFeedDownloader{
		client:      utils.NewHTTPClient(timeout),
		url:         u,
		idleTimeout: timeout,
		logger:      logger,
	}, nil
}

// Fetch starts the download and returns the response body as a stream.
// Canceling ctx aborts the transfer; the stream then reports [ErrCanceled].
// Every other failure is reported as [ErrFetch].
func (d *httpFeedDownloader) Fetch(ctx context.Context) (io.ReadCloser, error) {
	log := logger.FromContext(ctx)

	reqCtx, cancel := context.WithCancel(ctx)

	resp, err := d.client.R().
		SetContext(reqCtx).
		SetDoNotParseResponse(true).
		Get(d.url)
	if err != nil {
		cancel()
		if ctx.Err() != nil {
			log.Info().Str("func", "httpFeedDownloader.Fetch").Msg("feed download canceled before response")
			return nil, ErrCanceled
		}
		log.Err(err).Str("func", "httpFeedDownloader.Fetch").Str("url", d.url).Msg("feed request failed")
		return nil, fmt.Errorf("%w: %w", ErrFetch, err)
	}

	if resp.StatusCode() != http.StatusOK {
		var snippet []byte
		if body := resp.RawBody(); body != nil {
			snippet, _ = io.ReadAll(io.LimitReader(body, maxErrorBody))
			body.Close()
		}
		cancel()
		err = mapStatusError(resp.StatusCode(), snippet)
		log.Err(err).
			Str("func", "httpFeedDownloader.Fetch").
			Str("url", d.url).
			Int("status", resp.StatusCode()).
			Msg("feed request rejected")
		return nil, fmt.Errorf("%w: %w", ErrFetch, err)
	}

	log.Debug().
		Str("func", "httpFeedDownloader.Fetch").
		Int64("content_length", resp.RawResponse.ContentLength).
		Msg("feed response received")

	return newFeedStream(ctx, resp.RawBody(), cancel, d.idleTimeout, log), nil
}

// feedStream wraps a response body with cooperative cancellation and a
// per-read idle timeout.
type feedStream struct {
	ctx    context.Context
	body   io.ReadCloser
	cancel context.CancelFunc

	idle     time.Duration
	timer    *time.Timer
	timedOut atomic.Bool

	read      int64
	closeOnce sync.Once
	doneOnce  sync.Once
	log       *logger.Logger
}

func newFeedStream(ctx context.Context, body io.ReadCloser, cancel context.CancelFunc, idle time.Duration, log *logger.Logger) *feedStream {
	s := &feedStream{
		ctx:    ctx,
		body:   body,
		cancel: cancel,
		idle:   idle,
		log:    log,
	}
	if idle > 0 {
		s.timer = time.AfterFunc(idle, func() {
			s.timedOut.Store(true)
			s.cancel()
		})
		s.timer.Stop()
	}
	return s
}

// Read checks for cancellation before touching the body. The idle timer
// only runs while a Read is in progress, so slow consumers are not
// penalized.
func (s *feedStream) Read(p []byte) (int, error) {
	if s.ctx.Err() != nil {
		s.Close()
		return 0, ErrCanceled
	}

	if s.timer != nil {
		s.timer.Reset(s.idle)
	}
	n, err := s.body.Read(p)
	if s.timer != nil {
		s.timer.Stop()
	}
	s.read += int64(n)

	switch {
	case err == nil:
		return n, nil
	case errors.Is(err, io.EOF):
		s.doneOnce.Do(func() {
			s.log.Info().
				Str("func", "feedStream.Read").
				Int64("bytes", s.read).
				Msg("feed download complete")
		})
		return n, io.EOF
	case s.ctx.Err() != nil:
		s.Close()
		return n, ErrCanceled
	case s.timedOut.Load():
		s.Close()
		return n, fmt.Errorf("%w: %w after %s", ErrFetch, ErrIdleTimeout, s.idle)
	default:
		return n, fmt.Errorf("%w: %w", ErrFetch, err)
	}
}

// Close releases the connection. It is safe to call more than once.
func (s *feedStream) Close() error {
	var err error
	s.closeOnce.Do(func() {
		if s.timer != nil {
			s.timer.Stop()
		}
		s.cancel()
		err = s.body.Close()
	})
	return err
}
