package service

import (
	"context"

	"github.com/MKhiriev/go-search-keeper/internal/logger"
	"github.com/MKhiriev/go-search-keeper/internal/store"
)

type feedService struct {
	feed   store.FeedSource
	images store.ImageSource

	logger *logger.Logger
}

func NewFeedService(feed store.FeedSource, images store.ImageSource, logger *logger.Logger) FeedService {
	return &feedService{
		feed:   feed,
		images: images,
		logger: logger,
	}
}

func (f *feedService) Feed(ctx context.Context) (store.Document, error) {
	return f.feed.OpenFeed(ctx)
}

func (f *feedService) Image(ctx context.Context, id string) (store.Document, error) {
	return f.images.OpenImage(ctx, id)
}
