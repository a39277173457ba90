package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-thread-chat/internal/adapter"
	"github.com/MKhiriev/go-thread-chat/internal/logger"
	"github.com/MKhiriev/go-thread-chat/models"
)

type clientThreadService struct {
	adapter adapter.ServerAdapter
	ids     IDGenerator
	logger  *logger.Logger
}

func NewClientThreadService(serverAdapter adapter.ServerAdapter, ids IDGenerator, logger *logger.Logger) ClientThreadService {
	return &clientThreadService{adapter: serverAdapter, ids: ids, logger: logger}
}

func (s *clientThreadService) Inbox(ctx context.Context) ([]models.ThreadSummary, error) {
	all, err := s.adapter.ListThreads(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrListThreads, mapAdapterError(err))
	}

	threads := make([]models.ThreadSummary, 0, len(all))
	for _, t := range all {
		if len(t.Participants) == 0 {
			continue
		}
		threads = append(threads, t)
	}

	s.logger.Debug().Int("total", len(all)).Int("listed", len(threads)).Msg("inbox fetched")
	return threads, nil
}

func (s *clientThreadService) FetchThread(ctx context.Context, threadID string) (models.Thread, error) {
	if threadID == "" {
		return models.Thread{}, fmt.Errorf("%w: %w", ErrFetchThread, ErrEmptyThread)
	}

	thread, err := s.adapter.GetThread(ctx, threadID)
	if err != nil {
		return models.Thread{}, fmt.Errorf("%w: %w", ErrFetchThread, mapAdapterError(err))
	}

	return thread, nil
}

func (s *clientThreadService) SendMessage(ctx context.Context, threadID, text string) error {
	if threadID == "" {
		return fmt.Errorf("%w: %w", ErrSendMessage, ErrEmptyThread)
	}
	if text == "" {
		return fmt.Errorf("%w: %w", ErrSendMessage, ErrEmptyText)
	}

	key := s.ids.Generate()
	if err := s.adapter.SendMessage(ctx, threadID, text, key); err != nil {
		s.logger.Warn().Err(err).Str("thread", threadID).Str("key", key).Msg("send failed")
		return fmt.Errorf("%w: %w", ErrSendMessage, mapAdapterError(err))
	}

	return nil
}
