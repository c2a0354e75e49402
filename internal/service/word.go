package service

import (
	"context"
	"fmt"

	"vocabot/internal/domain"
	"vocabot/internal/parser"
	"vocabot/internal/repository"

	"go.uber.org/zap"
)

// UploadResult reports how an uploaded note was split
type UploadResult struct {
	Recognized   []domain.WordPair
	Unrecognized []domain.WordPair
}

// WordService handles word uploads and listing
type WordService struct {
	store  repository.Store
	logger *zap.Logger
}

// NewWordService creates a new word service
func NewWordService(store repository.Store, logger *zap.Logger) *WordService {
	return &WordService{
		store:  store,
		logger: logger,
	}
}

// Upload parses text and stores every recognized pair
func (s *WordService) Upload(ctx context.Context, userID int64, text string) (UploadResult, error) {
	recognized, unrecognized := parser.Parse(text)
	result := UploadResult{Recognized: recognized, Unrecognized: unrecognized}

	if len(recognized) == 0 {
		return result, nil
	}

	err := repository.WithConn(ctx, s.store, func(conn repository.Conn) error {
		return conn.AddWords(ctx, userID, recognized)
	})
	if err != nil {
		return UploadResult{}, fmt.Errorf("save words: %w", err)
	}

	s.logger.Info("Words uploaded",
		zap.Int64("user_id", userID),
		zap.Int("recognized", len(recognized)),
		zap.Int("unrecognized", len(unrecognized)),
	)

	return result, nil
}

// ListWords returns all words of the user in upload order
func (s *WordService) ListWords(ctx context.Context, userID int64) ([]domain.WordPair, error) {
	var words []domain.WordPair
	err := repository.WithConn(ctx, s.store, func(conn repository.Conn) error {
		var err error
		words, err = conn.ListWords(ctx, userID)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("list words: %w", err)
	}
	return words, nil
}
