package services

import (
	"context"
	"errors"

	"github.com/yigit/prisonadmin/internal/app/models"
	"github.com/yigit/prisonadmin/internal/pkg/apperrors"
)

// SentenceService handles sentence operations
type SentenceService struct {
	sentences SentenceStore
}

// NewSentenceService creates a new sentence service instance
func NewSentenceService(sentences SentenceStore) *SentenceService {
	return &SentenceService{sentences: sentences}
}

// GetAll lists every sentence
func (s *SentenceService) GetAll(ctx context.Context) ([]models.Sentence, error) {
	return s.sentences.GetAll(ctx)
}

// Add validates and stores a sentence, filling in its generated id
func (s *SentenceService) Add(ctx context.Context, sentence *models.Sentence) error {
	if sentence == nil {
		return invalid("sentence is required")
	}
	if sentence.InmateID <= 0 {
		return invalid("inmate id must be positive")
	}
	if err := validateSentence(*sentence); err != nil {
		return err
	}
	return s.sentences.Create(ctx, sentence)
}

// Reduce shortens every sentence of an inmate by months, never below zero.
// It reports false when the inmate has no sentence.
func (s *SentenceService) Reduce(ctx context.Context, inmateID int64, months int) (bool, error) {
	if inmateID <= 0 {
		return false, invalid("inmate id must be positive")
	}
	if months <= 0 {
		return false, invalid("months reduced must be positive")
	}

	err := s.sentences.Reduce(ctx, inmateID, months)
	if errors.Is(err, apperrors.ErrResourceNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
