package service

import (
	"context"
	"log"
	"time"

	"fizikl/internal/cache"
	"fizikl/internal/insights"
	"fizikl/internal/model"
	"fizikl/internal/repository"

	"github.com/oklog/ulid/v2"
)

// SurveyService orchestrates the insights engine, record storage and cache
type SurveyService struct {
	repo  repository.RecordRepo
	cache cache.RecordCache
}

// NewSurveyService creates a new survey service
func NewSurveyService(repo repository.RecordRepo, recordCache cache.RecordCache) *SurveyService {
	return &SurveyService{
		repo:  repo,
		cache: recordCache,
	}
}

// Submit validates and scores the answers, persists the record and
// returns it. A *model.ValidationError means bad input; anything else
// is a storage failure.
func (s *SurveyService) Submit(ctx context.Context, answers model.SurveyAnswers) (*model.SurveyRecord, error) {
	normalized, err := insights.Validate(answers)
	if err != nil {
		return nil, err
	}

	summary, err := insights.Generate(normalized)
	if err != nil {
		return nil, err
	}

	record := &model.SurveyRecord{
		ID:        ulid.Make().String(),
		Answers:   normalized,
		Results:   *summary,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, record); err != nil {
		return nil, err
	}

	// Cache failures degrade to Mongo reads, never fail the request
	if err := s.cache.Set(ctx, record); err != nil {
		log.Printf("Warning: failed to cache record %s: %v", record.ID, err)
	}

	return record, nil
}

// Fetch returns a stored record by id, (nil, nil) when it does not exist
func (s *SurveyService) Fetch(ctx context.Context, id string) (*model.SurveyRecord, error) {
	record, err := s.cache.Get(ctx, id)
	if err != nil {
		log.Printf("Warning: cache read failed for record %s: %v", id, err)
	}
	if record != nil {
		return record, nil
	}

	record, err = s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, nil
	}

	if err := s.cache.Set(ctx, record); err != nil {
		log.Printf("Warning: failed to cache record %s: %v", record.ID, err)
	}
	return record, nil
}
