package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/brieflyhq/briefly-backend/internal/apperrors"
	"github.com/brieflyhq/briefly-backend/internal/logger"
	"github.com/brieflyhq/briefly-backend/internal/repos"
	"github.com/brieflyhq/briefly-backend/internal/types"
)

const (
	MinLessonsPerBatch = 1
	MaxLessonsPerBatch = 20

	batchExpiryHorizon = 90 * 24 * time.Hour
)

var defaultProfileTopics = []string{"general"}

type LessonService interface {
	GenerateLessons(ctx context.Context, userID uuid.UUID, lessonTitle *string, numOfLessons int) (*types.LessonBatch, error)
	GetLesson(ctx context.Context, id string) (*types.LessonBatch, error)
	ListUserLessons(ctx context.Context, userID uuid.UUID, limit, skip int64) ([]*types.LessonBatch, error)
	DeleteLesson(ctx context.Context, id string, userID uuid.UUID) error
}

type lessonService struct {
	db          *gorm.DB
	log         *logger.Logger
	profileRepo repos.ProfileRepo
	batchRepo   repos.LessonBatchRepo
	groq        GroqClient
	gemini      GeminiClient
}

func NewLessonService(
	db *gorm.DB,
	log *logger.Logger,
	profileRepo repos.ProfileRepo,
	batchRepo repos.LessonBatchRepo,
	groq GroqClient,
	gemini GeminiClient,
) LessonService {
	serviceLog := log.With("service", "LessonService")
	return &lessonService{
		db:          db,
		log:         serviceLog,
		profileRepo: profileRepo,
		batchRepo:   batchRepo,
		groq:        groq,
		gemini:      gemini,
	}
}

// GenerateLessons runs the full generation flow: profile lookup (with lazy
// default-profile creation), prompt construction, provider dispatch on the
// learning preference, response validation, and document-store persistence.
// All-or-nothing per request; no retry wraps the provider call.
func (ls *lessonService) GenerateLessons(ctx context.Context, userID uuid.UUID, lessonTitle *string, numOfLessons int) (*types.LessonBatch, error) {
	if numOfLessons < MinLessonsPerBatch || numOfLessons > MaxLessonsPerBatch {
		return nil, fmt.Errorf("%w: num_of_lessons must be between %d and %d", apperrors.ErrInvalidArgument, MinLessonsPerBatch, MaxLessonsPerBatch)
	}

	profile, err := ls.loadOrCreateDefaultProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	topics := profile.TopicList()
	prompt := BuildLessonPrompt(topics, profile.Goal, profile.LearningType, lessonTitle, numOfLessons)

	var raw string
	var genErr error
	if profile.LearningType == types.LearningTypeText {
		raw, genErr = ls.groq.GenerateLessons(ctx, GeneratorSystemInstruction(profile.LearningType), prompt)
	} else {
		raw, genErr = ls.gemini.GenerateLessons(ctx, GeneratorSystemInstruction(profile.LearningType), prompt)
	}
	if genErr != nil {
		return nil, fmt.Errorf("failed to generate lessons: %w", genErr)
	}

	items, parseErr := parseLessonsPayload(raw)
	if parseErr != nil {
		return nil, fmt.Errorf("failed to generate lessons: %w", parseErr)
	}

	now := time.Now().UTC()
	batch := &types.LessonBatch{
		ID:           uuid.New().String(),
		UserID:       userID.String(),
		LearningType: profile.LearningType,
		Topics:       topics,
		Goal:         profile.Goal,
		NumOfLessons: numOfLessons,
		Lessons:      items,
		CreatedAt:    now,
		ExpiresAt:    now.Add(batchExpiryHorizon),
	}

	if iErr := ls.batchRepo.Insert(ctx, batch); iErr != nil {
		return nil, fmt.Errorf("failed to store lesson batch: %w", iErr)
	}
	ls.log.Info("Lesson batch generated",
		"user_id", userID,
		"batch_id", batch.ID,
		"learning_type", batch.LearningType,
		"num_of_lessons", batch.NumOfLessons,
	)
	return batch, nil
}

// loadOrCreateDefaultProfile returns the user's profile, synthesizing a TEXT
// profile with a placeholder topic when onboarding was skipped. If persisting
// the default fails, the original not-found is surfaced.
func (ls *lessonService) loadOrCreateDefaultProfile(ctx context.Context, userID uuid.UUID) (*types.Profile, error) {
	profiles, err := ls.profileRepo.GetByUserIDs(ctx, nil, []uuid.UUID{userID})
	if err != nil {
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}
	if len(profiles) > 0 {
		return profiles[0], nil
	}

	defaultProfile := &types.Profile{
		ID:           uuid.New(),
		UserID:       userID,
		LearningType: types.LearningTypeText,
	}
	if sErr := defaultProfile.SetTopics(defaultProfileTopics); sErr != nil {
		return nil, fmt.Errorf("%w: no onboarding profile found for user %s", apperrors.ErrNotFound, userID)
	}
	if _, cErr := ls.profileRepo.Create(ctx, nil, []*types.Profile{defaultProfile}); cErr != nil {
		ls.log.Warn("Failed to persist default profile", "user_id", userID, "error", cErr)
		return nil, fmt.Errorf("%w: no onboarding profile found for user %s", apperrors.ErrNotFound, userID)
	}
	ls.log.Info("Default profile created", "user_id", userID)
	return defaultProfile, nil
}

// parseLessonsPayload decodes a provider response. Invalid JSON or a missing
// top-level "lessons" list fails the request outright; no schema repair.
func parseLessonsPayload(raw string) ([]types.LessonItem, error) {
	var envelope map[string]json.RawMessage
	if err := json.Unmarshal([]byte(raw), &envelope); err != nil {
		return nil, fmt.Errorf("failed to parse provider response as JSON: %w", err)
	}
	lessonsRaw, ok := envelope["lessons"]
	if !ok {
		return nil, fmt.Errorf("invalid response format: missing 'lessons' key")
	}
	var items []types.LessonItem
	if err := json.Unmarshal(lessonsRaw, &items); err != nil {
		return nil, fmt.Errorf("failed to parse provider response as JSON: %w", err)
	}
	return items, nil
}

func (ls *lessonService) GetLesson(ctx context.Context, id string) (*types.LessonBatch, error) {
	return ls.batchRepo.GetByID(ctx, id)
}

// ListUserLessons returns a page ordered by creation time descending. An
// empty page is an empty list, never an error.
func (ls *lessonService) ListUserLessons(ctx context.Context, userID uuid.UUID, limit, skip int64) ([]*types.LessonBatch, error) {
	if limit <= 0 {
		limit = 10
	}
	if skip < 0 {
		skip = 0
	}
	return ls.batchRepo.ListByUser(ctx, userID.String(), limit, skip)
}

// DeleteLesson removes a batch after verifying the requesting user owns it.
func (ls *lessonService) DeleteLesson(ctx context.Context, id string, userID uuid.UUID) error {
	batch, err := ls.batchRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if batch.UserID != userID.String() {
		return fmt.Errorf("%w: lesson batch %s belongs to another user", apperrors.ErrForbidden, id)
	}
	return ls.batchRepo.DeleteByID(ctx, id)
}
