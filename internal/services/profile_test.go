package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/brieflyhq/briefly-backend/internal/apperrors"
	"github.com/brieflyhq/briefly-backend/internal/types"
)

func TestCreateProfileRejectsInvalidLearningType(t *testing.T) {
	svc := NewProfileService(nil, testLogger(t), &fakeProfileRepo{})

	_, err := svc.CreateProfile(context.Background(), uuid.New(), types.LearningType("KINESTHETIC"), nil, nil)
	if !errors.Is(err, apperrors.ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument, got %v", err)
	}
}

func TestCreateProfileRejectsDuplicate(t *testing.T) {
	userID := uuid.New()
	existing := &types.Profile{ID: uuid.New(), UserID: userID, LearningType: types.LearningTypeText}
	repo := &fakeProfileRepo{profiles: []*types.Profile{existing}}
	svc := NewProfileService(nil, testLogger(t), repo)

	_, err := svc.CreateProfile(context.Background(), userID, types.LearningTypeVisual, []string{"art"}, nil)
	if !errors.Is(err, apperrors.ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}
	if len(repo.created) != 0 {
		t.Fatalf("duplicate onboarding must not persist a second profile")
	}
}

func TestGetProfileNotFound(t *testing.T) {
	svc := NewProfileService(nil, testLogger(t), &fakeProfileRepo{})

	_, err := svc.GetProfile(context.Background(), uuid.New())
	if !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestGetProfileReturnsStored(t *testing.T) {
	userID := uuid.New()
	stored := &types.Profile{ID: uuid.New(), UserID: userID, LearningType: types.LearningTypeAudio}
	svc := NewProfileService(nil, testLogger(t), &fakeProfileRepo{profiles: []*types.Profile{stored}})

	got, err := svc.GetProfile(context.Background(), userID)
	if err != nil {
		t.Fatalf("GetProfile: %v", err)
	}
	if got.ID != stored.ID || got.LearningType != types.LearningTypeAudio {
		t.Fatalf("profile = %+v", got)
	}
}
