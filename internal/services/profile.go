package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/brieflyhq/briefly-backend/internal/apperrors"
	"github.com/brieflyhq/briefly-backend/internal/logger"
	"github.com/brieflyhq/briefly-backend/internal/repos"
	"github.com/brieflyhq/briefly-backend/internal/types"
)

type ProfileService interface {
	CreateProfile(ctx context.Context, userID uuid.UUID, learningType types.LearningType, topics []string, goal *string) (*types.Profile, error)
	GetProfile(ctx context.Context, userID uuid.UUID) (*types.Profile, error)
}

type profileService struct {
	db          *gorm.DB
	log         *logger.Logger
	profileRepo repos.ProfileRepo
}

func NewProfileService(db *gorm.DB, log *logger.Logger, profileRepo repos.ProfileRepo) ProfileService {
	serviceLog := log.With("service", "ProfileService")
	return &profileService{db: db, log: serviceLog, profileRepo: profileRepo}
}

// CreateProfile persists the onboarding profile. The duplicate check is
// check-then-insert; concurrent onboarding requests for the same user can
// race past it, matching the relational schema which carries no unique
// constraint on user_id.
func (ps *profileService) CreateProfile(ctx context.Context, userID uuid.UUID, learningType types.LearningType, topics []string, goal *string) (*types.Profile, error) {
	if !learningType.Valid() {
		return nil, fmt.Errorf("%w: invalid learning_type %q", apperrors.ErrInvalidArgument, learningType)
	}

	exists, exErr := ps.profileRepo.ExistsForUser(ctx, nil, userID)
	if exErr != nil {
		return nil, fmt.Errorf("failed to check existing profile: %w", exErr)
	}
	if exists {
		return nil, fmt.Errorf("%w: profile already exists for user %s", apperrors.ErrConflict, userID)
	}

	if topics == nil {
		topics = []string{}
	}
	profile := &types.Profile{
		ID:           uuid.New(),
		UserID:       userID,
		LearningType: learningType,
		Goal:         goal,
	}
	if err := profile.SetTopics(topics); err != nil {
		return nil, fmt.Errorf("failed to encode topics: %w", err)
	}

	err := ps.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, cErr := ps.profileRepo.Create(ctx, tx, []*types.Profile{profile}); cErr != nil {
			return fmt.Errorf("failed to create profile: %w", cErr)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	ps.log.Info("Profile created", "user_id", userID, "learning_type", learningType)
	return profile, nil
}

func (ps *profileService) GetProfile(ctx context.Context, userID uuid.UUID) (*types.Profile, error) {
	profiles, err := ps.profileRepo.GetByUserIDs(ctx, nil, []uuid.UUID{userID})
	if err != nil {
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}
	if len(profiles) == 0 {
		return nil, fmt.Errorf("%w: no profile for user %s", apperrors.ErrNotFound, userID)
	}
	return profiles[0], nil
}
