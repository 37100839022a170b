package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/brieflyhq/briefly-backend/internal/requestdata"
	"github.com/brieflyhq/briefly-backend/internal/services"
	"github.com/brieflyhq/briefly-backend/internal/types"
)

type ProfileHandler struct {
	profileService services.ProfileService
}

func NewProfileHandler(profileService services.ProfileService) *ProfileHandler {
	return &ProfileHandler{profileService: profileService}
}

type onboardingRequest struct {
	LearningType types.LearningType `json:"learning_type" binding:"required,oneof=TEXT VISUAL AUDIO"`
	Topics       []string           `json:"topics"`
	Goal         *string            `json:"goal" binding:"omitempty,max=64"`
}

type onboardingResponse struct {
	ID           string             `json:"id"`
	LearningType types.LearningType `json:"learning_type"`
	Topics       []string           `json:"topics"`
	Goal         *string            `json:"goal,omitempty"`
}

// POST /onboarding/
func (ph *ProfileHandler) CreateProfile(c *gin.Context) {
	rd := requestdata.GetRequestData(c.Request.Context())
	if rd == nil || rd.UserID == uuid.Nil {
		RespondError(c, http.StatusUnauthorized, "unauthorized", nil)
		return
	}

	var req onboardingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}

	profile, err := ph.profileService.CreateProfile(c.Request.Context(), rd.UserID, req.LearningType, req.Topics, req.Goal)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, onboardingResponse{
		ID:           profile.ID.String(),
		LearningType: profile.LearningType,
		Topics:       profile.TopicList(),
		Goal:         profile.Goal,
	})
}
