package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/brieflyhq/briefly-backend/internal/requestdata"
	"github.com/brieflyhq/briefly-backend/internal/services"
	"github.com/brieflyhq/briefly-backend/internal/types"
)

type LessonHandler struct {
	lessonService services.LessonService
}

func NewLessonHandler(lessonService services.LessonService) *LessonHandler {
	return &LessonHandler{lessonService: lessonService}
}

type generateLessonsRequest struct {
	LessonTitle  *string `json:"lesson_title"`
	NumOfLessons int     `json:"num_of_lessons" binding:"omitempty,min=1,max=20"`
}

type lessonBatchResponse struct {
	LessonID     string             `json:"lesson_id"`
	NumOfLessons int                `json:"num_of_lessons"`
	Lessons      []types.LessonItem `json:"lessons"`
	LearningType types.LearningType `json:"learning_type"`
	CreatedAt    string             `json:"created_at"`
}

func batchResponse(batch *types.LessonBatch) lessonBatchResponse {
	return lessonBatchResponse{
		LessonID:     batch.ID,
		NumOfLessons: batch.NumOfLessons,
		Lessons:      batch.Lessons,
		LearningType: batch.LearningType,
		CreatedAt:    batch.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}

func authenticatedUser(c *gin.Context) (uuid.UUID, bool) {
	rd := requestdata.GetRequestData(c.Request.Context())
	if rd == nil || rd.UserID == uuid.Nil {
		RespondError(c, http.StatusUnauthorized, "unauthorized", nil)
		return uuid.Nil, false
	}
	return rd.UserID, true
}

// POST /lessons/generate
func (lh *LessonHandler) Generate(c *gin.Context) {
	userID, ok := authenticatedUser(c)
	if !ok {
		return
	}

	var req generateLessonsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}
	if req.NumOfLessons == 0 {
		req.NumOfLessons = 5
	}

	batch, err := lh.lessonService.GenerateLessons(c.Request.Context(), userID, req.LessonTitle, req.NumOfLessons)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, batchResponse(batch))
}

// GET /lessons/:id
func (lh *LessonHandler) Get(c *gin.Context) {
	if _, ok := authenticatedUser(c); !ok {
		return
	}

	batch, err := lh.lessonService.GetLesson(c.Request.Context(), c.Param("id"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, batchResponse(batch))
}

// GET /lessons/user/:id
//
// The path id is informational; the page is always filtered by the
// authenticated identity.
func (lh *LessonHandler) ListForUser(c *gin.Context) {
	userID, ok := authenticatedUser(c)
	if !ok {
		return
	}

	limit, err := strconv.ParseInt(c.DefaultQuery("limit", "10"), 10, 64)
	if err != nil || limit <= 0 {
		limit = 10
	}
	skip, err := strconv.ParseInt(c.DefaultQuery("skip", "0"), 10, 64)
	if err != nil || skip < 0 {
		skip = 0
	}

	batches, err := lh.lessonService.ListUserLessons(c.Request.Context(), userID, limit, skip)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	out := make([]lessonBatchResponse, 0, len(batches))
	for _, batch := range batches {
		out = append(out, batchResponse(batch))
	}
	c.JSON(http.StatusOK, out)
}

// DELETE /lessons/:id
func (lh *LessonHandler) Delete(c *gin.Context) {
	userID, ok := authenticatedUser(c)
	if !ok {
		return
	}

	if err := lh.lessonService.DeleteLesson(c.Request.Context(), c.Param("id"), userID); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
