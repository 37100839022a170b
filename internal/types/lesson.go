package types

import (
	"encoding/json"
	"fmt"
	"time"
)

// LessonBatch is one generation request's worth of lessons, stored as a single
// document keyed by a generated id. Immutable once written; expiry is recorded
// but never enforced by a reaper.
type LessonBatch struct {
	ID           string       `bson:"_id" json:"lesson_id"`
	UserID       string       `bson:"user_id" json:"user_id"`
	LearningType LearningType `bson:"learning_type" json:"learning_type"`
	Topics       []string     `bson:"topics" json:"topics"`
	Goal         *string      `bson:"goal,omitempty" json:"goal,omitempty"`
	NumOfLessons int          `bson:"num_of_lessons" json:"num_of_lessons"`
	Lessons      []LessonItem `bson:"lessons" json:"lessons"`
	CreatedAt    time.Time    `bson:"created_at" json:"created_at"`
	ExpiresAt    time.Time    `bson:"expires_at" json:"expires_at"`
}

// LessonItem is a single lesson embedded in a batch. Never independently
// addressable.
type LessonItem struct {
	LessonNumber int           `bson:"lesson_number" json:"lesson_number"`
	Title        string        `bson:"title" json:"title"`
	Description  string        `bson:"description" json:"description"`
	Duration     string        `bson:"duration,omitempty" json:"duration,omitempty"`
	Difficulty   string        `bson:"difficulty,omitempty" json:"difficulty,omitempty"`
	Tags         []string      `bson:"tags,omitempty" json:"tags,omitempty"`
	Content      LessonContent `bson:"content" json:"content"`
	KeyPoints    []string      `bson:"key_points,omitempty" json:"key_points,omitempty"`
	Exercises    []string      `bson:"exercises,omitempty" json:"exercises,omitempty"`
}

// LessonContent is the tagged content variant keyed on the learning type:
// plain text for TEXT lessons, a media reference (URL plus poster image) for
// VISUAL and AUDIO lessons.
type LessonContent struct {
	ContentType LearningType `bson:"content_type" json:"content_type"`
	ContentText string       `bson:"content_text,omitempty" json:"content_text,omitempty"`
	ContentURL  string       `bson:"content_url,omitempty" json:"content_url,omitempty"`
	PosterImage string       `bson:"poster_image,omitempty" json:"poster_image,omitempty"`
}

// UnmarshalJSON accepts either the structured media-reference object or a bare
// JSON string, which providers return for text lessons.
func (lc *LessonContent) UnmarshalJSON(data []byte) error {
	var text string
	if err := json.Unmarshal(data, &text); err == nil {
		lc.ContentType = LearningTypeText
		lc.ContentText = text
		return nil
	}
	type contentAlias LessonContent
	var alias contentAlias
	if err := json.Unmarshal(data, &alias); err != nil {
		return err
	}
	*lc = LessonContent(alias)
	return nil
}

// Validate checks an item against the batch's learning type before it goes
// into the store. Generated content never reaches the document store untyped.
func (li *LessonItem) Validate(batchType LearningType) error {
	if li.LessonNumber <= 0 {
		return fmt.Errorf("lesson_number must be positive, got %d", li.LessonNumber)
	}
	if li.Title == "" {
		return fmt.Errorf("lesson %d: title is required", li.LessonNumber)
	}
	if li.Content.ContentType == "" {
		li.Content.ContentType = batchType
	}
	if !li.Content.ContentType.Valid() {
		return fmt.Errorf("lesson %d: invalid content_type %q", li.LessonNumber, li.Content.ContentType)
	}
	switch batchType {
	case LearningTypeText:
		if li.Content.ContentText == "" {
			return fmt.Errorf("lesson %d: content_text is required for TEXT lessons", li.LessonNumber)
		}
	case LearningTypeVisual, LearningTypeAudio:
		if li.Content.ContentURL == "" && li.Content.ContentText == "" {
			return fmt.Errorf("lesson %d: content_url or content_text is required for %s lessons", li.LessonNumber, batchType)
		}
	}
	return nil
}
