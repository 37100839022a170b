package types

import (
	"encoding/json"
	"testing"
)

func TestLessonContentUnmarshalString(t *testing.T) {
	var item LessonItem
	payload := `{
		"lesson_number": 1,
		"title": "Intro",
		"description": "d",
		"content": "Plain lesson body",
		"key_points": ["a"],
		"exercises": ["b"]
	}`
	if err := json.Unmarshal([]byte(payload), &item); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if item.Content.ContentType != LearningTypeText {
		t.Fatalf("content_type = %q, want TEXT", item.Content.ContentType)
	}
	if item.Content.ContentText != "Plain lesson body" {
		t.Fatalf("content_text = %q", item.Content.ContentText)
	}
}

func TestLessonContentUnmarshalMediaObject(t *testing.T) {
	var item LessonItem
	payload := `{
		"lesson_number": 2,
		"title": "Diagrams",
		"description": "d",
		"content": {
			"content_type": "VISUAL",
			"content_url": "https://example.com/v.mp4",
			"poster_image": "https://example.com/p.jpg"
		}
	}`
	if err := json.Unmarshal([]byte(payload), &item); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if item.Content.ContentType != LearningTypeVisual {
		t.Fatalf("content_type = %q, want VISUAL", item.Content.ContentType)
	}
	if item.Content.ContentURL != "https://example.com/v.mp4" {
		t.Fatalf("content_url = %q", item.Content.ContentURL)
	}
}

func TestLessonItemValidate(t *testing.T) {
	cases := []struct {
		name      string
		item      LessonItem
		batchType LearningType
		wantErr   bool
	}{
		{
			name: "valid_text",
			item: LessonItem{
				LessonNumber: 1,
				Title:        "t",
				Content:      LessonContent{ContentType: LearningTypeText, ContentText: "body"},
			},
			batchType: LearningTypeText,
		},
		{
			name: "text_without_body",
			item: LessonItem{
				LessonNumber: 1,
				Title:        "t",
				Content:      LessonContent{ContentType: LearningTypeText},
			},
			batchType: LearningTypeText,
			wantErr:   true,
		},
		{
			name: "visual_with_url",
			item: LessonItem{
				LessonNumber: 1,
				Title:        "t",
				Content:      LessonContent{ContentType: LearningTypeVisual, ContentURL: "https://example.com/v"},
			},
			batchType: LearningTypeVisual,
		},
		{
			name: "audio_without_any_content",
			item: LessonItem{
				LessonNumber: 1,
				Title:        "t",
				Content:      LessonContent{ContentType: LearningTypeAudio},
			},
			batchType: LearningTypeAudio,
			wantErr:   true,
		},
		{
			name: "zero_lesson_number",
			item: LessonItem{
				Title:   "t",
				Content: LessonContent{ContentType: LearningTypeText, ContentText: "body"},
			},
			batchType: LearningTypeText,
			wantErr:   true,
		},
		{
			name: "missing_title",
			item: LessonItem{
				LessonNumber: 1,
				Content:      LessonContent{ContentType: LearningTypeText, ContentText: "body"},
			},
			batchType: LearningTypeText,
			wantErr:   true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.item.Validate(tc.batchType)
			if tc.wantErr && err == nil {
				t.Fatalf("Validate: expected error")
			}
			if !tc.wantErr && err != nil {
				t.Fatalf("Validate: %v", err)
			}
		})
	}
}

func TestLessonItemValidateDefaultsContentType(t *testing.T) {
	item := LessonItem{
		LessonNumber: 1,
		Title:        "t",
		Content:      LessonContent{ContentText: "body"},
	}
	if err := item.Validate(LearningTypeText); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if item.Content.ContentType != LearningTypeText {
		t.Fatalf("content_type not defaulted, got %q", item.Content.ContentType)
	}
}

func TestLearningTypeValid(t *testing.T) {
	for _, lt := range []LearningType{LearningTypeText, LearningTypeVisual, LearningTypeAudio} {
		if !lt.Valid() {
			t.Fatalf("%s should be valid", lt)
		}
	}
	if LearningType("VIDEO").Valid() {
		t.Fatalf("VIDEO should not be valid")
	}
	if LearningType("").Valid() {
		t.Fatalf("empty learning type should not be valid")
	}
}
