package services

import (
	"strings"
	"testing"

	"github.com/brieflyhq/briefly-backend/internal/types"
)

func strPtr(s string) *string { return &s }

func TestBuildLessonPromptText(t *testing.T) {
	prompt := BuildLessonPrompt([]string{"go", "sql"}, strPtr("pass the exam"), types.LearningTypeText, strPtr("Joins"), 3)

	for _, want := range []string{
		"Create 3 comprehensive lessons",
		"go, sql",
		"The user's learning goal is: pass the exam",
		"Focus specifically on: Joins",
		"text-based explanations",
		`"lessons"`,
		"Return ONLY the JSON object",
	} {
		if !strings.Contains(prompt, want) {
			t.Fatalf("prompt missing %q:\n%s", want, prompt)
		}
	}
	if strings.Contains(prompt, "content_url") {
		t.Fatalf("TEXT prompt must use the plain-text content contract")
	}
}

func TestBuildLessonPromptOmitsOptionalSections(t *testing.T) {
	prompt := BuildLessonPrompt([]string{"general"}, nil, types.LearningTypeText, nil, 5)
	if strings.Contains(prompt, "learning goal") {
		t.Fatalf("prompt should not mention a goal when none is set")
	}
	if strings.Contains(prompt, "Focus specifically on") {
		t.Fatalf("prompt should not mention a focus when none is set")
	}
}

func TestBuildLessonPromptMediaContract(t *testing.T) {
	for _, lt := range []types.LearningType{types.LearningTypeVisual, types.LearningTypeAudio} {
		prompt := BuildLessonPrompt([]string{"music"}, nil, lt, nil, 2)
		if !strings.Contains(prompt, "content_url") || !strings.Contains(prompt, "poster_image") {
			t.Fatalf("%s prompt missing media-reference contract:\n%s", lt, prompt)
		}
		if !strings.Contains(prompt, `"content_type": "`+string(lt)+`"`) {
			t.Fatalf("%s prompt contract not tagged with the learning type", lt)
		}
	}
}

func TestGeneratorSystemInstruction(t *testing.T) {
	base := GeneratorSystemInstruction(types.LearningTypeText)
	if !strings.Contains(base, "expert educator") || !strings.Contains(base, "valid JSON only") {
		t.Fatalf("unexpected base instruction: %s", base)
	}
	if strings.Contains(base, "visual learning") {
		t.Fatalf("TEXT instruction should not carry visual guidance")
	}
	if got := GeneratorSystemInstruction(types.LearningTypeVisual); !strings.Contains(got, "diagrams") {
		t.Fatalf("VISUAL instruction missing diagram guidance: %s", got)
	}
	if got := GeneratorSystemInstruction(types.LearningTypeAudio); !strings.Contains(got, "audio narration") {
		t.Fatalf("AUDIO instruction missing narration guidance: %s", got)
	}
}
