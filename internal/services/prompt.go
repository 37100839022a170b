package services

import (
	"fmt"
	"strings"

	"github.com/brieflyhq/briefly-backend/internal/types"
)

const educatorSystemInstruction = "You are an expert educator creating engaging and comprehensive lesson content. Always respond with valid JSON only."

// GeneratorSystemInstruction appends preference-specific guidance to the base
// educator instruction for providers that accept a system message.
func GeneratorSystemInstruction(learningType types.LearningType) string {
	instruction := educatorSystemInstruction
	switch learningType {
	case types.LearningTypeVisual:
		instruction += " Focus on visual learning with clear descriptions of diagrams and imagery."
	case types.LearningTypeAudio:
		instruction += " Create content optimized for audio narration and listening."
	}
	return instruction
}

const textContentContract = `{
  "lessons": [
    {
      "lesson_number": 1,
      "title": "Lesson Title",
      "description": "Brief description",
      "content": "Full lesson content as plain text",
      "key_points": ["point 1", "point 2"],
      "exercises": ["exercise 1", "exercise 2"]
    }
  ]
}`

const mediaContentContract = `{
  "lessons": [
    {
      "lesson_number": 1,
      "title": "Lesson Title",
      "description": "Brief description",
      "content": {
        "content_type": "%s",
        "content_url": "https://example.com/placeholder",
        "content_text": "Narration or walkthrough text",
        "poster_image": "https://example.com/placeholder-poster.jpg"
      },
      "key_points": ["point 1", "point 2"],
      "exercises": ["exercise 1", "exercise 2"]
    }
  ]
}`

// BuildLessonPrompt assembles the user prompt from the profile's topics, goal,
// an optional focus title and the preference-specific content contract.
func BuildLessonPrompt(topics []string, goal *string, learningType types.LearningType, lessonTitle *string, numOfLessons int) string {
	topicsStr := strings.Join(topics, ", ")

	var b strings.Builder
	fmt.Fprintf(&b, "Create %d comprehensive lessons on the following topics: %s.", numOfLessons, topicsStr)

	if goal != nil && *goal != "" {
		fmt.Fprintf(&b, "\n\nThe user's learning goal is: %s", *goal)
	}
	if lessonTitle != nil && *lessonTitle != "" {
		fmt.Fprintf(&b, "\n\nFocus specifically on: %s", *lessonTitle)
	}

	switch learningType {
	case types.LearningTypeText:
		b.WriteString("\n\nProvide detailed text-based explanations with examples and exercises.")
	case types.LearningTypeVisual:
		b.WriteString("\n\nInclude descriptions for diagrams, visual aids, and step-by-step visual guides.")
	case types.LearningTypeAudio:
		b.WriteString("\n\nStructure the content in a conversational, audio-friendly format with clear narration points.")
	}

	contract := textContentContract
	if learningType != types.LearningTypeText {
		contract = fmt.Sprintf(mediaContentContract, learningType)
	}
	fmt.Fprintf(&b, "\n\nIMPORTANT: Return your response as a valid JSON object with this exact structure:\n%s\n\nReturn ONLY the JSON object, no additional text or markdown formatting.", contract)

	return b.String()
}
