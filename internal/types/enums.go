package types

// LearningType is a user's recorded learning preference. It drives provider
// selection during lesson generation and the shape of generated content.
type LearningType string

const (
	LearningTypeText   LearningType = "TEXT"
	LearningTypeVisual LearningType = "VISUAL"
	LearningTypeAudio  LearningType = "AUDIO"
)

func (lt LearningType) Valid() bool {
	switch lt {
	case LearningTypeText, LearningTypeVisual, LearningTypeAudio:
		return true
	}
	return false
}
