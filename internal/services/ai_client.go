package services

import "context"

// LessonGenerator is the contract both external text-generation providers
// satisfy: take a system instruction and a user prompt, return the raw JSON
// payload the model produced. Parsing and validation happen in LessonService,
// so a provider swap never touches the persistence path.
type LessonGenerator interface {
	GenerateLessons(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}
