package usecase

import (
	"context"
	"log/slog"
)

// NarrativeErrorPrefix starts the text embedded in a report in place of the
// narrative when the model call fails.
const NarrativeErrorPrefix = "Error calling narrative model: "

// narrate calls the narrative service and degrades a failure into an error
// marker so the surrounding report is still produced.
func narrate(ctx context.Context, gen NarrativeGenerator, prompt string, maxTokens int, log *slog.Logger) string {
	text, err := gen.Generate(ctx, prompt, maxTokens)
	if err != nil {
		log.Error("Narrative generation failed", slog.Any("error", err))
		return NarrativeErrorPrefix + err.Error()
	}
	log.Debug("Narrative generated", slog.Int("length", len(text)))
	return text
}
