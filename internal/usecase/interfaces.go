package usecase

import (
	"context"
	"errors"

	"github.com/i2y/vendorrisk/internal/domain"
)

// Standard errors returned by use cases. The MCP adapter renders them with
// UserMessage.
var (
	ErrTooFewVendors  = errors.New("too few vendors to compare")
	ErrTooManyVendors = errors.New("too many vendors to compare")
)

// MinVendors and MaxVendors bound the size of a comparison.
const (
	MinVendors = 2
	MaxVendors = 5
)

// UserMessage returns the caller-facing text for a use case error.
func UserMessage(err error) string {
	switch {
	case errors.Is(err, ErrTooFewVendors):
		return "Please provide at least 2 vendors to compare"
	case errors.Is(err, ErrTooManyVendors):
		return "Maximum 5 vendors allowed"
	default:
		return err.Error()
	}
}

// --- Narrative Service ---

// NarrativeGenerator is the hosted language model that turns a prompt into
// report prose.
type NarrativeGenerator interface {
	// Generate returns at most maxTokens tokens of text for prompt.
	Generate(ctx context.Context, prompt string, maxTokens int) (string, error)
	// Label is the human readable model name printed on reports.
	Label() string
}

// --- Mock Data ---

// ProfileGenerator synthesizes a company profile for a vendor name.
type ProfileGenerator interface {
	Generate(companyName string) domain.CompanyProfile
}

// --- Tool Registry ---

// ToolRepository keeps the descriptors of the tools exposed by the server.
type ToolRepository interface {
	// Save stores tool descriptors, replacing any with the same name.
	Save(ctx context.Context, tools []domain.Tool) error
	// List returns the descriptors in registration order.
	List(ctx context.Context) ([]domain.Tool, error)
}
