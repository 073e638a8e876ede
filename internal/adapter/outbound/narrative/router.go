// Package narrative selects and fronts the configured narrative provider.
package narrative

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/time/rate"

	"github.com/i2y/vendorrisk/internal/usecase"
)

// Provider names a narrative backend.
type Provider string

const (
	ProviderBedrock Provider = "bedrock"
	ProviderOpenAI  Provider = "openai"
	ProviderGemini  Provider = "gemini"
)

// ParseProvider validates a provider name.
func ParseProvider(s string) (Provider, error) {
	switch p := Provider(strings.ToLower(strings.TrimSpace(s))); p {
	case ProviderBedrock, ProviderOpenAI, ProviderGemini:
		return p, nil
	default:
		return "", fmt.Errorf("unknown narrative provider: %q", s)
	}
}

// Router implements usecase.NarrativeGenerator and forwards every call to
// the active provider, after rate limiting.
type Router struct {
	providers map[Provider]usecase.NarrativeGenerator
	active    Provider
	limiter   *rate.Limiter
	timeout   time.Duration
	tracer    trace.Tracer
	logger    *slog.Logger
}

// Option configures a Router.
type Option func(*Router)

// WithLimiter throttles provider calls. Callers wait for a token, bounded by
// their context.
func WithLimiter(l *rate.Limiter) Option {
	return func(r *Router) { r.limiter = l }
}

// WithTimeout bounds each provider call.
func WithTimeout(d time.Duration) Option {
	return func(r *Router) { r.timeout = d }
}

// NewRouter creates a router for the active provider.
func NewRouter(active Provider, providers map[Provider]usecase.NarrativeGenerator, logger *slog.Logger, opts ...Option) *Router {
	r := &Router{
		providers: providers,
		active:    active,
		tracer:    otel.Tracer("github.com/i2y/vendorrisk/narrative"),
		logger:    logger.With("component", "narrative_router", slog.String("provider", string(active))),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Generate routes the prompt to the active provider.
func (r *Router) Generate(ctx context.Context, prompt string, maxTokens int) (string, error) {
	ctx, span := r.tracer.Start(ctx, "narrative.Generate", trace.WithAttributes(
		attribute.String("narrative.provider", string(r.active)),
		attribute.Int("narrative.max_tokens", maxTokens),
		attribute.Int("narrative.prompt_length", len(prompt)),
	))
	defer span.End()

	gen, ok := r.providers[r.active]
	if !ok {
		err := fmt.Errorf("narrative provider %q is not registered", r.active)
		r.logger.Error("Unknown narrative provider")
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return "", err
	}

	if r.limiter != nil {
		if err := r.limiter.Wait(ctx); err != nil {
			r.logger.Warn("Rate limiter wait aborted", slog.Any("error", err))
			span.RecordError(err)
			span.SetStatus(codes.Error, "rate limited")
			return "", fmt.Errorf("narrative rate limit: %w", err)
		}
	}

	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	r.logger.Debug("Routing narrative request", slog.Int("max_tokens", maxTokens))
	text, err := gen.Generate(ctx, prompt, maxTokens)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return "", err
	}
	span.SetAttributes(attribute.Int("narrative.response_length", len(text)))
	return text, nil
}

// Label returns the active provider's label.
func (r *Router) Label() string {
	if gen, ok := r.providers[r.active]; ok {
		return gen.Label()
	}
	return string(r.active)
}

// Unavailable stands in for a provider that could not be constructed. Every
// call fails with Err so reports carry the reason in place of the narrative.
type Unavailable struct {
	Name string
	Err  error
}

// Generate implements usecase.NarrativeGenerator.
func (u Unavailable) Generate(context.Context, string, int) (string, error) {
	return "", fmt.Errorf("%s unavailable: %w", u.Name, u.Err)
}

// Label implements usecase.NarrativeGenerator.
func (u Unavailable) Label() string {
	return u.Name
}
