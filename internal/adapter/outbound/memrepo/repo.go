package memrepo

import (
	"context"
	"log/slog"
	"sync"

	"github.com/i2y/vendorrisk/internal/domain"
)

// InMemoryToolRepository provides an in-memory implementation of the ToolRepository.
// NOTE: This implementation is not persistent; tools are re-registered on startup.
type InMemoryToolRepository struct {
	mu     sync.RWMutex
	order  []string               // Tool names in first-registration order
	tools  map[string]domain.Tool // Map tool name to descriptor
	logger *slog.Logger
}

// NewInMemoryToolRepository creates a new in-memory repository.
func NewInMemoryToolRepository(logger *slog.Logger) *InMemoryToolRepository {
	return &InMemoryToolRepository{
		tools:  make(map[string]domain.Tool),
		logger: logger.With("component", "mem_repo"),
	}
}

// Save stores the given tool descriptors. A tool whose name is already known
// replaces the stored descriptor but keeps its original position.
func (r *InMemoryToolRepository) Save(ctx context.Context, tools []domain.Tool) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	count := 0
	for i, tool := range tools {
		if tool.Name == "" {
			r.logger.Warn("Skipping tool with empty name during save", slog.Int("index", i))
			continue
		}
		if _, exists := r.tools[tool.Name]; !exists {
			r.order = append(r.order, tool.Name)
		}
		r.tools[tool.Name] = tool
		count++
	}
	r.logger.Info("Saved tools", slog.Int("count", count), slog.Int("total_tools", len(r.tools)))
	return nil
}

// List returns all stored tools in registration order.
func (r *InMemoryToolRepository) List(ctx context.Context) ([]domain.Tool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	list := make([]domain.Tool, 0, len(r.order))
	for _, name := range r.order {
		list = append(list, r.tools[name])
	}
	r.logger.Debug("Listed tools from repository", slog.Int("count", len(list)))
	return list, nil
}
