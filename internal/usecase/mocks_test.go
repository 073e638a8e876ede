package usecase_test

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/i2y/vendorrisk/internal/domain"
	"github.com/i2y/vendorrisk/internal/report"
)

// MockNarrativeGenerator is a mock implementation of the NarrativeGenerator interface.
type MockNarrativeGenerator struct {
	mock.Mock
}

func (m *MockNarrativeGenerator) Generate(ctx context.Context, prompt string, maxTokens int) (string, error) {
	args := m.Called(ctx, prompt, maxTokens)
	return args.String(0), args.Error(1)
}

func (m *MockNarrativeGenerator) Label() string {
	return "Mock Model"
}

// MockProfileGenerator is a mock implementation of the ProfileGenerator interface.
type MockProfileGenerator struct {
	mock.Mock
}

func (m *MockProfileGenerator) Generate(companyName string) domain.CompanyProfile {
	args := m.Called(companyName)
	return args.Get(0).(domain.CompanyProfile)
}

// MockToolRepository is a mock implementation of the ToolRepository interface.
type MockToolRepository struct {
	mock.Mock
}

func (m *MockToolRepository) Save(ctx context.Context, tools []domain.Tool) error {
	args := m.Called(ctx, tools)
	return args.Error(0)
}

func (m *MockToolRepository) List(ctx context.Context) ([]domain.Tool, error) {
	args := m.Called(ctx)
	result := args.Get(0)
	if result == nil {
		return nil, args.Error(1)
	}
	return result.([]domain.Tool), args.Error(1)
}

var testNow = time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)

func newTestFormatter() *report.Formatter {
	return report.NewFormatter("Mock Model", func() time.Time { return testNow })
}

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))
}
