package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/i2y/vendorrisk/internal/domain"
	"github.com/i2y/vendorrisk/internal/usecase"
)

func TestHealthCheckUseCase_Execute(t *testing.T) {
	ctx := context.Background()
	tools := []domain.Tool{
		{Name: "assess_vendor_risk", Arguments: []string{"vendor_name"}},
		{Name: "health_check"},
	}
	settings := usecase.HealthSettings{
		Provider:              "bedrock",
		Model:                 "amazon.titan-text-express-v1",
		Region:                "us-east-1",
		CredentialsConfigured: true,
	}

	tests := []struct {
		name         string
		configured   bool
		mockSetup    func(*MockNarrativeGenerator, *MockToolRepository)
		wantErr      bool
		expectErr    string
		wantContains []string
	}{
		{
			name:       "Connected",
			configured: true,
			mockSetup: func(n *MockNarrativeGenerator, repo *MockToolRepository) {
				repo.On("List", ctx).Return(tools, nil).Once()
				n.On("Generate", mock.Anything, "Test", 10).Return("Hello", nil).Once()
			},
			wantContains: []string{
				"Credentials Configured: true",
				"Narrative Status: Connected",
				"Model: amazon.titan-text-express-v1",
				"• assess_vendor_risk(vendor_name)",
				"Status: Healthy",
			},
		},
		{
			name:       "Probe error",
			configured: true,
			mockSetup: func(n *MockNarrativeGenerator, repo *MockToolRepository) {
				repo.On("List", ctx).Return(tools, nil).Once()
				n.On("Generate", mock.Anything, "Test", 10).Return("", errors.New("access denied")).Once()
			},
			wantContains: []string{"Narrative Status: Error", "Status: Healthy"},
		},
		{
			name:       "Probe returns error text",
			configured: true,
			mockSetup: func(n *MockNarrativeGenerator, repo *MockToolRepository) {
				repo.On("List", ctx).Return(tools, nil).Once()
				n.On("Generate", mock.Anything, "Test", 10).Return("Error: model not enabled", nil).Once()
			},
			wantContains: []string{"Narrative Status: Error"},
		},
		{
			name:       "Not configured - provider not called",
			configured: false,
			mockSetup: func(n *MockNarrativeGenerator, repo *MockToolRepository) {
				repo.On("List", ctx).Return(tools, nil).Once()
			},
			wantContains: []string{
				"Credentials Configured: false",
				"Narrative Status: Not configured",
				"Status: Configuration needed",
			},
		},
		{
			name:       "Repository failure",
			configured: true,
			mockSetup: func(n *MockNarrativeGenerator, repo *MockToolRepository) {
				repo.On("List", ctx).Return(nil, errors.New("boom")).Once()
			},
			wantErr:   true,
			expectErr: "failed to list tools: boom",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			narrative := new(MockNarrativeGenerator)
			repo := new(MockToolRepository)
			tt.mockSetup(narrative, repo)

			s := settings
			s.CredentialsConfigured = tt.configured
			uc := usecase.NewHealthCheckUseCase(s, narrative, repo, newTestFormatter(), newTestLogger())
			got, err := uc.Execute(ctx)

			if tt.wantErr {
				assert.EqualError(t, err, tt.expectErr)
				assert.Empty(t, got)
			} else {
				require.NoError(t, err)
				for _, want := range tt.wantContains {
					assert.Contains(t, got, want)
				}
			}
			narrative.AssertExpectations(t)
			repo.AssertExpectations(t)
			if !tt.configured {
				narrative.AssertNotCalled(t, "Generate", mock.Anything, mock.Anything, mock.Anything)
			}
		})
	}
}
