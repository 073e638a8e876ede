// Package bedrock implements the narrative service on AWS Bedrock using the
// Amazon Titan text models.
package bedrock

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"
)

const (
	// NoResponseText is returned when the model answers without any output.
	NoResponseText = "No response generated"
	// ModelLabel is printed on reports as the analysis model.
	ModelLabel = "AWS Titan"
)

const (
	defaultTemperature = 0.1
	defaultTopP        = 0.9
)

// InvokeModelAPI is the subset of the Bedrock runtime client used here.
type InvokeModelAPI interface {
	InvokeModel(ctx context.Context, params *bedrockruntime.InvokeModelInput, optFns ...func(*bedrockruntime.Options)) (*bedrockruntime.InvokeModelOutput, error)
}

// Client implements usecase.NarrativeGenerator against a Titan model.
type Client struct {
	api     InvokeModelAPI
	modelID string
	logger  *slog.Logger
}

// New loads the default AWS configuration (environment, shared config,
// instance role) for region and creates a Client.
func New(ctx context.Context, region, modelID string, logger *slog.Logger) (*Client, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS configuration: %w", err)
	}
	return NewWithAPI(bedrockruntime.NewFromConfig(cfg), modelID, logger), nil
}

// NewWithAPI creates a Client on top of an existing runtime client.
func NewWithAPI(api InvokeModelAPI, modelID string, logger *slog.Logger) *Client {
	return &Client{
		api:     api,
		modelID: modelID,
		logger:  logger.With("component", "bedrock_client"),
	}
}

type titanRequest struct {
	InputText            string                `json:"inputText"`
	TextGenerationConfig titanGenerationConfig `json:"textGenerationConfig"`
}

type titanGenerationConfig struct {
	MaxTokenCount int      `json:"maxTokenCount"`
	Temperature   float64  `json:"temperature"`
	TopP          float64  `json:"topP"`
	StopSequences []string `json:"stopSequences"`
}

type titanResponse struct {
	Results []struct {
		OutputText string `json:"outputText"`
	} `json:"results"`
}

// Generate invokes the model with a Titan text generation request.
func (c *Client) Generate(ctx context.Context, prompt string, maxTokens int) (string, error) {
	log := c.logger.With(slog.String("model_id", c.modelID), slog.Int("max_tokens", maxTokens))
	start := time.Now()

	body, err := json.Marshal(titanRequest{
		InputText: prompt,
		TextGenerationConfig: titanGenerationConfig{
			MaxTokenCount: maxTokens,
			Temperature:   defaultTemperature,
			TopP:          defaultTopP,
			StopSequences: []string{},
		},
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal Titan request: %w", err)
	}

	out, err := c.api.InvokeModel(ctx, &bedrockruntime.InvokeModelInput{
		ModelId:     aws.String(c.modelID),
		Body:        body,
		ContentType: aws.String("application/json"),
		Accept:      aws.String("application/json"),
	})
	if err != nil {
		log.Error("Bedrock InvokeModel failed", slog.Any("error", err), slog.Duration("elapsed", time.Since(start)))
		return "", fmt.Errorf("bedrock invoke model %s: %w", c.modelID, err)
	}

	var resp titanResponse
	if err := json.Unmarshal(out.Body, &resp); err != nil {
		log.Error("Failed to decode Titan response", slog.Any("error", err))
		return "", fmt.Errorf("failed to decode Titan response: %w", err)
	}
	if len(resp.Results) == 0 || resp.Results[0].OutputText == "" {
		log.Warn("Titan returned no output text")
		return NoResponseText, nil
	}

	log.Info("Bedrock response received",
		slog.Int("content_length", len(resp.Results[0].OutputText)),
		slog.Duration("elapsed", time.Since(start)))
	return resp.Results[0].OutputText, nil
}

// Label implements usecase.NarrativeGenerator.
func (c *Client) Label() string {
	return ModelLabel
}
