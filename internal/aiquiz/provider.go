package aiquiz

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/saulo-duarte/dailyquiz-lambda/internal/config"
	"google.golang.org/genai"
)

type Provider interface {
	SendPrompt(ctx context.Context, prompt string) (string, error)
}

type ProviderOptions struct {
	APIKey string
	Model  string
	// BaseURL and HTTPClient override the Gemini endpoint; used by tests.
	BaseURL    string
	HTTPClient *http.Client
}

type geminiProvider struct {
	client *genai.Client
	model  string
}

func NewGeminiProvider(ctx context.Context, opts ProviderOptions) (Provider, error) {
	if opts.APIKey == "" {
		return nil, newGenerationError(ErrConfiguration, errors.New("GOOGLE_API_KEY is not set"))
	}
	if opts.Model == "" {
		opts.Model = config.DefaultGeminiModel
	}

	cc := &genai.ClientConfig{
		APIKey:     opts.APIKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: opts.HTTPClient,
	}
	if opts.BaseURL != "" {
		cc.HTTPOptions = genai.HTTPOptions{BaseURL: opts.BaseURL}
	}

	client, err := genai.NewClient(ctx, cc)
	if err != nil {
		return nil, newGenerationError(ErrConfiguration, fmt.Errorf("create Gemini client: %w", err))
	}
	return &geminiProvider{client: client, model: opts.Model}, nil
}

func (p *geminiProvider) SendPrompt(ctx context.Context, prompt string) (string, error) {
	log := config.WithContext(ctx).WithField("model", p.model)

	result, err := p.client.Models.GenerateContent(
		ctx,
		p.model,
		genai.Text(prompt),
		&genai.GenerateContentConfig{ResponseMIMEType: "application/json"},
	)
	if err != nil {
		log.WithError(err).Error("Gemini content generation failed")
		return "", newGenerationError(ErrRemoteCall, err)
	}

	raw := result.Text()
	log.Debugf("Raw Gemini response:\n%s", raw)

	if raw == "" {
		return "", newGenerationError(ErrMalformedResponse, errors.New("empty candidate content"))
	}
	return raw, nil
}
