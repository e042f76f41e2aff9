package extraction

import (
	"context"
	"encoding/base64"
	"fmt"

	"github.com/rs/zerolog"
	"google.golang.org/genai"

	"fintra-backend/models"
)

const visionModel = "gemini-2.5-flash-lite"

// Extractor converts an uploaded image into validated records. Both methods
// degrade to an empty slice when the model misbehaves; an error means the
// image never reached the model (bad encoding, transport failure).
type Extractor interface {
	ExtractAssets(ctx context.Context, imageB64, mimeType string) ([]models.Asset, error)
	ExtractTrades(ctx context.Context, imageB64, mimeType string) ([]models.TradeRecord, error)
}

// Gemini sends screenshots to the Gemini vision API and runs the validator
// over whatever comes back.
type Gemini struct {
	client *genai.Client
	log    zerolog.Logger
}

func NewGemini(ctx context.Context, apiKey string, log zerolog.Logger) (*Gemini, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	return &Gemini{
		client: client,
		log:    log.With().Str("component", "gemini").Logger(),
	}, nil
}

func (g *Gemini) ExtractAssets(ctx context.Context, imageB64, mimeType string) ([]models.Asset, error) {
	entries, err := g.generate(ctx, portfolioPrompt, imageB64, mimeType)
	if err != nil {
		return nil, err
	}
	assets := ValidateAssets(entries)
	g.log.Info().Int("candidates", len(entries)).Int("valid", len(assets)).Msg("parsed portfolio image")
	return assets, nil
}

func (g *Gemini) ExtractTrades(ctx context.Context, imageB64, mimeType string) ([]models.TradeRecord, error) {
	entries, err := g.generate(ctx, tradesPrompt, imageB64, mimeType)
	if err != nil {
		return nil, err
	}
	trades := ValidateTrades(entries)
	g.log.Info().Int("candidates", len(entries)).Int("valid", len(trades)).Msg("parsed trades image")
	return trades, nil
}

// generate sends prompt + inline image and decodes the response array.
// A response that is not a parseable JSON array yields zero entries, not an
// error: the model occasionally returns prose and the caller should see
// "nothing extracted" rather than a failed request.
func (g *Gemini) generate(ctx context.Context, prompt, imageB64, mimeType string) ([]any, error) {
	data, err := base64.StdEncoding.DecodeString(imageB64)
	if err != nil {
		return nil, fmt.Errorf("invalid image encoding: %w", err)
	}
	if mimeType == "" {
		mimeType = "image/jpeg"
	}

	contents := []*genai.Content{
		genai.NewContentFromParts([]*genai.Part{
			genai.NewPartFromText(prompt),
			genai.NewPartFromBytes(data, mimeType),
		}, genai.RoleUser),
	}

	resp, err := g.client.Models.GenerateContent(ctx, visionModel, contents, nil)
	if err != nil {
		return nil, fmt.Errorf("gemini request failed: %w", err)
	}

	entries, err := DecodeArray(resp.Text())
	if err != nil {
		g.log.Warn().Err(err).Msg("model response was not a JSON array")
		return nil, nil
	}
	return entries, nil
}
