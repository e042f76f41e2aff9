package extraction

import (
	"context"
	"errors"

	"fintra-backend/models"
)

// ErrNotConfigured means the service was started without a Gemini API key.
var ErrNotConfigured = errors.New("image extraction is not configured")

// Disabled stands in for the Gemini extractor when no API key is present,
// so the rest of the service can still run. Every call fails with
// ErrNotConfigured, which the HTTP layer reports as a categorized error
// rather than a silently empty result.
type Disabled struct{}

func (Disabled) ExtractAssets(context.Context, string, string) ([]models.Asset, error) {
	return nil, ErrNotConfigured
}

func (Disabled) ExtractTrades(context.Context, string, string) ([]models.TradeRecord, error) {
	return nil, ErrNotConfigured
}
