// Package extraction turns the free-form text a vision model produces for an
// uploaded screenshot into clean, normalized portfolio and trade records.
//
// The model is prompted to emit a JSON array but is not guaranteed to comply,
// so everything here is lenient: a record that cannot be trusted is dropped,
// and a response that cannot be parsed at all yields zero records. Callers
// never see a per-record error.
package extraction

import (
	"encoding/json"
	"strconv"
	"strings"

	"fintra-backend/models"
)

// DecodeArray parses a model response into a slice of candidate entries.
// A leading ```json fence and trailing ``` fence are stripped first. Any
// structural surprise (not JSON, not an array) returns an error; callers
// treat that as zero records extracted, not as a request failure.
func DecodeArray(text string) ([]any, error) {
	var entries []any
	if err := json.Unmarshal([]byte(stripFence(text)), &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

func stripFence(text string) string {
	t := strings.TrimSpace(text)
	if strings.HasPrefix(t, "```json") {
		t = t[len("```json"):]
	} else if strings.HasPrefix(t, "```") {
		t = t[len("```"):]
	}
	if strings.HasSuffix(t, "```") {
		t = t[:len(t)-len("```")]
	}
	return strings.TrimSpace(t)
}

// ValidateAssets filters and normalizes candidate holding records. Entries
// that are not objects, miss name/isStock, or carry unusable numbers are
// dropped; survivors keep their input order and always have the inactive
// field group zeroed.
func ValidateAssets(entries []any) []models.Asset {
	assets := make([]models.Asset, 0, len(entries))
	for _, entry := range entries {
		m, ok := entry.(map[string]any)
		if !ok {
			continue
		}
		name, hasName := m["name"]
		kind, hasKind := m["isStock"]
		if !hasName || !hasKind {
			continue
		}
		// The discriminant must be an actual JSON boolean; a truthy
		// string would otherwise pick a branch arbitrarily.
		isStock, ok := kind.(bool)
		if !ok {
			continue
		}
		asset := models.Asset{
			Name:    toString(name),
			IsStock: isStock,
		}
		if asset.IsStock {
			if !validateStock(m, &asset) {
				continue
			}
		} else {
			if !validateCash(m, &asset) {
				continue
			}
		}
		assets = append(assets, asset)
	}
	return assets
}

// validateStock fills the stock field group and zeroes the cash group.
// Shares and currentPrice must coerce to a positive number.
func validateStock(m map[string]any, asset *models.Asset) bool {
	asset.Ticker = toString(m["ticker"])
	asset.Balance = 0
	asset.APY = 0

	shares, ok := toFloat(valueOr(m, "shares", 0.0))
	if !ok || shares <= 0 {
		return false
	}
	price, ok := toFloat(valueOr(m, "currentPrice", 0.0))
	if !ok || price <= 0 {
		return false
	}
	asset.Shares = shares
	asset.CurrentPrice = price
	return true
}

// validateCash fills the cash field group and zeroes the stock group.
// Balance must coerce to a positive number; an apy that coerces but falls
// outside [0,1] is clamped to 0 rather than dropping the record.
func validateCash(m map[string]any, asset *models.Asset) bool {
	asset.Ticker = ""
	asset.Shares = 0
	asset.CurrentPrice = 0

	balance, ok := toFloat(valueOr(m, "balance", 0.0))
	if !ok || balance <= 0 {
		return false
	}
	apy, ok := toFloat(valueOr(m, "apy", 0.0))
	if !ok {
		return false
	}
	if apy < 0 || apy > 1 {
		apy = 0
	}
	asset.Balance = balance
	asset.APY = apy
	return true
}

// ValidateTrades filters and normalizes candidate trade records. All four
// fields must be present and the two numerics must coerce; the ticker is
// uppercased. No date parsing happens here: the model is prompted to emit
// YYYY-MM-DD and presence is the only check.
func ValidateTrades(entries []any) []models.TradeRecord {
	trades := make([]models.TradeRecord, 0, len(entries))
	for _, entry := range entries {
		m, ok := entry.(map[string]any)
		if !ok {
			continue
		}
		date, hasDate := m["date"]
		ticker, hasTicker := m["ticker"]
		pnl, hasPNL := m["realized_pnl"]
		diff, hasDiff := m["percent_diff"]
		if !hasDate || !hasTicker || !hasPNL || !hasDiff {
			continue
		}
		realized, ok := toFloat(pnl)
		if !ok {
			continue
		}
		percent, ok := toFloat(diff)
		if !ok {
			continue
		}
		trades = append(trades, models.TradeRecord{
			Date:        toString(date),
			Ticker:      strings.ToUpper(toString(ticker)),
			RealizedPNL: realized,
			PercentDiff: percent,
		})
	}
	return trades
}

// valueOr substitutes def only when the key is absent. A key that is present
// with a JSON null keeps the null, so numeric coercion fails and the record
// is dropped rather than silently defaulted.
func valueOr(m map[string]any, key string, def any) any {
	if v, ok := m[key]; ok {
		return v
	}
	return def
}

// toFloat coerces JSON numbers and numeric strings. Booleans, nulls and
// compound values fail coercion.
func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		return f, err == nil
	default:
		return 0, false
	}
}

func toString(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return ""
}

