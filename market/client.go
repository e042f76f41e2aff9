// Package market fetches quotes from Alpha Vantage, with a short-lived Redis
// cache in front. Requests are issued independently per ticker: there is no
// batching contract, and a ticker with no data fails on its own without
// affecting anything else.
package market

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/rs/zerolog"
)

const (
	defaultBaseURL = "https://www.alphavantage.co"
	quoteCacheTTL  = 5 * time.Minute
	closesCacheTTL = time.Hour
	requestTimeout = 10 * time.Second
)

// ErrNoData means the provider returned nothing for the ticker.
var ErrNoData = errors.New("no quote data for ticker")

type alphaVantageResponse struct {
	GlobalQuote struct {
		Price string `json:"05. price"`
	} `json:"Global Quote"`
	TimeSeriesDaily map[string]struct {
		Close string `json:"4. close"`
	} `json:"Time Series (Daily)"`
}

// DailyChange holds the two most recent trading-day closes and the derived
// percent move.
type DailyChange struct {
	Ticker        string  `json:"ticker"`
	LatestClose   float64 `json:"latest_close"`
	PreviousClose float64 `json:"previous_close"`
	PercentChange float64 `json:"percent_change"`
}

type Client struct {
	apiKey  string
	baseURL string
	httpc   *http.Client
	rdb     *redis.Client
	log     zerolog.Logger
}

// New builds a quote client. rdb may be nil, in which case caching is off.
func New(apiKey string, rdb *redis.Client, log zerolog.Logger) *Client {
	return &Client{
		apiKey:  apiKey,
		baseURL: defaultBaseURL,
		httpc:   &http.Client{Timeout: requestTimeout},
		rdb:     rdb,
		log:     log.With().Str("component", "market").Logger(),
	}
}

// Price returns the last-traded price for ticker.
func (c *Client) Price(ctx context.Context, ticker string) (float64, error) {
	ticker = strings.ToUpper(strings.TrimSpace(ticker))
	if ticker == "" {
		return 0, ErrNoData
	}

	cacheKey := fmt.Sprintf("stock:%s:price", ticker)
	if cached, ok := c.cacheGet(ctx, cacheKey); ok {
		if price, err := strconv.ParseFloat(cached, 64); err == nil {
			return price, nil
		}
	}

	var result alphaVantageResponse
	if err := c.fetch(ctx, "GLOBAL_QUOTE", ticker, &result); err != nil {
		return 0, err
	}
	if result.GlobalQuote.Price == "" {
		return 0, fmt.Errorf("%w: %s", ErrNoData, ticker)
	}
	price, err := strconv.ParseFloat(result.GlobalQuote.Price, 64)
	if err != nil {
		return 0, fmt.Errorf("unparseable price for %s: %w", ticker, err)
	}

	c.cacheSet(ctx, cacheKey, result.GlobalQuote.Price, quoteCacheTTL)
	return price, nil
}

// Change returns the most recent two trading-day closes for ticker and the
// percent change between them.
func (c *Client) Change(ctx context.Context, ticker string) (DailyChange, error) {
	ticker = strings.ToUpper(strings.TrimSpace(ticker))
	if ticker == "" {
		return DailyChange{}, ErrNoData
	}

	cacheKey := fmt.Sprintf("stock:%s:change", ticker)
	if cached, ok := c.cacheGet(ctx, cacheKey); ok {
		var change DailyChange
		if err := json.Unmarshal([]byte(cached), &change); err == nil {
			return change, nil
		}
	}

	var result alphaVantageResponse
	if err := c.fetch(ctx, "TIME_SERIES_DAILY", ticker, &result); err != nil {
		return DailyChange{}, err
	}
	closes, err := recentCloses(result, 2)
	if err != nil {
		return DailyChange{}, fmt.Errorf("%w: %s", ErrNoData, ticker)
	}

	change := DailyChange{
		Ticker:        ticker,
		LatestClose:   closes[0],
		PreviousClose: closes[1],
		PercentChange: percentChange(closes[0], closes[1]),
	}
	if payload, err := json.Marshal(change); err == nil {
		c.cacheSet(ctx, cacheKey, string(payload), closesCacheTTL)
	}
	return change, nil
}

func (c *Client) fetch(ctx context.Context, function, ticker string, out *alphaVantageResponse) error {
	url := fmt.Sprintf("%s/query?function=%s&symbol=%s&apikey=%s", c.baseURL, function, ticker, c.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	resp, err := c.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("failed to fetch quote data: %w", err)
	}
	defer resp.Body.Close()

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to parse quote data: %w", err)
	}
	return nil
}

// recentCloses picks the n most recent closes from the daily series. Dates
// are YYYY-MM-DD so a reverse lexicographic sort is newest-first.
func recentCloses(result alphaVantageResponse, n int) ([]float64, error) {
	if len(result.TimeSeriesDaily) < n {
		return nil, ErrNoData
	}
	dates := make([]string, 0, len(result.TimeSeriesDaily))
	for date := range result.TimeSeriesDaily {
		dates = append(dates, date)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(dates)))

	closes := make([]float64, 0, n)
	for _, date := range dates[:n] {
		price, err := strconv.ParseFloat(result.TimeSeriesDaily[date].Close, 64)
		if err != nil {
			return nil, fmt.Errorf("unparseable close for %s: %w", date, err)
		}
		closes = append(closes, price)
	}
	return closes, nil
}

func percentChange(latest, previous float64) float64 {
	if previous == 0 {
		return 0
	}
	return (latest - previous) / previous * 100
}

func (c *Client) cacheGet(ctx context.Context, key string) (string, bool) {
	if c.rdb == nil {
		return "", false
	}
	val, err := c.rdb.Get(ctx, key).Result()
	if err != nil {
		return "", false
	}
	return val, true
}

func (c *Client) cacheSet(ctx context.Context, key, val string, ttl time.Duration) {
	if c.rdb == nil {
		return
	}
	if err := c.rdb.Set(ctx, key, val, ttl).Err(); err != nil {
		c.log.Warn().Err(err).Str("key", key).Msg("failed to cache quote")
	}
}
