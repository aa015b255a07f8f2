package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"fintrack/internal/config"
	"fintrack/internal/dto"
	"fintrack/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type mlClient struct {
	baseURL    string
	httpClient *http.Client
	breaker    CircuitBreakerInterface
}

// NewMLClient creates the HTTP client for the remote analytics service.
// Every call is bounded by the configured timeout and guarded by the
// circuit breaker; callers must be prepared to fall back locally.
func NewMLClient(cfg *config.MLConfig, breaker CircuitBreakerInterface) MLClientInterface {
	return &mlClient{
		baseURL: cfg.BaseURL,
		httpClient: &http.Client{
			Timeout: cfg.RequestTimeout,
		},
		breaker: breaker,
	}
}

type remoteCategorizeRequest struct {
	Descriptions []string `json:"descriptions"`
}

type remoteCategorizeResponse struct {
	Categories []string `json:"categories"`
}

type remoteForecastRequest struct {
	Transactions []dto.ExpensePoint `json:"transactions"`
}

type remoteForecastResponse struct {
	NextMonthEstimate float64 `json:"nextMonthEstimate"`
	DailyAverage      float64 `json:"dailyAverage"`
	WeeklyAverage     float64 `json:"weeklyAverage"`
	Trend             string  `json:"trend"`
	TrendPercentage   float64 `json:"trendPercentage"`
	Message           string  `json:"message"`
}

type remoteAnomaliesRequest struct {
	Transactions []dto.AnomalyInput `json:"transactions"`
}

type remoteAnomaly struct {
	ID          uuid.UUID `json:"id"`
	Description string    `json:"description"`
	Amount      float64   `json:"amount"`
	Category    string    `json:"category"`
	Date        time.Time `json:"date"`
	Score       float64   `json:"score"`
	Reasons     []string  `json:"reasons"`
}

type remoteAnomaliesResponse struct {
	Anomalies []remoteAnomaly `json:"anomalies"`
}

func (c *mlClient) Categorize(ctx context.Context, descriptions []string) ([]string, error) {
	var out remoteCategorizeResponse
	if err := c.post(ctx, "/categorize", remoteCategorizeRequest{Descriptions: descriptions}, &out); err != nil {
		return nil, err
	}
	if len(out.Categories) != len(descriptions) {
		return nil, fmt.Errorf("remote categorize returned %d categories for %d descriptions",
			len(out.Categories), len(descriptions))
	}

	// The remote side is not bound to our closed category set
	for i, category := range out.Categories {
		if !models.IsValidCategory(category) {
			out.Categories[i] = models.CategoryOther
		}
	}
	return out.Categories, nil
}

func (c *mlClient) Forecast(ctx context.Context, points []dto.ExpensePoint) (*models.Forecast, error) {
	var out remoteForecastResponse
	if err := c.post(ctx, "/forecast", remoteForecastRequest{Transactions: points}, &out); err != nil {
		return nil, err
	}

	trend := out.Trend
	if trend == "" {
		trend = models.TrendStable
	}

	return &models.Forecast{
		DailyAverage:      decimal.NewFromFloat(out.DailyAverage).Round(2),
		WeeklyAverage:     decimal.NewFromFloat(out.WeeklyAverage).Round(2),
		NextMonthEstimate: decimal.NewFromFloat(out.NextMonthEstimate).Round(2),
		Trend:             trend,
		TrendPercentage:   out.TrendPercentage,
		Message:           out.Message,
	}, nil
}

func (c *mlClient) Anomalies(ctx context.Context, inputs []dto.AnomalyInput) ([]models.AnomalyFlag, error) {
	var out remoteAnomaliesResponse
	if err := c.post(ctx, "/anomalies", remoteAnomaliesRequest{Transactions: inputs}, &out); err != nil {
		return nil, err
	}

	flags := make([]models.AnomalyFlag, 0, len(out.Anomalies))
	for _, a := range out.Anomalies {
		reason := ""
		if len(a.Reasons) > 0 {
			reason = a.Reasons[0]
		}
		flags = append(flags, models.AnomalyFlag{
			TransactionID: a.ID,
			Description:   a.Description,
			Amount:        decimal.NewFromFloat(a.Amount),
			Category:      a.Category,
			Date:          a.Date,
			Score:         a.Score,
			Reason:        reason,
		})
	}
	return flags, nil
}

// post sends one JSON request through the circuit breaker
func (c *mlClient) post(ctx context.Context, path string, payload, out interface{}) error {
	if c.breaker.IsOpen() {
		return ErrCircuitBreakerOpen
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.breaker.RecordFailure()
		slog.Warn("remote analytics call failed", "path", path, "error", err)
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.breaker.RecordFailure()
		io.Copy(io.Discard, resp.Body)
		return fmt.Errorf("remote analytics returned status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		c.breaker.RecordFailure()
		return fmt.Errorf("failed to decode response: %w", err)
	}

	c.breaker.RecordSuccess()
	return nil
}
