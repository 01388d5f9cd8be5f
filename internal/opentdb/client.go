package opentdb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"go.uber.org/zap"
)

const (
	defaultBaseURL = "https://opentdb.com/api.php"

	DefaultAmount     = 5
	DefaultDifficulty = "easy"
	DefaultType       = "multiple"
)

var (
	// ErrSourceUnavailable covers transport failures and non-2xx responses.
	ErrSourceUnavailable = errors.New("question source unavailable")
	// ErrMalformedResponse covers bodies that decode badly, lack a results
	// list, or carry a non-zero OpenTriviaDB response_code.
	ErrMalformedResponse = errors.New("malformed question source response")
)

// RawQuestion mirrors the OpenTriviaDB question payload. Text fields may be
// HTML-entity-encoded; decoding is the caller's concern.
type RawQuestion struct {
	Type             string   `json:"type"`
	Difficulty       string   `json:"difficulty"`
	Category         string   `json:"category"`
	Question         string   `json:"question"`
	CorrectAnswer    string   `json:"correct_answer"`
	IncorrectAnswers []string `json:"incorrect_answers"`
}

type apiResponse struct {
	ResponseCode int            `json:"response_code"`
	Results      *[]RawQuestion `json:"results"`
}

// Params select the question batch. Zero values fall back to the fixed
// widget defaults: 5 easy multiple-choice questions, any category.
type Params struct {
	Amount     int
	Difficulty string
	Type       string
	Category   int
}

func (p Params) withDefaults() Params {
	if p.Amount <= 0 {
		p.Amount = DefaultAmount
	}
	if p.Difficulty == "" {
		p.Difficulty = DefaultDifficulty
	}
	if p.Type == "" {
		p.Type = DefaultType
	}
	return p
}

type Client struct {
	httpClient *http.Client
	baseURL    string
	logger     *zap.Logger
}

func NewClient(httpClient *http.Client, baseURL string, logger *zap.Logger) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		httpClient: httpClient,
		baseURL:    baseURL,
		logger:     logger,
	}
}

// FetchQuestions requests one batch of questions. It never returns a partial
// batch: any failure yields a nil slice and one of the sentinel errors.
func (c *Client) FetchQuestions(ctx context.Context, params Params) ([]RawQuestion, error) {
	params = params.withDefaults()

	query := url.Values{}
	query.Set("amount", strconv.Itoa(params.Amount))
	query.Set("difficulty", params.Difficulty)
	query.Set("type", params.Type)
	if params.Category > 0 {
		query.Set("category", strconv.Itoa(params.Category))
	}
	reqURL := c.baseURL + "?" + query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSourceUnavailable, err)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("question fetch failed", zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrSourceUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.logger.Warn("question source returned non-success status",
			zap.Int("status", resp.StatusCode))
		return nil, fmt.Errorf("%w: status %d", ErrSourceUnavailable, resp.StatusCode)
	}

	var payload apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	if payload.Results == nil {
		return nil, fmt.Errorf("%w: missing results", ErrMalformedResponse)
	}
	if payload.ResponseCode != 0 {
		return nil, fmt.Errorf("%w: response_code=%d", ErrMalformedResponse, payload.ResponseCode)
	}

	c.logger.Debug("fetched question batch",
		zap.Int("count", len(*payload.Results)),
		zap.Duration("elapsed", time.Since(start)))

	return *payload.Results, nil
}
