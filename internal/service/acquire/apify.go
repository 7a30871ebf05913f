// internal/service/acquire/apify.go

package acquire

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

const defaultApifyBaseURL = "https://api.apify.com"

// ErrNoToken is returned before any network call when the scraping provider
// token is not configured.
var ErrNoToken = errors.New("apify token not configured")

// Actor run statuses reported by the Apify API.
const (
	RunStatusSucceeded = "SUCCEEDED"
	RunStatusFailed    = "FAILED"
	RunStatusAborted   = "ABORTED"
	RunStatusTimedOut  = "TIMED-OUT"
)

// RunInfo identifies a started actor run and its result dataset.
type RunInfo struct {
	ID        string
	DatasetID string
	Status    string
}

// RunClient is the surface of the scraping provider the fetcher depends on.
type RunClient interface {
	StartRun(ctx context.Context, actorID string, input map[string]interface{}) (*RunInfo, error)
	GetRunStatus(ctx context.Context, runID string) (string, error)
	GetDatasetItems(ctx context.Context, datasetID string) ([]map[string]interface{}, error)
}

// ApifyClient talks to the Apify actor-run REST API. The token travels as a
// query parameter on every request.
type ApifyClient struct {
	BaseURL    string
	Token      string
	HTTPClient *http.Client
}

// NewApifyClient creates a new Apify API client. An empty baseURL selects the
// public API endpoint.
func NewApifyClient(baseURL, token string) *ApifyClient {
	if baseURL == "" {
		baseURL = defaultApifyBaseURL
	}

	return &ApifyClient{
		BaseURL: baseURL,
		Token:   token,
		HTTPClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// apifyRunResponse wraps the run object returned by the run and run-status
// endpoints.
type apifyRunResponse struct {
	Data struct {
		ID               string `json:"id"`
		Status           string `json:"status"`
		DefaultDatasetID string `json:"defaultDatasetId"`
	} `json:"data"`
}

// StartRun submits a new run of the given actor and returns its identifiers.
func (c *ApifyClient) StartRun(ctx context.Context, actorID string, input map[string]interface{}) (*RunInfo, error) {
	if c.Token == "" {
		return nil, ErrNoToken
	}

	body, err := json.Marshal(input)
	if err != nil {
		return nil, fmt.Errorf("marshal actor input: %w", err)
	}

	endpoint := fmt.Sprintf("%s/v2/acts/%s/runs?token=%s", c.BaseURL, url.PathEscape(actorID), url.QueryEscape(c.Token))
	req, err := http.NewRequestWithContext(ctx, "POST", endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated && resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("apify run creation returned status code %d", resp.StatusCode)
	}

	var runResp apifyRunResponse
	if err := json.NewDecoder(resp.Body).Decode(&runResp); err != nil {
		return nil, fmt.Errorf("decode run response: %w", err)
	}

	if runResp.Data.ID == "" || runResp.Data.DefaultDatasetID == "" {
		return nil, fmt.Errorf("apify run response missing identifiers")
	}

	return &RunInfo{
		ID:        runResp.Data.ID,
		DatasetID: runResp.Data.DefaultDatasetID,
		Status:    runResp.Data.Status,
	}, nil
}

// GetRunStatus returns the current status of an actor run.
func (c *ApifyClient) GetRunStatus(ctx context.Context, runID string) (string, error) {
	if c.Token == "" {
		return "", ErrNoToken
	}

	endpoint := fmt.Sprintf("%s/v2/actor-runs/%s?token=%s", c.BaseURL, url.PathEscape(runID), url.QueryEscape(c.Token))
	req, err := http.NewRequestWithContext(ctx, "GET", endpoint, nil)
	if err != nil {
		return "", err
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("apify run status returned status code %d", resp.StatusCode)
	}

	var runResp apifyRunResponse
	if err := json.NewDecoder(resp.Body).Decode(&runResp); err != nil {
		return "", fmt.Errorf("decode run status response: %w", err)
	}

	return runResp.Data.Status, nil
}

// GetDatasetItems retrieves the raw items produced by a finished run.
func (c *ApifyClient) GetDatasetItems(ctx context.Context, datasetID string) ([]map[string]interface{}, error) {
	if c.Token == "" {
		return nil, ErrNoToken
	}

	endpoint := fmt.Sprintf("%s/v2/datasets/%s/items?token=%s", c.BaseURL, url.PathEscape(datasetID), url.QueryEscape(c.Token))
	req, err := http.NewRequestWithContext(ctx, "GET", endpoint, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("apify dataset items returned status code %d", resp.StatusCode)
	}

	var items []map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&items); err != nil {
		return nil, fmt.Errorf("decode dataset items: %w", err)
	}

	return items, nil
}
