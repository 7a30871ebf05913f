// internal/service/acquire/fetcher.go

package acquire

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"trendscope/internal/adapter/eventbus"
	"trendscope/internal/domain/trend"
)

// Errors surfaced as failure reasons in a FetchResult. They never escape
// Fetch as returned errors.
var (
	ErrRunFailed   = errors.New("scraping run did not succeed")
	ErrPollTimeout = errors.New("scraping run polling attempts exhausted")
)

// PollPolicy bounds the status-polling loop. Sleep is injectable so tests can
// run the loop without real delays; a nil Sleep uses a timer honoring context
// cancellation.
type PollPolicy struct {
	MaxAttempts int
	Interval    time.Duration
	Sleep       func(ctx context.Context, d time.Duration) error
}

// DefaultPollPolicy matches the provider's expected run times: up to 30
// checks, 2 seconds apart.
func DefaultPollPolicy() PollPolicy {
	return PollPolicy{
		MaxAttempts: 30,
		Interval:    2 * time.Second,
	}
}

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// Fetcher orchestrates one scraping run per call: submit, poll, fetch,
// transform. It implements trend.Fetcher.
type Fetcher struct {
	client      RunClient
	transformer trend.Transformer
	platforms   map[trend.Platform]trend.PlatformConfig
	policy      PollPolicy
	events      eventbus.Publisher
	logger      zerolog.Logger
}

// NewFetcher creates a trend fetcher over the given run client and platform
// registry.
func NewFetcher(
	client RunClient,
	transformer trend.Transformer,
	platforms map[trend.Platform]trend.PlatformConfig,
	policy PollPolicy,
	events eventbus.Publisher,
	logger zerolog.Logger,
) *Fetcher {
	if policy.MaxAttempts <= 0 {
		policy.MaxAttempts = DefaultPollPolicy().MaxAttempts
	}
	if policy.Interval <= 0 {
		policy.Interval = DefaultPollPolicy().Interval
	}
	if policy.Sleep == nil {
		policy.Sleep = sleepContext
	}
	if events == nil {
		events = eventbus.NoopPublisher{}
	}

	return &Fetcher{
		client:      client,
		transformer: transformer,
		platforms:   platforms,
		policy:      policy,
		events:      events,
		logger:      logger,
	}
}

// Fetch runs the acquisition pipeline for one platform. Every failure mode is
// absorbed into the result: callers never observe an error value, only a
// status and, on failure, a reason.
func (f *Fetcher) Fetch(ctx context.Context, platform trend.Platform) trend.FetchResult {
	result := f.fetch(ctx, platform)

	if err := f.events.TrendsFetched(platform, len(result.Records), result.Status); err != nil {
		f.logger.Warn().Err(err).Str("platform", string(platform)).Msg("failed to publish fetch event")
	}

	return result
}

func (f *Fetcher) fetch(ctx context.Context, platform trend.Platform) trend.FetchResult {
	cfg, ok := f.platforms[platform]
	if !ok {
		f.logger.Debug().Str("platform", string(platform)).Msg("no actor configured for platform")
		return emptyResult()
	}

	run, err := f.client.StartRun(ctx, cfg.ActorID, cfg.Input)
	if err != nil {
		return f.failed(platform, fmt.Errorf("start run: %w", err))
	}

	f.logger.Info().
		Str("platform", string(platform)).
		Str("run_id", run.ID).
		Str("actor_id", cfg.ActorID).
		Msg("scraping run submitted")

	if err := f.awaitRun(ctx, run.ID); err != nil {
		return f.failed(platform, err)
	}

	items, err := f.client.GetDatasetItems(ctx, run.DatasetID)
	if err != nil {
		return f.failed(platform, fmt.Errorf("fetch dataset items: %w", err))
	}

	records := f.transformer.Transform(toRawItems(items), platform)

	f.logger.Info().
		Str("platform", string(platform)).
		Int("raw_items", len(items)).
		Int("records", len(records)).
		Msg("trends fetched")

	if len(records) == 0 {
		return emptyResult()
	}

	return trend.FetchResult{Records: records, Status: trend.StatusOK}
}

// awaitRun polls the run status until it succeeds, terminally fails or the
// poll budget runs out.
func (f *Fetcher) awaitRun(ctx context.Context, runID string) error {
	for attempt := 1; attempt <= f.policy.MaxAttempts; attempt++ {
		status, err := f.client.GetRunStatus(ctx, runID)
		if err != nil {
			return fmt.Errorf("poll run status: %w", err)
		}

		switch status {
		case RunStatusSucceeded:
			return nil
		case RunStatusFailed, RunStatusAborted, RunStatusTimedOut:
			return fmt.Errorf("%w: status %s", ErrRunFailed, status)
		}

		if attempt == f.policy.MaxAttempts {
			break
		}

		if err := f.policy.Sleep(ctx, f.policy.Interval); err != nil {
			return fmt.Errorf("poll wait: %w", err)
		}
	}

	return ErrPollTimeout
}

func (f *Fetcher) failed(platform trend.Platform, reason error) trend.FetchResult {
	f.logger.Warn().
		Err(reason).
		Str("platform", string(platform)).
		Msg("trend acquisition degraded to empty result")

	return trend.FetchResult{
		Records: []trend.Record{},
		Status:  trend.StatusFailed,
		Reason:  reason,
	}
}

func emptyResult() trend.FetchResult {
	return trend.FetchResult{Records: []trend.Record{}, Status: trend.StatusEmpty}
}

func toRawItems(items []map[string]interface{}) []trend.RawItem {
	raw := make([]trend.RawItem, len(items))
	for i, item := range items {
		raw[i] = trend.RawItem(item)
	}
	return raw
}

// DefaultPlatforms returns the actor registry for the supported platforms.
// Adding a platform means adding an entry here plus its transform extractor.
func DefaultPlatforms() map[trend.Platform]trend.PlatformConfig {
	return map[trend.Platform]trend.PlatformConfig{
		trend.PlatformTwitter: {
			ActorID: "karamelo~twitter-trends-scraper",
			Input: map[string]interface{}{
				"country":     "united-states",
				"maxItems":    50,
				"proxyConfig": map[string]interface{}{
					"useApifyProxy": true,
				},
			},
		},
		trend.PlatformTikTok: {
			ActorID: "lexis-solutions~tiktok-trending-videos-scraper",
			Input: map[string]interface{}{
				"countryCode": "US",
				"maxItems":    50,
				"period":      "7",
			},
		},
	}
}
