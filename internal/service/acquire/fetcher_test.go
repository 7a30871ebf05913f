package acquire

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"trendscope/internal/domain/trend"
	"trendscope/internal/service/transform"
)

// fakeApify is a minimal in-process stand-in for the actor-run API. It counts
// calls and reports SUCCEEDED once succeedOnPoll status checks have happened.
type fakeApify struct {
	succeedOnPoll int
	items         []map[string]interface{}

	startCalls atomic.Int32
	pollCalls  atomic.Int32
	itemCalls  atomic.Int32
}

func (f *fakeApify) handler(t *testing.T) http.Handler {
	t.Helper()

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case strings.HasPrefix(r.URL.Path, "/v2/acts/") && r.Method == "POST":
			f.startCalls.Add(1)
			assert.NotEmpty(t, r.URL.Query().Get("token"))
			w.WriteHeader(http.StatusCreated)
			fmt.Fprint(w, `{"data":{"id":"run-1","status":"READY","defaultDatasetId":"ds-1"}}`)

		case strings.HasPrefix(r.URL.Path, "/v2/actor-runs/run-1"):
			n := f.pollCalls.Add(1)
			status := "RUNNING"
			if f.succeedOnPoll > 0 && int(n) >= f.succeedOnPoll {
				status = "SUCCEEDED"
			}
			fmt.Fprintf(w, `{"data":{"id":"run-1","status":%q,"defaultDatasetId":"ds-1"}}`, status)

		case strings.HasPrefix(r.URL.Path, "/v2/datasets/ds-1/items"):
			f.itemCalls.Add(1)
			_ = json.NewEncoder(w).Encode(f.items)

		default:
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
			w.WriteHeader(http.StatusNotFound)
		}
	})
}

func testPolicy(maxAttempts int) PollPolicy {
	return PollPolicy{
		MaxAttempts: maxAttempts,
		Interval:    time.Millisecond,
		Sleep: func(ctx context.Context, d time.Duration) error {
			return nil // zero-delay clock for tests
		},
	}
}

func newTestFetcher(t *testing.T, serverURL string, policy PollPolicy) *Fetcher {
	t.Helper()

	client := NewApifyClient(serverURL, "test-token")
	return NewFetcher(
		client,
		transform.NewTransformer(),
		DefaultPlatforms(),
		policy,
		nil,
		zerolog.Nop(),
	)
}

func TestFetcher_Fetch_SucceedsOnThirdPoll(t *testing.T) {
	fake := &fakeApify{
		succeedOnPoll: 3,
		items: []map[string]interface{}{
			{"name": "#WorldCup", "tweet_volume": float64(120000)},
			{"name": "transfer news", "volume": "88k"},
		},
	}
	server := httptest.NewServer(fake.handler(t))
	defer server.Close()

	fetcher := newTestFetcher(t, server.URL, testPolicy(30))
	result := fetcher.Fetch(context.Background(), trend.PlatformTwitter)

	assert.Equal(t, trend.StatusOK, result.Status)
	assert.NoError(t, result.Reason)

	assert.Equal(t, int32(1), fake.startCalls.Load())
	assert.Equal(t, int32(3), fake.pollCalls.Load())
	assert.Equal(t, int32(1), fake.itemCalls.Load())

	// The fetch output is exactly the transformer output for the raw items.
	want := transform.NewTransformer().Transform([]trend.RawItem{
		{"name": "#WorldCup", "tweet_volume": float64(120000)},
		{"name": "transfer news", "volume": "88k"},
	}, trend.PlatformTwitter)
	assert.Equal(t, want, result.Records)
}

func TestFetcher_Fetch_PollTimeout(t *testing.T) {
	fake := &fakeApify{succeedOnPoll: 0} // never succeeds
	server := httptest.NewServer(fake.handler(t))
	defer server.Close()

	fetcher := newTestFetcher(t, server.URL, testPolicy(5))
	result := fetcher.Fetch(context.Background(), trend.PlatformTwitter)

	assert.Equal(t, trend.StatusFailed, result.Status)
	assert.ErrorIs(t, result.Reason, ErrPollTimeout)
	assert.Empty(t, result.Records)
	assert.Equal(t, int32(5), fake.pollCalls.Load())
	assert.Equal(t, int32(0), fake.itemCalls.Load())
}

func TestFetcher_Fetch_RunFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasPrefix(r.URL.Path, "/v2/acts/") {
			w.WriteHeader(http.StatusCreated)
			fmt.Fprint(w, `{"data":{"id":"run-1","status":"READY","defaultDatasetId":"ds-1"}}`)
			return
		}
		fmt.Fprint(w, `{"data":{"id":"run-1","status":"FAILED","defaultDatasetId":"ds-1"}}`)
	}))
	defer server.Close()

	fetcher := newTestFetcher(t, server.URL, testPolicy(30))
	result := fetcher.Fetch(context.Background(), trend.PlatformTwitter)

	assert.Equal(t, trend.StatusFailed, result.Status)
	assert.ErrorIs(t, result.Reason, ErrRunFailed)
	assert.Empty(t, result.Records)
}

func TestFetcher_Fetch_UnknownPlatform(t *testing.T) {
	fake := &fakeApify{}
	server := httptest.NewServer(fake.handler(t))
	defer server.Close()

	fetcher := newTestFetcher(t, server.URL, testPolicy(30))
	result := fetcher.Fetch(context.Background(), trend.Platform("myspace"))

	assert.Equal(t, trend.StatusEmpty, result.Status)
	assert.Empty(t, result.Records)
	assert.Equal(t, int32(0), fake.startCalls.Load(), "unknown platform must not touch the network")
}

func TestFetcher_Fetch_MissingToken(t *testing.T) {
	fake := &fakeApify{}
	server := httptest.NewServer(fake.handler(t))
	defer server.Close()

	client := NewApifyClient(server.URL, "")
	fetcher := NewFetcher(client, transform.NewTransformer(), DefaultPlatforms(), testPolicy(30), nil, zerolog.Nop())

	result := fetcher.Fetch(context.Background(), trend.PlatformTwitter)

	assert.Equal(t, trend.StatusFailed, result.Status)
	assert.ErrorIs(t, result.Reason, ErrNoToken)
	assert.Equal(t, int32(0), fake.startCalls.Load(), "missing token must not touch the network")
}

func TestFetcher_Fetch_TransportFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	server.Close() // connection refused from here on

	fetcher := newTestFetcher(t, server.URL, testPolicy(30))
	result := fetcher.Fetch(context.Background(), trend.PlatformTikTok)

	assert.Equal(t, trend.StatusFailed, result.Status)
	assert.Error(t, result.Reason)
	assert.Empty(t, result.Records)
}

func TestFetcher_Fetch_EmptyDataset(t *testing.T) {
	fake := &fakeApify{succeedOnPoll: 1, items: []map[string]interface{}{}}
	server := httptest.NewServer(fake.handler(t))
	defer server.Close()

	fetcher := newTestFetcher(t, server.URL, testPolicy(30))
	result := fetcher.Fetch(context.Background(), trend.PlatformTwitter)

	assert.Equal(t, trend.StatusEmpty, result.Status)
	assert.Empty(t, result.Records)
	assert.NoError(t, result.Reason)
}

func TestFetcher_Fetch_ContextCancelledDuringPoll(t *testing.T) {
	fake := &fakeApify{succeedOnPoll: 0}
	server := httptest.NewServer(fake.handler(t))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())

	client := NewApifyClient(server.URL, "test-token")
	policy := PollPolicy{
		MaxAttempts: 30,
		Interval:    time.Millisecond,
		Sleep: func(ctx context.Context, d time.Duration) error {
			cancel()
			return ctx.Err()
		},
	}
	fetcher := NewFetcher(client, transform.NewTransformer(), DefaultPlatforms(), policy, nil, zerolog.Nop())

	result := fetcher.Fetch(ctx, trend.PlatformTwitter)

	assert.Equal(t, trend.StatusFailed, result.Status)
	assert.ErrorIs(t, result.Reason, context.Canceled)
}
