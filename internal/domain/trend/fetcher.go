// internal/domain/trend/fetcher.go

package trend

import (
	"context"
)

// Fetcher defines the interface for trend acquisition. An implementation
// submits a scraping job for the platform, waits for it to complete and
// returns normalized records. Fetch never returns a Go error: every failure
// mode is absorbed into the result's Status and Reason.
type Fetcher interface {
	Fetch(ctx context.Context, platform Platform) FetchResult
}

// Transformer maps a platform's raw scraped items into normalized records.
type Transformer interface {
	Transform(items []RawItem, platform Platform) []Record
}
