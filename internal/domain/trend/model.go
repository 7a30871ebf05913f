// internal/domain/trend/model.go

package trend

// Platform identifies one supported social-media source. The set is closed:
// every platform has a registered actor config and transform function, and an
// unknown value simply yields no trends.
type Platform string

const (
	PlatformTwitter Platform = "twitter"
	PlatformTikTok  Platform = "tiktok"
)

// RawItem is a single unvalidated record as returned by a scraping run.
// Its shape varies by platform and is only ever inspected with presence checks.
type RawItem map[string]interface{}

// Demographics is a fixed placeholder structure carried on every record.
type Demographics struct {
	AgeGroups string `json:"ageGroups"`
	Gender    string `json:"gender"`
}

// Record is the normalized, platform-agnostic trend returned to clients.
// IDs are 1-based positions within a single response, not global identifiers.
type Record struct {
	ID              int          `json:"id"`
	Keyword         string       `json:"keyword"`
	Category        string       `json:"category"`
	TrendScore      int          `json:"trendScore"`
	Volume          float64      `json:"volume"`
	Growth          string       `json:"growth"`
	PeakTime        string       `json:"peakTime"`
	Platforms       []string     `json:"platforms"`
	RelatedHashtags []string     `json:"relatedHashtags"`
	Demographics    Demographics `json:"demographics"`
}

// PlatformConfig describes the external actor used to scrape one platform.
type PlatformConfig struct {
	ActorID string
	Input   map[string]interface{}
}

// FetchStatus classifies the outcome of a trend acquisition run so callers can
// tell "nothing trending" apart from "provider unreachable".
type FetchStatus string

const (
	// StatusOK means the run succeeded and produced at least one record.
	StatusOK FetchStatus = "ok"

	// StatusEmpty means the run completed but there was nothing to return,
	// including the unknown-platform case.
	StatusEmpty FetchStatus = "empty"

	// StatusFailed means the provider was unreachable, the run failed or the
	// poll budget was exhausted. Records is always empty.
	StatusFailed FetchStatus = "failed"
)

// FetchResult is the outcome of one orchestration. Reason is only set when
// Status is StatusFailed; the HTTP boundary renders every status as a plain
// record list.
type FetchResult struct {
	Records []Record
	Status  FetchStatus
	Reason  error
}
