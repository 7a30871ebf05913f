// internal/service/transform/transformer.go

package transform

import (
	"strings"

	"trendscope/internal/domain/trend"
)

// Fixed placeholder values carried on every record. Growth and peak-time
// analysis are not computed from the scraped data.
const (
	placeholderCategory = "General"
	placeholderGrowth   = "+12%"
	placeholderPeakTime = "18:00 - 21:00"
)

var placeholderDemographics = trend.Demographics{
	AgeGroups: "18-34",
	Gender:    "all",
}

// extractFunc pulls the raw keyword and volume values out of one platform's
// item shape. Values are returned untyped; normalization and parsing happen
// in the shared build loop.
type extractFunc func(item trend.RawItem) (keyword, volume interface{})

// extractors maps each supported platform to its field extractor. Adding a
// platform means adding one entry here plus its actor config in the fetcher
// registry.
var extractors = map[trend.Platform]extractFunc{
	trend.PlatformTwitter: extractTwitter,
	trend.PlatformTikTok:  extractTikTok,
}

func extractTwitter(item trend.RawItem) (interface{}, interface{}) {
	return firstPresent(item, "topic", "trend", "name", "query"),
		firstPresent(item, "tweet_volume", "volume")
}

func extractTikTok(item trend.RawItem) (interface{}, interface{}) {
	return firstPresent(item, "description", "title"),
		firstPresent(item, "playCount", "diggCount")
}

// firstPresent returns the first non-nil value among the named keys.
func firstPresent(item trend.RawItem, keys ...string) interface{} {
	for _, k := range keys {
		if v, ok := item[k]; ok && v != nil {
			return v
		}
	}
	return nil
}

// Transformer maps raw scraped items into normalized trend records.
type Transformer struct{}

// NewTransformer creates a new transformer.
func NewTransformer() *Transformer {
	return &Transformer{}
}

// Transform maps a platform's raw item list into normalized records.
// Items without a usable keyword are dropped; survivors keep their input
// order and receive 1-based ids by output position, so dropped items never
// leave gaps. An unrecognized platform yields an empty list, not an error.
func (t *Transformer) Transform(items []trend.RawItem, platform trend.Platform) []trend.Record {
	records := []trend.Record{}

	extract, ok := extractors[platform]
	if !ok {
		return records
	}

	for _, item := range items {
		rawKeyword, rawVolume := extract(item)

		keyword, ok := NormalizeKeyword(rawKeyword)
		if !ok || keyword == "" {
			continue
		}

		volume := ParseVolume(rawVolume)

		records = append(records, trend.Record{
			ID:              len(records) + 1,
			Keyword:         keyword,
			Category:        placeholderCategory,
			TrendScore:      Score(volume, platform),
			Volume:          volume,
			Growth:          placeholderGrowth,
			PeakTime:        placeholderPeakTime,
			Platforms:       []string{string(platform)},
			RelatedHashtags: []string{"#" + removeWhitespace(keyword)},
			Demographics:    placeholderDemographics,
		})
	}

	return records
}

func removeWhitespace(s string) string {
	return strings.Join(strings.Fields(s), "")
}
