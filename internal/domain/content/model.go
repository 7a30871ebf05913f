// internal/domain/content/model.go

package content

import "time"

// DraftRequest describes what the caller wants a post drafted about.
type DraftRequest struct {
	Topic    string `json:"topic"`
	Platform string `json:"platform"`
	Tone     string `json:"tone"`
}

// Draft is a generated social post.
type Draft struct {
	ID        string    `json:"id"`
	Topic     string    `json:"topic"`
	Platform  string    `json:"platform"`
	Text      string    `json:"text"`
	Hashtags  []string  `json:"hashtags"`
	CreatedAt time.Time `json:"createdAt"`
}

// Post is a mock social-media post served from the in-memory store.
type Post struct {
	ID          string    `json:"id"`
	Platform    string    `json:"platform"`
	Text        string    `json:"text"`
	Likes       int       `json:"likes"`
	Comments    int       `json:"comments"`
	Shares      int       `json:"shares"`
	PublishedAt time.Time `json:"publishedAt"`
}

// AnalyticsSummary is the mock per-account analytics payload.
type AnalyticsSummary struct {
	Followers      int     `json:"followers"`
	FollowerGrowth string  `json:"followerGrowth"`
	Impressions    int     `json:"impressions"`
	EngagementRate float64 `json:"engagementRate"`
	TopPlatform    string  `json:"topPlatform"`
	PostsThisWeek  int     `json:"postsThisWeek"`
}
