// internal/adapter/storage/post_store.go

package storage

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"trendscope/internal/domain/content"
)

// PostStore serves mock post and analytics data from memory. It stands in for
// the social accounts a real deployment would sync from.
type PostStore struct {
	mu        sync.RWMutex
	posts     []content.Post
	analytics content.AnalyticsSummary
}

// NewPostStore creates a post store seeded with demo data.
func NewPostStore() *PostStore {
	now := time.Now().UTC()

	return &PostStore{
		posts: []content.Post{
			{
				ID:          uuid.New().String(),
				Platform:    "twitter",
				Text:        "Shipping week: our trend dashboard now refreshes every hour.",
				Likes:       342,
				Comments:    28,
				Shares:      51,
				PublishedAt: now.Add(-48 * time.Hour),
			},
			{
				ID:          uuid.New().String(),
				Platform:    "tiktok",
				Text:        "Behind the scenes of how we pick trending sounds.",
				Likes:       12840,
				Comments:    431,
				Shares:      960,
				PublishedAt: now.Add(-24 * time.Hour),
			},
			{
				ID:          uuid.New().String(),
				Platform:    "twitter",
				Text:        "Three hashtags outperformed everything else this week. Thread below.",
				Likes:       876,
				Comments:    64,
				Shares:      140,
				PublishedAt: now.Add(-6 * time.Hour),
			},
		},
		analytics: content.AnalyticsSummary{
			Followers:      18250,
			FollowerGrowth: "+4.2%",
			Impressions:    402000,
			EngagementRate: 3.7,
			TopPlatform:    "tiktok",
			PostsThisWeek:  9,
		},
	}
}

// ListPosts returns all posts, most recent first.
func (s *PostStore) ListPosts() []content.Post {
	s.mu.RLock()
	defer s.mu.RUnlock()

	posts := make([]content.Post, len(s.posts))
	copy(posts, s.posts)

	// Seeded data is appended oldest-first.
	for i, j := 0, len(posts)-1; i < j; i, j = i+1, j-1 {
		posts[i], posts[j] = posts[j], posts[i]
	}
	return posts
}

// Analytics returns the account analytics summary.
func (s *PostStore) Analytics() content.AnalyticsSummary {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.analytics
}
