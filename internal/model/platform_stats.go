package model

import (
	"time"
)

// StatsKey 统计数据的复合键，依赖结构相等性而非字符串拼接
type StatsKey struct {
	UserID   uint64
	Platform Platform
	Days     int
}

type PlatformStats struct {
	Platform         Platform  `json:"platform"`
	Followers        int64     `json:"followers"`
	FollowersGrowth  float64   `json:"followers_growth"`
	Views            int64     `json:"views"`
	ViewsGrowth      float64   `json:"views_growth"`
	Engagement       int64     `json:"engagement"`
	EngagementGrowth float64   `json:"engagement_growth"`
	LastUpdated      time.Time `json:"last_updated"`
	Posts            []*Post   `json:"posts"`
}

type Post struct {
	ID           string    `json:"id"`
	Platform     Platform  `json:"platform"`
	Title        string    `json:"title"`
	ThumbnailURL *string   `json:"thumbnail_url"`
	Views        int64     `json:"views"`
	Likes        int64     `json:"likes"`
	Comments     int64     `json:"comments"`
	Shares       int64     `json:"shares"`
	DatePosted   time.Time `json:"date_posted"`
	PostURL      string    `json:"post_url"`
}
