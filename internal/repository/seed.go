package repository

import (
	"Socialens/internal/model"
	"time"
)

func strPtr(s string) *string {
	return &s
}

// SeedStats 演示账号的 7 天基础数据，接入真实平台 API 前的占位数据源
func SeedStats() map[model.StatsKey]*model.PlatformStats {
	now := time.Now()
	placeholderThumb := strPtr("https://via.placeholder.com/56x40")

	return map[model.StatsKey]*model.PlatformStats{
		{UserID: 1, Platform: model.PlatformYoutube, Days: WeeklyWindowDays}: {
			Platform:         model.PlatformYoutube,
			Followers:        78200,
			FollowersGrowth:  1.2,
			Views:            1200000,
			ViewsGrowth:      3.5,
			Engagement:       25600,
			EngagementGrowth: 4.7,
			LastUpdated:      now,
			Posts: []*model.Post{
				{
					ID:           "yt1",
					Platform:     model.PlatformYoutube,
					Title:        "How to Increase Your Social Media Engagement in 2023",
					ThumbnailURL: placeholderThumb,
					Views:        24800,
					Likes:        1200,
					Comments:     156,
					Shares:       86,
					DatePosted:   time.Date(2023, 6, 12, 0, 0, 0, 0, time.UTC),
					PostURL:      "https://youtube.com/watch?v=example1",
				},
				{
					ID:           "yt2",
					Platform:     model.PlatformYoutube,
					Title:        "10 Social Media Trends for 2023",
					ThumbnailURL: placeholderThumb,
					Views:        18500,
					Likes:        950,
					Comments:     120,
					Shares:       65,
					DatePosted:   time.Date(2023, 6, 10, 0, 0, 0, 0, time.UTC),
					PostURL:      "https://youtube.com/watch?v=example2",
				},
			},
		},
		{UserID: 1, Platform: model.PlatformInstagram, Days: WeeklyWindowDays}: {
			Platform:         model.PlatformInstagram,
			Followers:        45800,
			FollowersGrowth:  2.4,
			Views:            230000,
			ViewsGrowth:      5.6,
			Engagement:       18900,
			EngagementGrowth: 3.2,
			LastUpdated:      now,
			Posts: []*model.Post{
				{
					ID:           "ig1",
					Platform:     model.PlatformInstagram,
					Title:        "New product launch! Check out our summer collection #fashion #style",
					ThumbnailURL: placeholderThumb,
					Views:        8400,
					Likes:        945,
					Comments:     42,
					Shares:       0,
					DatePosted:   time.Date(2023, 6, 10, 0, 0, 0, 0, time.UTC),
					PostURL:      "https://instagram.com/p/example1",
				},
				{
					ID:           "ig2",
					Platform:     model.PlatformInstagram,
					Title:        "Behind the scenes at our latest photoshoot #behindthescenes",
					ThumbnailURL: placeholderThumb,
					Views:        6200,
					Likes:        720,
					Comments:     38,
					Shares:       0,
					DatePosted:   time.Date(2023, 6, 8, 0, 0, 0, 0, time.UTC),
					PostURL:      "https://instagram.com/p/example2",
				},
			},
		},
		{UserID: 1, Platform: model.PlatformTwitter, Days: WeeklyWindowDays}: {
			Platform:         model.PlatformTwitter,
			Followers:        22100,
			FollowersGrowth:  1.8,
			Views:            238000,
			ViewsGrowth:      -2.1,
			Engagement:       5600,
			EngagementGrowth: 0.8,
			LastUpdated:      now,
			Posts: []*model.Post{
				{
					ID:         "tw1",
					Platform:   model.PlatformTwitter,
					Title:      "We're excited to announce our partnership with @techcompany to bring you even better social analytics! #announcement",
					Views:      12300,
					Likes:      248,
					Comments:   32,
					Shares:     68,
					DatePosted: time.Date(2023, 6, 8, 0, 0, 0, 0, time.UTC),
					PostURL:    "https://twitter.com/username/status/example1",
				},
				{
					ID:         "tw2",
					Platform:   model.PlatformTwitter,
					Title:      "What's your favorite social media platform? Let us know in the comments below! #poll",
					Views:      8900,
					Likes:      180,
					Comments:   124,
					Shares:     23,
					DatePosted: time.Date(2023, 6, 7, 0, 0, 0, 0, time.UTC),
					PostURL:    "https://twitter.com/username/status/example2",
				},
			},
		},
		{UserID: 1, Platform: model.PlatformFacebook, Days: WeeklyWindowDays}: {
			Platform:         model.PlatformFacebook,
			Followers:        15400,
			FollowersGrowth:  0.9,
			Views:            42800,
			ViewsGrowth:      3.8,
			Engagement:       6100,
			EngagementGrowth: 2.1,
			LastUpdated:      now,
			Posts: []*model.Post{
				{
					ID:           "fb1",
					Platform:     model.PlatformFacebook,
					Title:        "Join us for our upcoming webinar on \"Social Media Trends for 2023\"! Register now.",
					ThumbnailURL: placeholderThumb,
					Views:        5600,
					Likes:        124,
					Comments:     36,
					Shares:       18,
					DatePosted:   time.Date(2023, 6, 6, 0, 0, 0, 0, time.UTC),
					PostURL:      "https://facebook.com/posts/example1",
				},
				{
					ID:           "fb2",
					Platform:     model.PlatformFacebook,
					Title:        "Check out our latest blog post on maximizing your social media ROI!",
					ThumbnailURL: placeholderThumb,
					Views:        4200,
					Likes:        98,
					Comments:     28,
					Shares:       15,
					DatePosted:   time.Date(2023, 6, 5, 0, 0, 0, 0, time.UTC),
					PostURL:      "https://facebook.com/posts/example2",
				},
			},
		},
	}
}
