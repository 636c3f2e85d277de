package repository

import (
	"Socialens/internal/model"
	"testing"
	"time"
)

func seedYoutubeBase() *model.PlatformStats {
	for key, stats := range SeedStats() {
		if key.Platform == model.PlatformYoutube {
			return stats
		}
	}
	return nil
}

func TestDeriveMonthlyScalesAggregates(t *testing.T) {
	base := seedYoutubeBase()

	derived, err := deriveMonthly(base)
	if err != nil {
		t.Fatalf("deriveMonthly: %v", err)
	}

	// 粉丝数跨窗口不变
	if derived.Followers != base.Followers {
		t.Errorf("followers changed: %d -> %d", base.Followers, derived.Followers)
	}
	if derived.FollowersGrowth != base.FollowersGrowth {
		t.Errorf("followers growth changed: %v -> %v", base.FollowersGrowth, derived.FollowersGrowth)
	}
	if derived.Views != 5400000 {
		t.Errorf("expected views 5400000, got %d", derived.Views)
	}
	if derived.Engagement != 107520 {
		t.Errorf("expected engagement 107520, got %d", derived.Engagement)
	}
	if derived.Platform != model.PlatformYoutube {
		t.Errorf("platform changed: %q", derived.Platform)
	}
}

func TestDeriveMonthlySyntheticPosts(t *testing.T) {
	base := seedYoutubeBase()

	derived, err := deriveMonthly(base)
	if err != nil {
		t.Fatalf("deriveMonthly: %v", err)
	}

	if len(derived.Posts) != len(base.Posts)+6 {
		t.Fatalf("expected %d posts, got %d", len(base.Posts)+6, len(derived.Posts))
	}

	wantIDs := []string{"yt1", "yt2", "yt1-3", "yt2-4", "yt1-5", "yt2-6", "yt1-7", "yt2-8"}
	for i, want := range wantIDs {
		if derived.Posts[i].ID != want {
			t.Errorf("post %d: expected id %q, got %q", i, want, derived.Posts[i].ID)
		}
	}

	// 第一条合成帖由 yt1 缩放而来
	syn := derived.Posts[2]
	if syn.Views != 19840 {
		t.Errorf("expected views 19840, got %d", syn.Views)
	}
	if syn.Likes != 840 {
		t.Errorf("expected likes 840, got %d", syn.Likes)
	}
	if syn.Comments != 117 {
		t.Errorf("expected comments 117, got %d", syn.Comments)
	}
	if syn.Shares != 60 {
		t.Errorf("expected shares 60, got %d", syn.Shares)
	}
	if syn.Platform != model.PlatformYoutube {
		t.Errorf("synthetic post platform %q", syn.Platform)
	}
	if syn.Title != base.Posts[0].Title {
		t.Error("synthetic post should keep the source title")
	}

	// 发布时间依次前移 (i+3)*2 天
	wantDate := time.Date(2023, 6, 6, 0, 0, 0, 0, time.UTC)
	if !syn.DatePosted.Equal(wantDate) {
		t.Errorf("expected date %v, got %v", wantDate, syn.DatePosted)
	}
	wantDate = time.Date(2023, 6, 2, 0, 0, 0, 0, time.UTC)
	if !derived.Posts[3].DatePosted.Equal(wantDate) {
		t.Errorf("expected date %v, got %v", wantDate, derived.Posts[3].DatePosted)
	}
}

func TestDeriveMonthlyDoesNotMutateBase(t *testing.T) {
	base := seedYoutubeBase()

	derived, err := deriveMonthly(base)
	if err != nil {
		t.Fatalf("deriveMonthly: %v", err)
	}

	if base.Views != 1200000 || base.Engagement != 25600 {
		t.Errorf("base aggregates mutated: views=%d engagement=%d", base.Views, base.Engagement)
	}
	if len(base.Posts) != 2 {
		t.Fatalf("base posts mutated: %d", len(base.Posts))
	}
	if base.Posts[0].Views != 24800 {
		t.Errorf("base post mutated: views=%d", base.Posts[0].Views)
	}

	// 深拷贝：改派生数据不许影响基础数据
	derived.Posts[0].Views = 1
	if base.Posts[0].Views != 24800 {
		t.Error("derived posts share memory with base posts")
	}
}

func TestDeriveMonthlyWithoutPosts(t *testing.T) {
	base := &model.PlatformStats{
		Platform:   model.PlatformTwitter,
		Followers:  100,
		Views:      1000,
		Engagement: 100,
	}

	derived, err := deriveMonthly(base)
	if err != nil {
		t.Fatalf("deriveMonthly: %v", err)
	}
	if derived.Views != 4500 {
		t.Errorf("expected views 4500, got %d", derived.Views)
	}
	if len(derived.Posts) != 0 {
		t.Errorf("expected no posts, got %d", len(derived.Posts))
	}
}
