package repository

import (
	"Socialens/internal/model"
	"Socialens/internal/pkg/memdb"
	"context"
	"sort"
	"time"
)

type StatsRepo interface {
	GetPlatformStats(ctx context.Context, userID uint64, platform model.Platform, days int) (*model.PlatformStats, error)
	GetAllPlatformStats(ctx context.Context, userID uint64, days int) ([]*model.PlatformStats, error)
	GetPosts(ctx context.Context, userID uint64, selector model.Platform, days int, page int, limit int) ([]*model.Post, int64, error)
	RederiveMonthly(ctx context.Context) error
}

type StatsRepoImpl struct {
	stats *memdb.Table[model.StatsKey, *model.PlatformStats]
}

// NewStatsRepo 以 7 天基础数据初始化索引，并派生出 30 天窗口
func NewStatsRepo(seed map[model.StatsKey]*model.PlatformStats) (StatsRepo, error) {
	repo := &StatsRepoImpl{stats: memdb.NewTable[model.StatsKey, *model.PlatformStats]()}

	for key, base := range seed {
		repo.stats.Put(key, base)

		derived, err := deriveMonthly(base)
		if err != nil {
			return nil, err
		}
		monthKey := key
		monthKey.Days = MonthlyWindowDays
		repo.stats.Put(monthKey, derived)
	}

	return repo, nil
}

func (s *StatsRepoImpl) GetPlatformStats(ctx context.Context, userID uint64, platform model.Platform, days int) (*model.PlatformStats, error) {
	stats, ok := s.stats.Get(model.StatsKey{UserID: userID, Platform: platform, Days: days})
	if !ok {
		return nil, nil
	}
	return stats, nil
}

func (s *StatsRepoImpl) GetAllPlatformStats(ctx context.Context, userID uint64, days int) ([]*model.PlatformStats, error) {
	result := make([]*model.PlatformStats, 0, len(model.AllPlatforms()))
	for _, platform := range model.AllPlatforms() {
		stats, ok := s.stats.Get(model.StatsKey{UserID: userID, Platform: platform, Days: days})
		if ok {
			result = append(result, stats)
		}
	}
	return result, nil
}

func (s *StatsRepoImpl) GetPosts(ctx context.Context, userID uint64, selector model.Platform, days int, page int, limit int) ([]*model.Post, int64, error) {
	platforms := []model.Platform{selector}
	if selector == model.PlatformAll {
		platforms = model.AllPlatforms()
	}

	allPosts := make([]*model.Post, 0)
	for _, platform := range platforms {
		stats, ok := s.stats.Get(model.StatsKey{UserID: userID, Platform: platform, Days: days})
		if ok {
			allPosts = append(allPosts, stats.Posts...)
		}
	}

	// 最新的帖子排在最前
	sort.SliceStable(allPosts, func(i, j int) bool {
		return allPosts[i].DatePosted.After(allPosts[j].DatePosted)
	})

	total := int64(len(allPosts))
	start := (page - 1) * limit
	if start >= len(allPosts) {
		return []*model.Post{}, total, nil
	}
	end := start + limit
	if end > len(allPosts) {
		end = len(allPosts)
	}

	return allPosts[start:end], total, nil
}

// RederiveMonthly 由 7 天窗口重新生成 30 天窗口，唯一的稳态写入路径
func (s *StatsRepoImpl) RederiveMonthly(ctx context.Context) error {
	now := time.Now()
	for _, key := range s.stats.Keys() {
		if key.Days != WeeklyWindowDays {
			continue
		}
		base, ok := s.stats.Get(key)
		if !ok {
			continue
		}

		derived, err := deriveMonthly(base)
		if err != nil {
			return err
		}
		derived.LastUpdated = now

		monthKey := key
		monthKey.Days = MonthlyWindowDays
		s.stats.Put(monthKey, derived)
	}
	return nil
}
