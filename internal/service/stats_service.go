package service

import (
	"Socialens/internal/api/dto"
	"Socialens/internal/model"
	"Socialens/internal/pkg/consts"
	"Socialens/internal/pkg/redis"
	"Socialens/internal/repository"
	"context"
	"strconv"
	"time"

	"github.com/goccy/go-json"
)

type StatsService interface {
	GetPlatformStats(ctx context.Context, userID uint64, platform string, days int) (*model.PlatformStats, error)
	GetAllPlatformStats(ctx context.Context, userID uint64, days int) ([]*model.PlatformStats, error)
	GetPosts(ctx context.Context, userID uint64, platform string, days int, page int, limit int) (*dto.PostPageDTO, error)
	Rederive(ctx context.Context) error
}

type StatsServiceImpl struct {
	statsRepo repository.StatsRepo
}

func NewStatsService(statsRepo repository.StatsRepo) StatsService {
	return &StatsServiceImpl{statsRepo: statsRepo}
}

func validateWindow(days int) error {
	if days != repository.WeeklyWindowDays && days != repository.MonthlyWindowDays {
		return ErrWindowInvalid
	}
	return nil
}

func (s *StatsServiceImpl) GetPlatformStats(ctx context.Context, userID uint64, platform string, days int) (*model.PlatformStats, error) {
	p, ok := model.ParsePlatform(platform)
	if !ok {
		return nil, ErrPlatformInvalid
	}
	if err := validateWindow(days); err != nil {
		return nil, err
	}

	stats, err := s.statsRepo.GetPlatformStats(ctx, userID, p, days)
	if err != nil {
		return nil, err
	}
	if stats == nil {
		return nil, ErrStatsNotFound
	}
	return stats, nil
}

func (s *StatsServiceImpl) GetAllPlatformStats(ctx context.Context, userID uint64, days int) ([]*model.PlatformStats, error) {
	if err := validateWindow(days); err != nil {
		return nil, err
	}

	key := consts.StatsAllKey + strconv.FormatUint(userID, 10) + ":" + strconv.Itoa(days)
	list, err := redis.GetList(ctx, key)
	if err != nil {
		return nil, err
	}
	if len(list) != 0 {
		stats := make([]*model.PlatformStats, 0, len(list))
		for _, v := range list {
			var item *model.PlatformStats
			if err := json.Unmarshal([]byte(v), &item); err != nil {
				return nil, err
			}
			stats = append(stats, item)
		}
		return stats, nil
	}

	stats, err := s.statsRepo.GetAllPlatformStats(ctx, userID, days)
	if err != nil {
		return nil, err
	}

	s.cacheStats(ctx, key, stats)
	return stats, nil
}

func (s *StatsServiceImpl) cacheStats(ctx context.Context, key string, stats []*model.PlatformStats) {
	if len(stats) == 0 {
		return
	}

	statJsons := make([]string, 0, len(stats))
	for _, v := range stats {
		statJson, err := json.Marshal(v)
		if err != nil {
			return
		}
		statJsons = append(statJsons, string(statJson))
	}

	_ = redis.SetListWithExpiration(ctx, key, statJsons, 5*time.Minute)
}

// GetPosts 合并各平台帖子并分页，非法入参直接拒绝而不是返回空页
func (s *StatsServiceImpl) GetPosts(ctx context.Context, userID uint64, platform string, days int, page int, limit int) (*dto.PostPageDTO, error) {
	selector, ok := model.ParsePlatformSelector(platform)
	if !ok {
		return nil, ErrPlatformInvalid
	}
	if err := validateWindow(days); err != nil {
		return nil, err
	}
	if page <= 0 || limit <= 0 || limit > consts.MaxPageLimit {
		return nil, ErrParamInvalid
	}

	posts, total, err := s.statsRepo.GetPosts(ctx, userID, selector, days, page, limit)
	if err != nil {
		return nil, err
	}

	return &dto.PostPageDTO{
		Posts: posts,
		Total: total,
		Page:  page,
		Limit: limit,
	}, nil
}

func (s *StatsServiceImpl) Rederive(ctx context.Context) error {
	return s.statsRepo.RederiveMonthly(ctx)
}
