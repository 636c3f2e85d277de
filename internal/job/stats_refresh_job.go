package job

import (
	"Socialens/internal/pkg/consts"
	"Socialens/internal/pkg/logger"
	"Socialens/internal/pkg/redis"
	"Socialens/internal/service"
	"context"
	log "log/slog"
	"time"

	"github.com/google/uuid"
)

// StatsRefreshJob 每日由 7 天基础数据重建 30 天派生窗口
type StatsRefreshJob struct {
	statsSvc service.StatsService
}

func NewStatsRefreshJob(statsSvc service.StatsService) *StatsRefreshJob {
	return &StatsRefreshJob{
		statsSvc: statsSvc,
	}
}

func (s *StatsRefreshJob) Run() {
	traceID := "job-" + uuid.NewString()
	ctx := context.WithValue(context.Background(), logger.TraceIDKey, traceID)

	lockValue := uuid.NewString()
	lock, err := redis.TryLock(ctx, consts.StatsRederiveLock, lockValue, time.Minute*5, 3)
	if err != nil {
		log.ErrorContext(ctx, "acquire rederive lock error", "err", err)
		return
	}
	if !lock {
		return
	}
	defer redis.UnLock(ctx, consts.StatsRederiveLock, lockValue)

	if err := s.statsSvc.Rederive(ctx); err != nil {
		log.ErrorContext(ctx, "rederive monthly stats error", "err", err)
		return
	}

	log.InfoContext(ctx, "monthly stats window rederived")
}
