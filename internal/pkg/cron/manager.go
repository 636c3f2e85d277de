package cron

import (
	"Socialens/internal/job"
	log "log/slog"

	"github.com/robfig/cron/v3"
)

type Manager struct {
	engine          *cron.Cron
	statsRefreshJob *job.StatsRefreshJob
}

func NewCronManager(statsRefreshJob *job.StatsRefreshJob) *Manager {
	return &Manager{
		engine:          cron.New(cron.WithSeconds()),
		statsRefreshJob: statsRefreshJob,
	}
}

// RegisterJobs 注册定时任务
func (s *Manager) RegisterJobs() error {
	if _, err := s.engine.AddJob("@daily", s.statsRefreshJob); err != nil {
		return err
	}
	return nil
}

func (s *Manager) Start() {
	log.Info("Cron 定时任务引擎启动")
	s.engine.Start()
}

func (s *Manager) Stop() {
	log.Info("Cron 定时任务引擎停止")
	s.engine.Stop()
}
