package wire

import (
	"Socialens/internal/api"
	"Socialens/internal/api/config"
	"Socialens/internal/api/handler"
	"Socialens/internal/job"
	"Socialens/internal/pkg/authgate"
	"Socialens/internal/pkg/cron"
	"Socialens/internal/repository"
	"Socialens/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
)

// ApplicationContainer 封装了应用运行所需的所有顶级组件
type ApplicationContainer struct {
	Router  *gin.Engine
	CronMgr *cron.Manager
}

// BuildApplication 在进程启动时构建唯一的存储实例并逐层注入
func BuildApplication(cfg *config.Config) (*ApplicationContainer, error) {
	userRepo := repository.NewUserRepo()
	apiKeyRepo := repository.NewApiKeyRepo()
	subscriptionRepo := repository.NewSubscriptionRepo()

	statsRepo, err := repository.NewStatsRepo(repository.SeedStats())
	if err != nil {
		return nil, errors.Wrap(err, "初始化统计索引失败")
	}

	verifier := authgate.NewRestVerifier(cfg.Auth)

	userService := service.NewUserService(userRepo, verifier)
	apiKeyService := service.NewApiKeyService(apiKeyRepo)
	subscriptionService := service.NewSubscriptionService(subscriptionRepo, userRepo)
	statsService := service.NewStatsService(statsRepo)

	handlers := &api.HandlersGroup{
		UserHandler:         handler.NewUserHandler(userService),
		ApiKeyHandler:       handler.NewApiKeyHandler(apiKeyService),
		SubscriptionHandler: handler.NewSubscriptionHandler(subscriptionService),
		StatsHandler:        handler.NewStatsHandler(statsService),
	}

	router := api.SetupRouter(handlers)

	cronMgr := cron.NewCronManager(job.NewStatsRefreshJob(statsService))

	return &ApplicationContainer{
		Router:  router,
		CronMgr: cronMgr,
	}, nil
}
