package handler

import (
	"Socialens/internal/api/dto"
	"Socialens/internal/pkg/consts"
	"Socialens/internal/pkg/response"
	"Socialens/internal/repository"
	"Socialens/internal/service"

	"github.com/gin-gonic/gin"
)

type StatsHandler struct {
	statsSvc service.StatsService
}

func NewStatsHandler(statsSvc service.StatsService) *StatsHandler {
	return &StatsHandler{
		statsSvc: statsSvc,
	}
}

func (s *StatsHandler) GetPlatformStats(c *gin.Context) {
	userID := c.GetUint64("user_id")
	platform := c.Param("platform")

	var query dto.StatsQueryDTO
	if err := c.ShouldBindQuery(&query); err != nil {
		response.Error(c, err)
		return
	}
	if query.Days == 0 {
		query.Days = repository.WeeklyWindowDays
	}

	stats, err := s.statsSvc.GetPlatformStats(c.Request.Context(), userID, platform, query.Days)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, stats)
}

func (s *StatsHandler) GetAllPlatformStats(c *gin.Context) {
	userID := c.GetUint64("user_id")

	var query dto.StatsQueryDTO
	if err := c.ShouldBindQuery(&query); err != nil {
		response.Error(c, err)
		return
	}
	if query.Days == 0 {
		query.Days = repository.WeeklyWindowDays
	}

	stats, err := s.statsSvc.GetAllPlatformStats(c.Request.Context(), userID, query.Days)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, stats)
}

func (s *StatsHandler) GetPosts(c *gin.Context) {
	userID := c.GetUint64("user_id")

	var query dto.PostsQueryDTO
	if err := c.ShouldBindQuery(&query); err != nil {
		response.Error(c, err)
		return
	}
	if query.Platform == "" {
		query.Platform = "all"
	}
	if query.Days == 0 {
		query.Days = repository.WeeklyWindowDays
	}
	if query.Page == 0 {
		query.Page = 1
	}
	if query.Limit == 0 {
		query.Limit = consts.DefaultPageLimit
	}

	page, err := s.statsSvc.GetPosts(c.Request.Context(), userID, query.Platform, query.Days, query.Page, query.Limit)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, page)
}
