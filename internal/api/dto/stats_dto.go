package dto

import (
	"Socialens/internal/model"
)

// StatsQueryDTO 统计数据查询参数
type StatsQueryDTO struct {
	Days int `form:"days" binding:"omitempty"`
}

// PostsQueryDTO 帖子聚合查询参数
type PostsQueryDTO struct {
	Platform string `form:"platform" binding:"omitempty"`
	Days     int    `form:"days" binding:"omitempty"`
	Page     int    `form:"page" binding:"omitempty"`
	Limit    int    `form:"limit" binding:"omitempty"`
}

// PostPageDTO 帖子分页结果，total 为合并后的全量条数
type PostPageDTO struct {
	Posts []*model.Post `json:"posts"`
	Total int64         `json:"total"`
	Page  int           `json:"page"`
	Limit int           `json:"limit"`
}
