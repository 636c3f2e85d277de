package repository

import (
	"Socialens/internal/model"
	"fmt"

	"github.com/jinzhu/copier"
)

const (
	WeeklyWindowDays  = 7
	MonthlyWindowDays = 30
)

// 30 天窗口的缩放系数，粉丝数跨窗口保持不变
const (
	monthlyViewsScale      = 4.5
	monthlyEngagementScale = 4.2

	syntheticPostCount    = 6
	syntheticViewsScale   = 0.8
	syntheticLikesScale   = 0.7
	syntheticCommentScale = 0.75
	syntheticShareScale   = 0.7
)

// deriveMonthly 由 7 天基础数据推算 30 天数据，全部深拷贝，绝不改动基础数据
func deriveMonthly(base *model.PlatformStats) (*model.PlatformStats, error) {
	derived := &model.PlatformStats{}
	if err := copier.CopyWithOption(derived, base, copier.Option{DeepCopy: true}); err != nil {
		return nil, err
	}

	derived.Views = int64(float64(base.Views) * monthlyViewsScale)
	derived.Engagement = int64(float64(base.Engagement) * monthlyEngagementScale)

	if len(base.Posts) == 0 {
		return derived, nil
	}

	for i := 0; i < syntheticPostCount; i++ {
		src := derived.Posts[i%len(base.Posts)]

		post := &model.Post{}
		if err := copier.CopyWithOption(post, src, copier.Option{DeepCopy: true}); err != nil {
			return nil, err
		}

		post.ID = fmt.Sprintf("%s-%d", src.ID, i+3)
		post.Views = int64(float64(src.Views) * syntheticViewsScale)
		post.Likes = int64(float64(src.Likes) * syntheticLikesScale)
		post.Comments = int64(float64(src.Comments) * syntheticCommentScale)
		post.Shares = int64(float64(src.Shares) * syntheticShareScale)
		post.DatePosted = src.DatePosted.AddDate(0, 0, -(i+3)*2)

		derived.Posts = append(derived.Posts, post)
	}

	return derived, nil
}
