package service

import (
	"errors"
)

const (
	BadRequest          = 400
	Unauthorized        = 401
	NotFound            = 404
	InternalServerError = 500
)

var (
	ErrParamInvalid         = errors.New("参数错误")
	ErrPlatformInvalid      = errors.New("未知的平台标识")
	ErrWindowInvalid        = errors.New("不支持的统计窗口")
	ErrUserNotFound         = errors.New("用户不存在")
	ErrUserEmailExist       = errors.New("邮箱已被注册")
	ErrAuthTokenInvalid     = errors.New("登录凭证无效")
	ErrApiKeysNotFound      = errors.New("平台凭据不存在")
	ErrApiKeysExist         = errors.New("平台凭据已存在")
	ErrSubscriptionNotFound = errors.New("订阅不存在")
	ErrStatsNotFound        = errors.New("暂无该平台的统计数据")
	UnauthorizedError       = errors.New("权限不足")
	UnExpectedError         = errors.New("系统异常，请稍后重试")
)

var ErrorMap = map[error]int{
	ErrParamInvalid:         BadRequest,
	ErrPlatformInvalid:      BadRequest,
	ErrWindowInvalid:        BadRequest,
	ErrUserNotFound:         NotFound,
	ErrUserEmailExist:       BadRequest,
	ErrAuthTokenInvalid:     Unauthorized,
	ErrApiKeysNotFound:      NotFound,
	ErrApiKeysExist:         BadRequest,
	ErrSubscriptionNotFound: NotFound,
	ErrStatsNotFound:        NotFound,
	UnauthorizedError:       Unauthorized,
	UnExpectedError:         InternalServerError,
}
