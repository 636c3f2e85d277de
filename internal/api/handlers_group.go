package api

import (
	"Socialens/internal/api/handler"
)

// HandlersGroup 汇总所有 HTTP Handler
type HandlersGroup struct {
	UserHandler         *handler.UserHandler
	ApiKeyHandler       *handler.ApiKeyHandler
	SubscriptionHandler *handler.SubscriptionHandler
	StatsHandler        *handler.StatsHandler
}
