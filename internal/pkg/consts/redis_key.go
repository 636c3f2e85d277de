package consts

const (
	TokenBlacklistKey = "auth:token:blacklist:"
	StatsAllKey       = "stats:all:"
)

const (
	StatsRederiveLock = "lock:stats:rederive"
)
