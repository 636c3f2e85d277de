package consts

const (
	DefaultPageLimit = 10
	MaxPageLimit     = 100
)

const (
	DefaultPlanID = "pro_monthly"
)
