package model

// Platform 平台标识
type Platform string

const (
	PlatformYoutube   Platform = "youtube"
	PlatformInstagram Platform = "instagram"
	PlatformTwitter   Platform = "twitter"
	PlatformFacebook  Platform = "facebook"

	// PlatformAll 仅作为查询选择器使用，不会出现在存储数据中
	PlatformAll Platform = "all"
)

// AllPlatforms 平台的规范顺序
func AllPlatforms() []Platform {
	return []Platform{
		PlatformYoutube,
		PlatformInstagram,
		PlatformTwitter,
		PlatformFacebook,
	}
}

// ParsePlatform 解析具体平台标识，不接受 all
func ParsePlatform(s string) (Platform, bool) {
	switch Platform(s) {
	case PlatformYoutube, PlatformInstagram, PlatformTwitter, PlatformFacebook:
		return Platform(s), true
	}
	return "", false
}

// ParsePlatformSelector 解析平台选择器，接受具体平台或 all
func ParsePlatformSelector(s string) (Platform, bool) {
	if Platform(s) == PlatformAll {
		return PlatformAll, true
	}
	return ParsePlatform(s)
}
