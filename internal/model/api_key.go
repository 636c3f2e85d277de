package model

type ApiKey struct {
	ID             uint64  `json:"id"`
	UserID         uint64  `json:"user_id"`
	YoutubeApiKey  *string `json:"youtube_api_key"`
	InstagramToken *string `json:"instagram_token"`
	TwitterApiKey  *string `json:"twitter_api_key"`
	FacebookToken  *string `json:"facebook_token"`
}

// ApiKeyUpdate 平台凭据部分更新载体，nil 字段跳过
type ApiKeyUpdate struct {
	YoutubeApiKey  *string
	InstagramToken *string
	TwitterApiKey  *string
	FacebookToken  *string
}
