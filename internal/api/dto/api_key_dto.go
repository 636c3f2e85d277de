package dto

// ApiKeysDTO 平台凭据保存/更新请求，未携带的字段跳过
type ApiKeysDTO struct {
	YoutubeApiKey  *string `json:"youtube_api_key" binding:"omitempty,max=255"`
	InstagramToken *string `json:"instagram_token" binding:"omitempty,max=255"`
	TwitterApiKey  *string `json:"twitter_api_key" binding:"omitempty,max=255"`
	FacebookToken  *string `json:"facebook_token" binding:"omitempty,max=255"`
}
