package dto

// SignInDTO 外部登录请求
type SignInDTO struct {
	IDToken string `json:"id_token" binding:"required"`
}

// SignInResultDTO 登录结果
type SignInResultDTO struct {
	Token        string `json:"token"`
	UserID       uint64 `json:"user_id"`
	Email        string `json:"email"`
	IsPro        bool   `json:"is_pro"`
	IsFirstLogin bool   `json:"is_first_login"`
}

// UserUpdateDTO 用户资料更新请求
type UserUpdateDTO struct {
	DisplayName *string `json:"display_name" binding:"omitempty,max=50"`
	PhotoURL    *string `json:"photo_url" binding:"omitempty,url"`
}
