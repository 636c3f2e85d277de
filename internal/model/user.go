package model

import (
	"time"
)

type User struct {
	ID           uint64    `json:"id"`
	Email        string    `json:"email"`
	AuthUID      *string   `json:"auth_uid"`
	DisplayName  *string   `json:"display_name"`
	PhotoURL     *string   `json:"photo_url"`
	IsPro        bool      `json:"is_pro"`
	LastLogin    time.Time `json:"last_login"`
	IsFirstLogin bool      `json:"is_first_login"`
	CreatedAt    time.Time `json:"created_at"`
}

// UserUpdate 用户部分更新载体，nil 字段跳过
type UserUpdate struct {
	Email        *string
	AuthUID      *string
	DisplayName  *string
	PhotoURL     *string
	IsPro        *bool
	LastLogin    *time.Time
	IsFirstLogin *bool
}
