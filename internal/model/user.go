package model

import (
	"time"

	"gorm.io/gorm"
)

// User 管理员账号
type User struct {
	Id        uint           `json:"id" gorm:"primaryKey"`
	UserId    string         `json:"user_id" gorm:"column:user_id;size:64;not null;uniqueIndex"`
	Username  string         `json:"username" gorm:"column:username;size:64;not null;uniqueIndex"`
	Email     string         `json:"email" gorm:"column:email;size:200;not null;uniqueIndex"`
	Password  string         `json:"-" gorm:"column:password;size:200;not null"`
	Nickname  string         `json:"nickname" gorm:"column:nickname;size:100"`
	IsActive  bool           `json:"is_active" gorm:"column:is_active;not null"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}

func (u *User) TableName() string {
	return "users"
}

// DisplayName 审计日志中使用的名称
func (u *User) DisplayName() string {
	if u.Nickname != "" {
		return u.Nickname
	}
	return u.Username
}
