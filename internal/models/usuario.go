package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Usuario 用户表（仅包含帖子作者展示所需字段）
type Usuario struct {
	ID        string    `gorm:"primaryKey;type:varchar(36)" json:"id"`        // 主键（uuid）
	Username  *string   `gorm:"type:varchar(60);uniqueIndex" json:"username"` // 展示名
	Usericon  *string   `gorm:"type:varchar(1000)" json:"usericon"`           // 头像
	CreatedAt time.Time `json:"created_at"`                                   // 创建时间
}

// TableName 指定表名
func (Usuario) TableName() string {
	return "usuarios"
}

// BeforeCreate 补齐主键
func (u *Usuario) BeforeCreate(tx *gorm.DB) error {
	if strings.TrimSpace(u.ID) == "" {
		u.ID = uuid.NewString()
	}
	return nil
}
