package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Comunidade 社区表
type Comunidade struct {
	ID        string    `gorm:"primaryKey;type:varchar(36)" json:"id"`                  // 主键（uuid）
	Nome      string    `gorm:"type:varchar(120);not null;index" json:"nome"`           // 名称
	Descricao *string   `gorm:"type:text" json:"descricao"`                             // 描述
	IconURL   *string   `gorm:"column:icon_url;type:varchar(1000)" json:"icon_url"`     // 图标
	BannerURL *string   `gorm:"column:banner_url;type:varchar(1000)" json:"banner_url"` // 横幅
	CreatedAt time.Time `json:"created_at"`                                             // 创建时间
}

// TableName 指定表名
func (Comunidade) TableName() string {
	return "comunidades"
}

// BeforeCreate 补齐主键
func (c *Comunidade) BeforeCreate(tx *gorm.DB) error {
	if strings.TrimSpace(c.ID) == "" {
		c.ID = uuid.NewString()
	}
	return nil
}
