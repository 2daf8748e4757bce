package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Post 社区帖子表
type Post struct {
	ID           string    `gorm:"primaryKey;type:varchar(36);index:idx_posts_created_id,priority:2" json:"id"` // 主键（uuid）
	UsuarioID    *string   `gorm:"type:varchar(36);index" json:"usuario_id"`                                    // 作者
	ComunidadeID *string   `gorm:"type:varchar(36);index" json:"comunidade_id"`                                 // 所属社区
	Title        string    `gorm:"type:varchar(200);not null" json:"title"`                                     // 标题
	BannerURL    *string   `gorm:"column:banner_url;type:varchar(1000)" json:"banner_url"`                      // 横幅图
	BannerIsGif  bool      `gorm:"column:banner_is_gif;default:false" json:"banner_is_gif"`                     // 横幅是否为动图
	HTMLContent  *string   `gorm:"column:html_content;type:text" json:"html_content"`                           // 富文本内容
	PlainText    *string   `gorm:"column:plain_text;type:text" json:"plain_text"`                               // 纯文本内容
	CreatedAt    time.Time `gorm:"index:idx_posts_created_id,priority:1,sort:desc" json:"created_at"`           // 创建时间

	// Usuario 作者，记录缺失时为 nil
	Usuario *Usuario `gorm:"foreignKey:UsuarioID;references:ID" json:"usuarios,omitempty"`
}

// TableName 指定表名
func (Post) TableName() string {
	return "posts"
}

// BeforeCreate 补齐主键
func (p *Post) BeforeCreate(tx *gorm.DB) error {
	if strings.TrimSpace(p.ID) == "" {
		p.ID = uuid.NewString()
	}
	return nil
}
