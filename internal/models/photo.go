package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Photo struct {
	ID        string `gorm:"type:uuid;primaryKey" json:"id"`
	ProjectID string `gorm:"type:uuid;index:idx_photos_project_order,unique;not null" json:"projectId"`

	// 업로드 순번 (1부터, 프로젝트 내 유일, 변경 불가)
	OrderIndex int `gorm:"index:idx_photos_project_order,unique;not null" json:"orderIndex"`

	// 썸네일 object storage URL
	URL string `gorm:"type:text;not null" json:"url"`

	CreatedAt time.Time `json:"createdAt"`
}

func (Photo) TableName() string {
	return "photos"
}

func (p *Photo) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}
