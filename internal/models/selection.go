package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ColorTag string

const (
	ColorRed    ColorTag = "red"
	ColorYellow ColorTag = "yellow"
	ColorGreen  ColorTag = "green"
	ColorBlue   ColorTag = "blue"
	ColorPurple ColorTag = "purple"
)

func IsValidColorTag(c ColorTag) bool {
	switch c {
	case ColorRed, ColorYellow, ColorGreen, ColorBlue, ColorPurple:
		return true
	}
	return false
}

// 셀렉 코멘트 최대 길이
const CommentMaxLen = 500

// Selection 행의 존재 자체가 "이 사진이 선택됨"을 의미한다.
// (projectID, photoID)가 복합 유니크 키.
type Selection struct {
	ID        string `gorm:"type:uuid;primaryKey" json:"id"`
	ProjectID string `gorm:"type:uuid;index:idx_selections_project_photo,unique;not null" json:"projectId"`
	PhotoID   string `gorm:"type:uuid;index:idx_selections_project_photo,unique;not null" json:"photoId"`

	Rating   *int      `json:"rating,omitempty"` // 1..5
	ColorTag *ColorTag `gorm:"type:varchar(10)" json:"colorTag,omitempty"`
	Comment  *string   `gorm:"size:500" json:"comment,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (Selection) TableName() string {
	return "selections"
}

func (s *Selection) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}
