package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type LogAction string

const (
	ActionCreated   LogAction = "created"
	ActionUploaded  LogAction = "uploaded"
	ActionSelecting LogAction = "selecting"
	ActionConfirmed LogAction = "confirmed"
	ActionEditing   LogAction = "editing"
)

func IsValidLogAction(a LogAction) bool {
	switch a {
	case ActionCreated, ActionUploaded, ActionSelecting, ActionConfirmed, ActionEditing:
		return true
	}
	return false
}

// 활동 로그 (append-only)
type ProjectLog struct {
	ID             string `gorm:"type:uuid;primaryKey" json:"id"`
	ProjectID      string `gorm:"type:uuid;index;not null" json:"projectId"`
	PhotographerID string `gorm:"type:uuid;index;not null" json:"photographerId"`

	Action LogAction `gorm:"type:varchar(20);not null" json:"action"`

	CreatedAt time.Time `json:"createdAt"`
}

func (ProjectLog) TableName() string {
	return "project_logs"
}

func (l *ProjectLog) BeforeCreate(tx *gorm.DB) error {
	if l.ID == "" {
		l.ID = uuid.NewString()
	}
	return nil
}
