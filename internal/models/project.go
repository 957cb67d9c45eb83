package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProjectStatus string

const (
	StatusPreparing ProjectStatus = "preparing"
	StatusSelecting ProjectStatus = "selecting"
	StatusConfirmed ProjectStatus = "confirmed"
	StatusEditing   ProjectStatus = "editing"
)

// 상태 한글명
var ProjectStatusLabels = map[ProjectStatus]string{
	StatusPreparing: "업로드 전",
	StatusSelecting: "셀렉 중",
	StatusConfirmed: "셀렉 완료",
	StatusEditing:   "보정 중",
}

// 대시보드 그룹: 대기중 / 진행중 / 완료
var (
	GroupWaiting    = []ProjectStatus{StatusPreparing}
	GroupInProgress = []ProjectStatus{StatusSelecting, StatusConfirmed}
	GroupCompleted  = []ProjectStatus{StatusEditing}
)

func StatusLabel(status ProjectStatus) string {
	if label, ok := ProjectStatusLabels[status]; ok {
		return label
	}
	return string(status)
}

func IsValidStatus(status ProjectStatus) bool {
	_, ok := ProjectStatusLabels[status]
	return ok
}

type Project struct {
	ID             string `gorm:"type:uuid;primaryKey" json:"id"`
	PhotographerID string `gorm:"type:uuid;index;not null" json:"photographerId"`

	Name         string `gorm:"size:255;not null" json:"name"`
	CustomerName string `gorm:"size:255;not null" json:"customerName"`

	ShootDate string `gorm:"size:10;not null" json:"shootDate"` // YYYY-MM-DD
	Deadline  string `gorm:"size:10;not null" json:"deadline"`  // YYYY-MM-DD

	RequiredCount int `gorm:"not null" json:"requiredCount"`        // N
	PhotoCount    int `gorm:"not null;default:0" json:"photoCount"` // M

	Status      ProjectStatus `gorm:"type:varchar(20);not null" json:"status"`
	AccessToken string        `gorm:"size:64;uniqueIndex;not null" json:"accessToken"`

	ConfirmedAt         *time.Time `json:"confirmedAt,omitempty"`
	CustomerCancelCount int        `gorm:"not null;default:0" json:"customerCancelCount"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (Project) TableName() string {
	return "projects"
}

func (p *Project) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	if p.AccessToken == "" {
		p.AccessToken = uuid.NewString()
	}
	return nil
}
