package database

import "github.com/iamsonghee/photo-selection/internal/models"

// 활동 로그 기록 helper — append-only, 실패해도 본 처리는 막지 않는다
func CreateProjectLog(projectID, photographerID string, action models.LogAction) {
	if DB == nil {
		return
	}
	record := models.ProjectLog{
		ProjectID:      projectID,
		PhotographerID: photographerID,
		Action:         action,
	}
	_ = DB.Create(&record).Error
}
