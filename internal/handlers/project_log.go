package handlers

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/iamsonghee/photo-selection/internal/database"
	"github.com/iamsonghee/photo-selection/internal/middleware"
	"github.com/iamsonghee/photo-selection/internal/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// 최근 로그 조회 건수
const recentLogLimit = 10

type projectLogItem struct {
	ID           string           `json:"id"`
	ProjectID    string           `json:"projectId"`
	ProjectName  string           `json:"projectName"`
	CustomerName string           `json:"customerName"`
	Action       models.LogAction `json:"action"`
	CreatedAt    time.Time        `json:"createdAt"`
}

// GET /api/photographer/project-logs — 내 프로젝트 전체의 최근 10건
func ListProjectLogs(c *gin.Context) {
	pid := middleware.PhotographerID(c)

	var items []projectLogItem
	err := database.DB.
		Table("project_logs").
		Select("project_logs.id, project_logs.project_id, projects.name as project_name, projects.customer_name, project_logs.action, project_logs.created_at").
		Joins("join projects on projects.id = project_logs.project_id").
		Where("project_logs.photographer_id = ?", pid).
		Order("project_logs.created_at desc").
		Limit(recentLogLimit).
		Scan(&items).Error
	if err != nil {
		log.Printf("[project-logs] list: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if items == nil {
		items = []projectLogItem{}
	}
	c.JSON(http.StatusOK, items)
}

type createLogForm struct {
	ProjectID string           `json:"project_id"`
	Action    models.LogAction `json:"action"`
}

// POST /api/photographer/project-logs — 로그 1건 추가.
// 남의 프로젝트에는 기록할 수 없다.
func CreateProjectLogEntry(c *gin.Context) {
	pid := middleware.PhotographerID(c)

	var form createLogForm
	if err := c.ShouldBindJSON(&form); err != nil || form.ProjectID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "project_id required"})
		return
	}
	if !models.IsValidLogAction(form.Action) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid action"})
		return
	}

	var project models.Project
	if err := database.DB.First(&project, "id = ?", form.ProjectID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "프로젝트를 찾을 수 없습니다"})
		} else {
			log.Printf("[project-logs] load project: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}
	if project.PhotographerID != pid {
		c.JSON(http.StatusForbidden, gin.H{"error": "접근 권한이 없습니다"})
		return
	}

	record := models.ProjectLog{
		ProjectID:      form.ProjectID,
		PhotographerID: pid,
		Action:         form.Action,
	}
	if err := database.DB.Create(&record).Error; err != nil {
		log.Printf("[project-logs] create: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"ok": true, "id": record.ID})
}
