package handlers

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/iamsonghee/photo-selection/internal/database"
	"github.com/iamsonghee/photo-selection/internal/gallery"
	"github.com/iamsonghee/photo-selection/internal/models"
	"github.com/iamsonghee/photo-selection/internal/status"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//
// 고객 플로우 — 로그인 없이 access token이 곧 권한
//

// access_token으로 프로젝트 조회. 없으면 nil.
func getProjectByToken(token string) *models.Project {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil
	}
	var project models.Project
	if err := database.DB.Where("access_token = ?", token).First(&project).Error; err != nil {
		return nil
	}
	return &project
}

// token이 유효하고 project_id와 일치할 때만 프로젝트 반환
func validateTokenAndProject(token, projectID string) *models.Project {
	project := getProjectByToken(token)
	if project == nil || project.ID != projectID {
		return nil
	}
	return project
}

// 셀렉 변경은 preparing/selecting 동안만 허용
func selectionMutable(s models.ProjectStatus) bool {
	return s == models.StatusSelecting || s == models.StatusPreparing
}

// GET /api/c/photos?token=
func CustomerPhotos(c *gin.Context) {
	token := c.Query("token")
	if strings.TrimSpace(token) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "token required"})
		return
	}

	project := getProjectByToken(token)
	if project == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "유효하지 않은 초대 링크입니다"})
		return
	}

	var photos []models.Photo
	if err := database.DB.
		Where("project_id = ?", project.ID).
		Order("order_index asc").
		Find(&photos).Error; err != nil {
		log.Printf("[api/c/photos] load photos: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	var selections []models.Selection
	if err := database.DB.
		Where("project_id = ?", project.ID).
		Find(&selections).Error; err != nil {
		log.Printf("[api/c/photos] load selections: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	selectedIDs := gallery.SelectedIDSet(selections)
	ids := make([]string, 0, len(selectedIDs))
	for id := range selectedIDs {
		ids = append(ids, id)
	}

	c.JSON(http.StatusOK, gin.H{
		"project":     project,
		"photos":      photos,
		"selectedIds": ids,
		"photoStates": gallery.PhotoStates(selections),
	})
}

// GET /api/c/gallery?token=&rating=&color_tag=&sort=&selected= —
// 필터·정렬 적용된 사진 목록. 매 호출마다 새로 계산한다.
func CustomerGallery(c *gin.Context) {
	token := c.Query("token")
	if strings.TrimSpace(token) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "token required"})
		return
	}

	project := getProjectByToken(token)
	if project == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "유효하지 않은 초대 링크입니다"})
		return
	}

	var photos []models.Photo
	if err := database.DB.
		Where("project_id = ?", project.ID).
		Order("order_index asc").
		Find(&photos).Error; err != nil {
		log.Printf("[api/c/gallery] load photos: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	var selections []models.Selection
	if err := database.DB.
		Where("project_id = ?", project.ID).
		Find(&selections).Error; err != nil {
		log.Printf("[api/c/gallery] load selections: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	filter := gallery.ParseFilter(c.Request.URL.Query())
	filtered := gallery.FilterAndSort(
		photos,
		gallery.SelectedIDSet(selections),
		gallery.PhotoStates(selections),
		filter,
	)

	c.JSON(http.StatusOK, gin.H{
		"photos":        filtered,
		"totalCount":    len(photos),
		"selectedCount": gallery.ComputeY(selections),
		"requiredCount": project.RequiredCount,
		"query":         filter.QueryString(),
	})
}

type selectionForm struct {
	Token     string           `json:"token"`
	ProjectID string           `json:"project_id"`
	PhotoID   string           `json:"photo_id"`
	Rating    *int             `json:"rating"`
	ColorTag  *models.ColorTag `json:"color_tag"`
	Comment   *string          `json:"comment"`
}

// POST /api/c/selections — (project_id, photo_id) upsert
func UpsertSelection(c *gin.Context) {
	var form selectionForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "요청 형식이 올바르지 않습니다"})
		return
	}
	if form.Token == "" || form.ProjectID == "" || form.PhotoID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "token, project_id, photo_id required"})
		return
	}
	if form.Rating != nil && (*form.Rating < 1 || *form.Rating > 5) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "별점은 1~5 사이여야 합니다"})
		return
	}
	if form.ColorTag != nil && !models.IsValidColorTag(*form.ColorTag) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "컬러 태그가 올바르지 않습니다"})
		return
	}
	if form.Comment != nil && len([]rune(*form.Comment)) > models.CommentMaxLen {
		c.JSON(http.StatusBadRequest, gin.H{"error": "코멘트가 너무 깁니다"})
		return
	}

	project := validateTokenAndProject(form.Token, form.ProjectID)
	if project == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token or project"})
		return
	}
	if !selectionMutable(project.Status) {
		c.JSON(http.StatusForbidden, gin.H{"error": "셀렉이 마감된 프로젝트입니다"})
		return
	}

	// 셀렉은 이 프로젝트에 실제로 존재하는 사진에만 붙는다
	var photo models.Photo
	if err := database.DB.First(&photo, "id = ? AND project_id = ?", form.PhotoID, form.ProjectID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "프로젝트에 없는 사진입니다"})
			return
		}
		log.Printf("[api/c/selections POST] load photo: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	sel := models.Selection{
		ProjectID: form.ProjectID,
		PhotoID:   form.PhotoID,
		Rating:    form.Rating,
		ColorTag:  form.ColorTag,
		Comment:   form.Comment,
	}
	// (project_id, photo_id) 충돌 시 주석 컬럼만 덮어쓴다
	err := database.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "project_id"}, {Name: "photo_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"rating", "color_tag", "comment", "updated_at"}),
	}).Create(&sel).Error
	if err != nil {
		log.Printf("[api/c/selections POST] %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// DELETE /api/c/selections — body 또는 query 둘 다 허용 (선택 해제)
func DeleteSelection(c *gin.Context) {
	var form selectionForm
	_ = c.ShouldBindJSON(&form)
	if form.Token == "" {
		form.Token = c.Query("token")
	}
	if form.ProjectID == "" {
		form.ProjectID = c.Query("project_id")
	}
	if form.PhotoID == "" {
		form.PhotoID = c.Query("photo_id")
	}
	if form.Token == "" || form.ProjectID == "" || form.PhotoID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "token, project_id, photo_id required"})
		return
	}

	project := validateTokenAndProject(form.Token, form.ProjectID)
	if project == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token or project"})
		return
	}
	if !selectionMutable(project.Status) {
		c.JSON(http.StatusForbidden, gin.H{"error": "셀렉이 마감된 프로젝트입니다"})
		return
	}

	if err := database.DB.
		Where("project_id = ? AND photo_id = ?", form.ProjectID, form.PhotoID).
		Delete(&models.Selection{}).Error; err != nil {
		log.Printf("[api/c/selections DELETE] %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}

type confirmForm struct {
	Token     string `json:"token"`
	ProjectID string `json:"project_id"`
}

// POST /api/c/confirm — 최종확정. Y는 이 요청 안에서 selections를 새로 읽어
// 계산한다 (마지막 토글이 반영된 뒤의 값이어야 함).
func ConfirmSelection(c *gin.Context) {
	var form confirmForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "요청 형식이 올바르지 않습니다"})
		return
	}
	if form.Token == "" || form.ProjectID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "token, project_id required"})
		return
	}

	project := validateTokenAndProject(form.Token, form.ProjectID)
	if project == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token or project"})
		return
	}

	var selections []models.Selection
	if err := database.DB.
		Where("project_id = ?", project.ID).
		Find(&selections).Error; err != nil {
		log.Printf("[api/c/confirm] load selections: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	updated, err := status.ApplyConfirm(*project, gallery.ComputeY(selections))
	if err != nil {
		if errors.Is(err, status.ErrInvalidState) || errors.Is(err, status.ErrIncompleteSelection) {
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if err := database.DB.Model(&models.Project{}).
		Where("id = ?", updated.ID).
		Updates(map[string]interface{}{
			"status":       updated.Status,
			"confirmed_at": updated.ConfirmedAt,
		}).Error; err != nil {
		log.Printf("[api/c/confirm] save: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	database.CreateProjectLog(updated.ID, updated.PhotographerID, models.ActionConfirmed)

	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// POST /api/c/cancel-confirm — 고객 확정 취소 (최대 횟수 내)
func CancelConfirmation(c *gin.Context) {
	var form confirmForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "요청 형식이 올바르지 않습니다"})
		return
	}
	if form.Token == "" || form.ProjectID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "token, project_id required"})
		return
	}

	project := validateTokenAndProject(form.Token, form.ProjectID)
	if project == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token or project"})
		return
	}

	updated, err := status.ApplyCancelConfirmation(*project)
	if err != nil {
		if errors.Is(err, status.ErrInvalidState) || errors.Is(err, status.ErrCancelLimitExceeded) {
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	// ConfirmedAt은 이력이므로 그대로 둔다
	if err := database.DB.Model(&models.Project{}).
		Where("id = ?", updated.ID).
		Updates(map[string]interface{}{
			"status":                updated.Status,
			"customer_cancel_count": updated.CustomerCancelCount,
		}).Error; err != nil {
		log.Printf("[api/c/cancel-confirm] save: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "remaining": status.CustomerCancelMax - updated.CustomerCancelCount})
}
