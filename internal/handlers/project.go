package handlers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/iamsonghee/photo-selection/internal/database"
	"github.com/iamsonghee/photo-selection/internal/middleware"
	"github.com/iamsonghee/photo-selection/internal/models"
	"github.com/iamsonghee/photo-selection/internal/status"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

//
// 작가 플로우 — 세션 인증
//

// 본인 소유 프로젝트 조회. 오류 시 응답까지 처리하고 nil 반환.
func ownProject(c *gin.Context, id string) *models.Project {
	pid := middleware.PhotographerID(c)

	var project models.Project
	if err := database.DB.First(&project, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "프로젝트를 찾을 수 없습니다"})
		} else {
			log.Printf("[projects] load %s: %v", id, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return nil
	}
	if project.PhotographerID != pid {
		c.JSON(http.StatusForbidden, gin.H{"error": "접근 권한이 없습니다"})
		return nil
	}
	return &project
}

// GET /api/photographer/projects
func ListProjects(c *gin.Context) {
	pid := middleware.PhotographerID(c)

	var projects []models.Project
	if err := database.DB.
		Where("photographer_id = ?", pid).
		Order("updated_at desc").
		Find(&projects).Error; err != nil {
		log.Printf("[projects] list: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, projects)
}

// GET /api/photographer/dashboard — 상태 그룹별(대기중/진행중/완료) 프로젝트 묶음
func Dashboard(c *gin.Context) {
	pid := middleware.PhotographerID(c)

	var projects []models.Project
	if err := database.DB.
		Where("photographer_id = ?", pid).
		Order("updated_at desc").
		Find(&projects).Error; err != nil {
		log.Printf("[dashboard] list: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	group := func(statuses []models.ProjectStatus) []models.Project {
		out := make([]models.Project, 0)
		for _, p := range projects {
			for _, s := range statuses {
				if p.Status == s {
					out = append(out, p)
					break
				}
			}
		}
		return out
	}

	c.JSON(http.StatusOK, gin.H{
		"waiting":    group(models.GroupWaiting),
		"inProgress": group(models.GroupInProgress),
		"completed":  group(models.GroupCompleted),
	})
}

type createProjectForm struct {
	Name          string `json:"name"`
	CustomerName  string `json:"customer_name"`
	ShootDate     string `json:"shoot_date"`
	Deadline      string `json:"deadline"`
	RequiredCount int    `json:"required_count"`
}

// POST /api/photographer/projects
func CreateProject(c *gin.Context) {
	pid := middleware.PhotographerID(c)

	var form createProjectForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "요청 형식이 올바르지 않습니다"})
		return
	}

	form.Name = strings.TrimSpace(form.Name)
	form.CustomerName = strings.TrimSpace(form.CustomerName)
	if form.Name == "" || form.CustomerName == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "프로젝트명과 고객명을 입력해주세요"})
		return
	}
	if form.RequiredCount < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "셀렉 장수는 1 이상이어야 합니다"})
		return
	}
	for _, d := range []string{form.ShootDate, form.Deadline} {
		if _, err := time.Parse("2006-01-02", d); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "날짜 형식이 올바르지 않습니다 (YYYY-MM-DD)"})
			return
		}
	}

	project := models.Project{
		PhotographerID: pid,
		Name:           form.Name,
		CustomerName:   form.CustomerName,
		ShootDate:      form.ShootDate,
		Deadline:       form.Deadline,
		RequiredCount:  form.RequiredCount,
		PhotoCount:     0,
		Status:         models.StatusPreparing,
	}
	if err := database.DB.Create(&project).Error; err != nil {
		log.Printf("[projects] create: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	database.CreateProjectLog(project.ID, pid, models.ActionCreated)

	c.JSON(http.StatusCreated, project)
}

// GET /api/photographer/projects/:id
func GetProject(c *gin.Context) {
	project := ownProject(c, c.Param("id"))
	if project == nil {
		return
	}
	c.JSON(http.StatusOK, project)
}

type patchProjectForm struct {
	Name          *string `json:"name"`
	CustomerName  *string `json:"customer_name"`
	ShootDate     *string `json:"shoot_date"`
	Deadline      *string `json:"deadline"`
	RequiredCount *int    `json:"required_count"`
}

// PATCH /api/photographer/projects/:id — 부분 수정.
// required_count는 업로드 수(M) 미만으로 내릴 수 없다.
func PatchProject(c *gin.Context) {
	project := ownProject(c, c.Param("id"))
	if project == nil {
		return
	}

	var form patchProjectForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "요청 형식이 올바르지 않습니다"})
		return
	}

	updates := map[string]interface{}{}
	if form.Name != nil {
		updates["name"] = strings.TrimSpace(*form.Name)
	}
	if form.CustomerName != nil {
		updates["customer_name"] = strings.TrimSpace(*form.CustomerName)
	}
	if form.ShootDate != nil {
		if _, err := time.Parse("2006-01-02", *form.ShootDate); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "촬영일 형식이 올바르지 않습니다"})
			return
		}
		updates["shoot_date"] = *form.ShootDate
	}
	if form.Deadline != nil {
		if _, err := time.Parse("2006-01-02", *form.Deadline); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "마감일 형식이 올바르지 않습니다"})
			return
		}
		updates["deadline"] = *form.Deadline
	}
	if form.RequiredCount != nil {
		if *form.RequiredCount < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "셀렉 장수는 1 이상이어야 합니다"})
			return
		}
		updated, err := status.ApplyRequiredCountChange(*project, *form.RequiredCount)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": fmt.Sprintf("업로드 수(M=%d) 이상으로 N을 설정해주세요.", project.PhotoCount),
			})
			return
		}
		updates["required_count"] = updated.RequiredCount
	}

	if len(updates) == 0 {
		c.JSON(http.StatusOK, gin.H{"ok": true})
		return
	}

	if err := database.DB.Model(project).Updates(updates).Error; err != nil {
		log.Printf("[projects] patch %s: %v", project.ID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}

type changeStatusForm struct {
	Status models.ProjectStatus `json:"status"`
}

// POST /api/photographer/projects/:id/status — 상태 전환.
// 전환 가능 여부는 status.CanTransition이 단독으로 결정한다.
func ChangeProjectStatus(c *gin.Context) {
	project := ownProject(c, c.Param("id"))
	if project == nil {
		return
	}

	var form changeStatusForm
	if err := c.ShouldBindJSON(&form); err != nil || !models.IsValidStatus(form.Status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "올바르지 않은 상태값입니다"})
		return
	}

	if !status.CanTransition(project.Status, form.Status) {
		c.JSON(http.StatusForbidden, gin.H{
			"error": fmt.Sprintf("%s에서 %s(으)로 전환할 수 없습니다",
				models.StatusLabel(project.Status), models.StatusLabel(form.Status)),
		})
		return
	}

	updates := map[string]interface{}{"status": form.Status}
	var logAction models.LogAction

	switch form.Status {
	case models.StatusSelecting:
		if project.Status == models.StatusConfirmed {
			// confirmed → selecting은 고객 확정 취소 전용 (/api/c/cancel-confirm)
			c.JSON(http.StatusForbidden, gin.H{"error": "확정 취소는 고객만 할 수 있습니다"})
			return
		}
		logAction = models.ActionSelecting
	case models.StatusEditing:
		updated, err := status.ApplyStartEditing(*project)
		if err != nil {
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
			return
		}
		updates["status"] = updated.Status
		logAction = models.ActionEditing
	case models.StatusConfirmed:
		// 최종확정은 고객 플로우(/api/c/confirm) 전용
		c.JSON(http.StatusForbidden, gin.H{"error": "최종확정은 고객만 할 수 있습니다"})
		return
	}

	if err := database.DB.Model(project).Updates(updates).Error; err != nil {
		log.Printf("[projects] status %s: %v", project.ID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if logAction != "" {
		database.CreateProjectLog(project.ID, project.PhotographerID, logAction)
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// POST /api/photographer/projects/:id/editing — 보정 시작 (셀렉 잠금)
func StartEditing(c *gin.Context) {
	project := ownProject(c, c.Param("id"))
	if project == nil {
		return
	}

	updated, err := status.ApplyStartEditing(*project)
	if err != nil {
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		return
	}

	if err := database.DB.Model(project).Update("status", updated.Status).Error; err != nil {
		log.Printf("[projects] start editing %s: %v", project.ID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	database.CreateProjectLog(project.ID, project.PhotographerID, models.ActionEditing)

	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// DELETE /api/photographer/projects/:id — UI만 있고 실제 삭제는 미구현
func DeleteProject(c *gin.Context) {
	project := ownProject(c, c.Param("id"))
	if project == nil {
		return
	}
	c.JSON(http.StatusNotImplemented, gin.H{"error": "프로젝트 삭제는 아직 지원하지 않습니다"})
}
