package handlers

import (
	"context"
	"io"
	"log"
	"net/http"

	"github.com/iamsonghee/photo-selection/internal/database"
	"github.com/iamsonghee/photo-selection/internal/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ThumbStore는 썸네일 object store 추상화. 실서비스는 storage.Storage.
type ThumbStore interface {
	UploadThumb(ctx context.Context, projectID string, orderIndex int, reader io.Reader, size int64, contentType string) (string, error)
}

// Store is the thumbnail object store, wired up in main.
var Store ThumbStore

// POST /api/photographer/projects/:id/photos — multipart 업로드.
// 파일당 순번(orderIndex)을 붙이고 photo_count를 올린다. 확정/보정 중에는 불가.
// 행 기록은 단일 트랜잭션: 중간 실패 시 photos/photo_count 둘 다 원복된다.
func UploadPhotos(c *gin.Context) {
	project := ownProject(c, c.Param("id"))
	if project == nil {
		return
	}

	if project.Status == models.StatusConfirmed || project.Status == models.StatusEditing {
		c.JSON(http.StatusForbidden, gin.H{"error": "확정된 프로젝트에는 업로드할 수 없습니다"})
		return
	}

	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "multipart 요청이 아닙니다"})
		return
	}
	files := form.File["photos"]
	if len(files) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "업로드할 파일이 없습니다"})
		return
	}

	// object store 먼저 (클라이언트 기준 파일별 순차 업로드).
	// 여기서 실패하면 DB에는 아무것도 쓰지 않는다.
	created := make([]models.Photo, 0, len(files))
	orderIndex := project.PhotoCount

	for _, fh := range files {
		orderIndex++

		src, err := fh.Open()
		if err != nil {
			log.Printf("[upload] open %s: %v", fh.Filename, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		url, err := Store.UploadThumb(c.Request.Context(), project.ID, orderIndex, src, fh.Size, fh.Header.Get("Content-Type"))
		src.Close()
		if err != nil {
			log.Printf("[upload] store %s: %v", fh.Filename, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		created = append(created, models.Photo{
			ProjectID:  project.ID,
			OrderIndex: orderIndex,
			URL:        url,
		})
	}

	// photos 행과 photo_count(M)는 항상 함께 움직인다
	err = database.DB.Transaction(func(tx *gorm.DB) error {
		for i := range created {
			if err := tx.Create(&created[i]).Error; err != nil {
				return err
			}
		}
		return tx.Model(&models.Project{}).
			Where("id = ?", project.ID).
			Update("photo_count", orderIndex).Error
	})
	if err != nil {
		log.Printf("[upload] save %s: %v", project.ID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	database.CreateProjectLog(project.ID, project.PhotographerID, models.ActionUploaded)

	c.JSON(http.StatusCreated, gin.H{"ok": true, "photos": created, "photoCount": orderIndex})
}
