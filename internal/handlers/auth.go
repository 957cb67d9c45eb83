package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/iamsonghee/photo-selection/internal/database"
	"github.com/iamsonghee/photo-selection/internal/models"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type registerForm struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

func Register(c *gin.Context) {
	var form registerForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "요청 형식이 올바르지 않습니다"})
		return
	}

	form.Email = strings.TrimSpace(form.Email)
	form.Name = strings.TrimSpace(form.Name)
	if form.Email == "" || form.Name == "" || len(form.Password) < 6 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "이메일/이름을 입력하고 비밀번호는 6자 이상이어야 합니다"})
		return
	}

	var existing models.Photographer
	if err := database.DB.Where("email = ?", form.Email).First(&existing).Error; err == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "이미 가입된 이메일입니다"})
		return
	}

	hash, _ := bcrypt.GenerateFromPassword([]byte(form.Password), bcrypt.DefaultCost)
	ph := models.Photographer{
		Email:        form.Email,
		PasswordHash: string(hash),
		Name:         form.Name,
	}
	if err := database.DB.Create(&ph).Error; err != nil {
		// 사전 조회와 경합해도 unique index가 최종 판정한다
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "이미 가입된 이메일입니다"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "가입 처리에 실패했습니다"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"ok": true, "id": ph.ID})
}

type loginForm struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func Login(c *gin.Context) {
	var form loginForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "요청 형식이 올바르지 않습니다"})
		return
	}

	var ph models.Photographer
	if err := database.DB.Where("email = ?", form.Email).First(&ph).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "이메일 또는 비밀번호가 올바르지 않습니다"})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(ph.PasswordHash), []byte(form.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "이메일 또는 비밀번호가 올바르지 않습니다"})
		return
	}

	sess := sessions.Default(c)
	sess.Set("photographer_id", ph.ID)
	_ = sess.Save()

	c.JSON(http.StatusOK, gin.H{"ok": true, "id": ph.ID, "name": ph.Name})
}

func Logout(c *gin.Context) {
	sess := sessions.Default(c)
	sess.Clear()
	_ = sess.Save()
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
