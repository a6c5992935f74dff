package handlers

import (
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/trimhub/booking-api/internal/httperr"
	"github.com/trimhub/booking-api/internal/middleware"
	"github.com/trimhub/booking-api/internal/models"
	"github.com/trimhub/booking-api/internal/storage"
)

// uploads de avatar maiores que isso são recusados antes do decode
const maxAvatarBytes = 5 << 20

type UserHandler struct {
	db      *gorm.DB
	avatars *storage.AvatarStore
}

func NewUserHandler(db *gorm.DB, avatars *storage.AvatarStore) *UserHandler {
	return &UserHandler{db: db, avatars: avatars}
}

// ======================================================
// REQUESTS
// ======================================================

type UpdateInfoRequest struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required,email"`
}

type UpdatePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required,min=6"`
}

// ======================================================
// ME
// ======================================================

func (h *UserHandler) GetMe(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var user models.User
	if err := h.db.First(&user, userID).Error; err != nil {
		httperr.Internal(c, "user_not_found", "Usuário não encontrado.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user": gin.H{
			"id":        user.ID,
			"name":      user.Name,
			"email":     user.Email,
			"phone":     user.Phone,
			"image_url": user.ImageURL,
			"role":      user.Role,
		},
	})
}

func (h *UserHandler) GetRole(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var user models.User
	if err := h.db.Select("role").First(&user, userID).Error; err != nil {
		httperr.Internal(c, "user_not_found", "Usuário não encontrado.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"role": user.Role})
}

// ======================================================
// PROFILE
// ======================================================

func (h *UserHandler) UpdateInfo(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var req UpdateInfoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados incompletos.")
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	// e-mail não pode estar em uso por outro usuário
	var count int64
	h.db.Model(&models.User{}).
		Where("email = ? AND id <> ?", email, userID).
		Count(&count)
	if count > 0 {
		httperr.BadRequest(c, "email_in_use", "Este e-mail já está em uso.")
		return
	}

	var user models.User
	if err := h.db.First(&user, userID).Error; err != nil {
		httperr.NotFound(c, "user_not_found", "Usuário não encontrado.")
		return
	}

	user.Name = req.Name
	user.Email = email

	if err := h.db.Save(&user).Error; err != nil {
		httperr.Internal(c, "failed_to_update_user", "Erro ao atualizar perfil.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user": gin.H{
			"name":  user.Name,
			"email": user.Email,
		},
	})
}

func (h *UserHandler) UpdatePassword(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var req UpdatePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados incompletos.")
		return
	}

	var user models.User
	if err := h.db.First(&user, userID).Error; err != nil {
		httperr.NotFound(c, "user_not_found", "Usuário não encontrado.")
		return
	}

	if err := bcrypt.CompareHashAndPassword(
		[]byte(user.PasswordHash),
		[]byte(req.CurrentPassword),
	); err != nil {
		httperr.BadRequest(c, "wrong_password", "Senha atual incorreta.")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		httperr.Internal(c, "failed_to_hash_password", "Erro ao atualizar senha.")
		return
	}

	user.PasswordHash = string(hashed)

	if err := h.db.Save(&user).Error; err != nil {
		httperr.Internal(c, "failed_to_update_password", "Erro ao atualizar senha.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Senha atualizada com sucesso."})
}

// ======================================================
// AVATAR
// ======================================================

func (h *UserHandler) UploadAvatar(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	file, _, err := c.Request.FormFile("file")
	if err != nil {
		httperr.BadRequest(c, "missing_file", "Nenhum arquivo foi enviado.")
		return
	}
	defer file.Close()

	raw, err := io.ReadAll(io.LimitReader(file, maxAvatarBytes+1))
	if err != nil {
		httperr.Internal(c, "failed_to_read_file", "Erro ao ler arquivo.")
		return
	}
	if len(raw) > maxAvatarBytes {
		httperr.BadRequest(c, "file_too_large", "Arquivo maior que o limite de 5MB.")
		return
	}

	url, err := h.avatars.Upload(c.Request.Context(), raw)
	if err != nil {
		httperr.Internal(c, "upload_failed", "Erro ao enviar imagem.")
		return
	}

	if err := h.db.Model(&models.User{}).
		Where("id = ?", userID).
		Update("image_url", url).Error; err != nil {
		httperr.Internal(c, "failed_to_update_user", "Erro ao salvar avatar.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": url})
}
