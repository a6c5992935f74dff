package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/trimhub/booking-api/internal/httperr"
	"github.com/trimhub/booking-api/internal/httpresp"
	"github.com/trimhub/booking-api/internal/middleware"
	"github.com/trimhub/booking-api/internal/models"
	ucBooking "github.com/trimhub/booking-api/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type AdminHandler struct {
	db         *gorm.DB
	listUC     *ucBooking.ListAdminBookings
	historyUC  *ucBooking.ListBookingHistory
	moderateUC *ucBooking.ModerateBooking
}

func NewAdminHandler(
	db *gorm.DB,
	listUC *ucBooking.ListAdminBookings,
	historyUC *ucBooking.ListBookingHistory,
	moderateUC *ucBooking.ModerateBooking,
) *AdminHandler {
	return &AdminHandler{
		db:         db,
		listUC:     listUC,
		historyUC:  historyUC,
		moderateUC: moderateUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// ======================================================
// BOOKINGS
// ======================================================

func (h *AdminHandler) ListBookings(c *gin.Context) {
	bookings, err := h.listUC.Execute(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "failed_to_list_bookings", "Erro ao listar agendamentos.")
		return
	}

	httpresp.List(c, bookings)
}

func (h *AdminHandler) ListHistory(c *gin.Context) {
	bookings, err := h.historyUC.Execute(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "failed_to_list_history", "Erro ao listar histórico.")
		return
	}

	httpresp.List(c, bookings)
}

// ======================================================
// MODERATION
// ======================================================

func (h *AdminHandler) UpdateStatus(c *gin.Context) {
	adminID := c.MustGet(middleware.ContextUserID).(uint)

	bookingID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_booking_id", "Agendamento inválido.")
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Status obrigatório.")
		return
	}

	b, err := h.moderateUC.Execute(c.Request.Context(), adminID, uint(bookingID), req.Status)
	if err != nil {
		h.writeModerationError(c, err)
		return
	}

	c.JSON(200, b)
}

// DELETE marca CANCELED; a linha nunca é apagada.
func (h *AdminHandler) CancelBooking(c *gin.Context) {
	adminID := c.MustGet(middleware.ContextUserID).(uint)

	bookingID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_booking_id", "Agendamento inválido.")
		return
	}

	b, err := h.moderateUC.Cancel(c.Request.Context(), adminID, uint(bookingID))
	if err != nil {
		h.writeModerationError(c, err)
		return
	}

	c.JSON(200, b)
}

func (h *AdminHandler) writeModerationError(c *gin.Context, err error) {
	be, ok := httperr.AsBusiness(err)
	if !ok {
		httperr.Internal(c, "moderation_failed", "Erro ao moderar agendamento.")
		return
	}

	switch be.Code {
	case "booking_not_found":
		httperr.NotFound(c, be.Code, "Agendamento não encontrado.")
	case "invalid_status":
		httperr.BadRequest(c, be.Code, "Status desconhecido.")
	case "invalid_transition":
		httperr.BadRequest(c, be.Code, "Transição de status ilegal.")
	default:
		httperr.Internal(c, "moderation_failed", "Erro ao moderar agendamento.")
	}
}

// ======================================================
// CLIENTS
// ======================================================

func (h *AdminHandler) ListUsers(c *gin.Context) {
	var users []models.User
	if err := h.db.WithContext(c.Request.Context()).
		Select("id", "name", "email", "phone", "image_url", "created_at").
		Order("created_at DESC").
		Find(&users).Error; err != nil {

		httperr.Internal(c, "failed_to_list_users", "Erro ao listar clientes.")
		return
	}

	httpresp.List(c, users)
}
