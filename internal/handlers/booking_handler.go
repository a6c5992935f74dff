package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/trimhub/booking-api/internal/httperr"
	"github.com/trimhub/booking-api/internal/httpresp"
	"github.com/trimhub/booking-api/internal/middleware"
	ucBooking "github.com/trimhub/booking-api/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type BookingHandler struct {
	availabilityUC *ucBooking.GetAvailability
	createUC       *ucBooking.CreateBooking
	cancelUC       *ucBooking.CancelBooking
	listUC         *ucBooking.ListUserBookings
}

func NewBookingHandler(
	availabilityUC *ucBooking.GetAvailability,
	createUC *ucBooking.CreateBooking,
	cancelUC *ucBooking.CancelBooking,
	listUC *ucBooking.ListUserBookings,
) *BookingHandler {
	return &BookingHandler{
		availabilityUC: availabilityUC,
		createUC:       createUC,
		cancelUC:       cancelUC,
		listUC:         listUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateBookingRequest struct {
	ServiceID uint   `json:"service_id" binding:"required"`
	Date      string `json:"date" binding:"required"` // YYYY-MM-DD
	Time      string `json:"time" binding:"required"` // HH:mm
}

// ======================================================
// AVAILABILITY (público)
// ======================================================

func (h *BookingHandler) Availability(c *gin.Context) {
	serviceID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_service_id", "Serviço inválido.")
		return
	}

	dateStr := c.Query("date")
	if dateStr == "" {
		httperr.BadRequest(c, "missing_date", "Data obrigatória.")
		return
	}

	times, err := h.availabilityUC.Execute(c.Request.Context(), uint(serviceID), dateStr)
	if err != nil {
		switch {
		case httperr.IsBusiness(err, "service_not_found"):
			httperr.NotFound(c, "service_not_found", "Serviço não encontrado.")
		case httperr.IsBusiness(err, "invalid_date"):
			httperr.BadRequest(c, "invalid_date", "Data inválida.")
		default:
			httperr.Internal(c, "availability_failed", "Erro ao calcular horários.")
		}
		return
	}

	c.JSON(200, gin.H{
		"date":  dateStr,
		"times": times,
	})
}

// ======================================================
// CREATE
// ======================================================

func (h *BookingHandler) Create(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	b, err := h.createUC.Execute(c.Request.Context(), ucBooking.CreateBookingInput{
		UserID:    userID,
		ServiceID: req.ServiceID,
		Date:      req.Date,
		Time:      req.Time,
	})
	if err != nil {
		switch {
		case httperr.IsBusiness(err, "service_not_found"):
			httperr.NotFound(c, "service_not_found", "Serviço não encontrado.")
		case httperr.IsBusiness(err, "invalid_time"):
			httperr.BadRequest(c, "invalid_time", "Horário fora da grade.")
		case httperr.IsBusiness(err, "invalid_date_or_time"):
			httperr.BadRequest(c, "invalid_date_or_time", "Data ou hora inválida.")
		case httperr.IsBusiness(err, "time_in_past"):
			httperr.BadRequest(c, "time_in_past", "Horário já passou.")
		case httperr.IsBusiness(err, "slot_taken"):
			// segundo escritor concorrente cai aqui, nunca em sucesso
			httperr.Conflict(c, "slot_taken", "Horário acabou de ser reservado.")
		default:
			httperr.Internal(c, "failed_to_create_booking", "Erro ao criar reserva.")
		}
		return
	}

	httpresp.Created(c, b)
}

// ======================================================
// LIST (meus agendamentos)
// ======================================================

func (h *BookingHandler) List(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	upcoming := c.DefaultQuery("filter", "upcoming") != "past"

	bookings, err := h.listUC.Execute(c.Request.Context(), userID, upcoming)
	if err != nil {
		httperr.Internal(c, "failed_to_list_bookings", "Erro ao listar reservas.")
		return
	}

	httpresp.List(c, bookings)
}

// ======================================================
// CANCEL (self-service)
// ======================================================

func (h *BookingHandler) Cancel(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	bookingID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_booking_id", "Reserva inválida.")
		return
	}

	b, err := h.cancelUC.Execute(c.Request.Context(), userID, uint(bookingID))
	if err != nil {
		switch {
		case httperr.IsBusiness(err, "booking_not_found"):
			httperr.NotFound(c, "booking_not_found", "Reserva não encontrada.")
		case httperr.IsBusiness(err, "invalid_transition"):
			httperr.BadRequest(c, "invalid_state", "Reserva não pode ser cancelada.")
		case httperr.IsBusiness(err, "booking_elapsed"):
			httperr.BadRequest(c, "booking_elapsed", "Horário já passou.")
		default:
			httperr.Internal(c, "failed_to_cancel_booking", "Erro ao cancelar reserva.")
		}
		return
	}

	c.JSON(200, b)
}
