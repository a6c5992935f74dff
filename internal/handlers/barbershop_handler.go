package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/trimhub/booking-api/internal/cache"
	"github.com/trimhub/booking-api/internal/httperr"
	"github.com/trimhub/booking-api/internal/httpresp"
	"github.com/trimhub/booking-api/internal/models"
)

// catálogo muda raramente; TTL curto mantém o cache honesto
const catalogTTL = 5 * time.Minute

type BarbershopHandler struct {
	db    *gorm.DB
	cache *cache.Cache
}

func NewBarbershopHandler(db *gorm.DB, cc *cache.Cache) *BarbershopHandler {
	return &BarbershopHandler{db: db, cache: cc}
}

// ======================================================
// LIST
// ======================================================

func (h *BarbershopHandler) List(c *gin.Context) {
	search := strings.ToLower(strings.TrimSpace(c.Query("search")))
	ctx := c.Request.Context()

	// só a listagem completa é cacheada; busca vai direto ao banco
	if search == "" {
		var cached []models.Barbershop
		if h.cache.GetJSON(ctx, "catalog:barbershops", &cached) {
			httpresp.List(c, cached)
			return
		}
	}

	q := h.db.WithContext(ctx)
	if search != "" {
		like := "%" + search + "%"
		q = q.Where("LOWER(name) LIKE ? OR LOWER(address) LIKE ?", like, like)
	}

	var shops []models.Barbershop
	if err := q.Order("name ASC").Find(&shops).Error; err != nil {
		httperr.Internal(c, "failed_to_list_barbershops", "Erro ao listar barbearias.")
		return
	}

	if search == "" {
		h.cache.SetJSON(ctx, "catalog:barbershops", shops, catalogTTL)
	}

	httpresp.List(c, shops)
}

// ======================================================
// GET (WITH SERVICES)
// ======================================================

func (h *BarbershopHandler) Get(c *gin.Context) {
	id := c.Param("id")
	ctx := c.Request.Context()

	key := "catalog:barbershop:" + id

	var cached models.Barbershop
	if h.cache.GetJSON(ctx, key, &cached) {
		httpresp.OK(c, cached)
		return
	}

	var shop models.Barbershop
	if err := h.db.WithContext(ctx).
		Preload("Services").
		First(&shop, id).Error; err != nil {

		httperr.NotFound(c, "barbershop_not_found", "Barbearia não encontrada.")
		return
	}

	h.cache.SetJSON(ctx, key, shop, catalogTTL)

	httpresp.OK(c, shop)
}

func (h *BarbershopHandler) ListServices(c *gin.Context) {
	id := c.Param("id")

	var services []models.Service
	if err := h.db.WithContext(c.Request.Context()).
		Where("barbershop_id = ?", id).
		Order("id ASC").
		Find(&services).Error; err != nil {

		httperr.Internal(c, "failed_to_list_services", "Erro ao listar serviços.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"services": services})
}
