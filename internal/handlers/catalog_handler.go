package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/agendapy/cita-scheduler/internal/httperr"
	"github.com/agendapy/cita-scheduler/internal/models"
)

// CatalogHandler manages service categories and their priced sub-services.
// Soft-deleted sub-services disappear from these listings but stay valid on
// the citas that already snapshotted them.
type CatalogHandler struct {
	db *gorm.DB
}

func NewCatalogHandler(db *gorm.DB) *CatalogHandler {
	return &CatalogHandler{db: db}
}

// --------- Requests ---------

type CreateServiceRequest struct {
	Name string `json:"name" binding:"required"`
}

type CreateSubServiceRequest struct {
	ServiceID uint   `json:"service_id" binding:"required"`
	Name      string `json:"name" binding:"required"`
	Price     int64  `json:"price" binding:"min=0"`
}

type UpdateSubServiceRequest struct {
	Name  *string `json:"name,omitempty"`
	Price *int64  `json:"price,omitempty"`
}

// --------- Services ---------

func (h *CatalogHandler) ListServices(c *gin.Context) {
	var services []models.Service
	if err := h.db.
		Preload("SubServices").
		Order("name ASC").
		Find(&services).Error; err != nil {
		httperr.Internal(c, "failed_to_list_services", "Error al listar servicios.")
		return
	}

	c.JSON(http.StatusOK, services)
}

func (h *CatalogHandler) CreateService(c *gin.Context) {
	var req CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	service := models.Service{Name: strings.TrimSpace(req.Name)}
	if err := h.db.Create(&service).Error; err != nil {
		httperr.Internal(c, "failed_to_create_service", "Error al crear servicio.")
		return
	}

	c.JSON(http.StatusCreated, service)
}

func (h *CatalogHandler) DeleteService(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var service models.Service
	if err := h.db.First(&service, id).Error; err != nil {
		httperr.NotFound(c, "service_not_found", "Servicio no encontrado.")
		return
	}

	if err := h.db.Delete(&service).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_service", "Error al eliminar servicio.")
		return
	}

	c.Status(http.StatusNoContent)
}

// --------- Sub-services ---------

func (h *CatalogHandler) ListSubServices(c *gin.Context) {
	q := h.db.Session(&gorm.Session{})

	if serviceID := c.Query("service_id"); serviceID != "" {
		q = q.Where("service_id = ?", serviceID)
	}

	var subServices []models.SubService
	if err := q.
		Order("name ASC").
		Find(&subServices).Error; err != nil {
		httperr.Internal(c, "failed_to_list_sub_services", "Error al listar sub-servicios.")
		return
	}

	c.JSON(http.StatusOK, subServices)
}

func (h *CatalogHandler) CreateSubService(c *gin.Context) {
	var req CreateSubServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	var service models.Service
	if err := h.db.First(&service, req.ServiceID).Error; err != nil {
		httperr.BadRequest(c, "service_not_found", "Servicio no encontrado.")
		return
	}

	subService := models.SubService{
		ServiceID: service.ID,
		Name:      strings.TrimSpace(req.Name),
		Price:     req.Price,
	}

	if err := h.db.Create(&subService).Error; err != nil {
		httperr.Internal(c, "failed_to_create_sub_service", "Error al crear sub-servicio.")
		return
	}

	c.JSON(http.StatusCreated, subService)
}

// UpdateSubService changes the catalog price going forward. Existing citas
// keep their snapshots.
func (h *CatalogHandler) UpdateSubService(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var subService models.SubService
	if err := h.db.First(&subService, id).Error; err != nil {
		httperr.NotFound(c, "sub_service_not_found", "Sub-servicio no encontrado.")
		return
	}

	var req UpdateSubServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	if req.Name != nil {
		subService.Name = strings.TrimSpace(*req.Name)
	}
	if req.Price != nil {
		if *req.Price < 0 {
			httperr.BadRequest(c, "invalid_price", "El precio no puede ser negativo.")
			return
		}
		subService.Price = *req.Price
	}

	if err := h.db.Save(&subService).Error; err != nil {
		httperr.Internal(c, "failed_to_update_sub_service", "Error al actualizar sub-servicio.")
		return
	}

	c.JSON(http.StatusOK, subService)
}

func (h *CatalogHandler) DeleteSubService(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var subService models.SubService
	if err := h.db.First(&subService, id).Error; err != nil {
		httperr.NotFound(c, "sub_service_not_found", "Sub-servicio no encontrado.")
		return
	}

	if err := h.db.Delete(&subService).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_sub_service", "Error al eliminar sub-servicio.")
		return
	}

	c.Status(http.StatusNoContent)
}
