package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/agendapy/cita-scheduler/internal/httperr"
	"github.com/agendapy/cita-scheduler/internal/models"
)

type TemplateHandler struct {
	db *gorm.DB
}

func NewTemplateHandler(db *gorm.DB) *TemplateHandler {
	return &TemplateHandler{db: db}
}

type CreateTemplateRequest struct {
	Name string `json:"name" binding:"required"`
	Body string `json:"body" binding:"required"`
}

type UpdateTemplateRequest struct {
	Name *string `json:"name,omitempty"`
	Body *string `json:"body,omitempty"`
}

func (h *TemplateHandler) List(c *gin.Context) {
	var templates []models.MessageTemplate
	if err := h.db.
		Order("name ASC").
		Find(&templates).Error; err != nil {
		httperr.Internal(c, "failed_to_list_templates", "Error al listar plantillas.")
		return
	}

	c.JSON(http.StatusOK, templates)
}

func (h *TemplateHandler) Create(c *gin.Context) {
	var req CreateTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	tmpl := models.MessageTemplate{
		Name: strings.TrimSpace(req.Name),
		Body: req.Body,
	}

	if err := h.db.Create(&tmpl).Error; err != nil {
		httperr.Internal(c, "failed_to_create_template", "Error al crear plantilla.")
		return
	}

	c.JSON(http.StatusCreated, tmpl)
}

func (h *TemplateHandler) Update(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var tmpl models.MessageTemplate
	if err := h.db.First(&tmpl, id).Error; err != nil {
		httperr.NotFound(c, "template_not_found", "Plantilla no encontrada.")
		return
	}

	var req UpdateTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	if req.Name != nil {
		tmpl.Name = strings.TrimSpace(*req.Name)
	}
	if req.Body != nil {
		tmpl.Body = *req.Body
	}

	if err := h.db.Save(&tmpl).Error; err != nil {
		httperr.Internal(c, "failed_to_update_template", "Error al actualizar plantilla.")
		return
	}

	c.JSON(http.StatusOK, tmpl)
}

func (h *TemplateHandler) Delete(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var tmpl models.MessageTemplate
	if err := h.db.First(&tmpl, id).Error; err != nil {
		httperr.NotFound(c, "template_not_found", "Plantilla no encontrada.")
		return
	}

	if err := h.db.Delete(&tmpl).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_template", "Error al eliminar plantilla.")
		return
	}

	c.Status(http.StatusNoContent)
}
