package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/agendapy/cita-scheduler/internal/httperr"
	"github.com/agendapy/cita-scheduler/internal/models"
	"github.com/agendapy/cita-scheduler/internal/validators"
)

type ClientHandler struct {
	db *gorm.DB
}

func NewClientHandler(db *gorm.DB) *ClientHandler {
	return &ClientHandler{db: db}
}

// --------- Requests ---------

type CreateClientRequest struct {
	Name         string `json:"name" binding:"required"`
	Phone        string `json:"phone"`
	Email        string `json:"email"`
	IsMinor      bool   `json:"is_minor"`
	GuardianName string `json:"guardian_name"`
	Sex          string `json:"sex"`
}

type UpdateClientRequest struct {
	Name         *string `json:"name,omitempty"`
	Phone        *string `json:"phone,omitempty"`
	Email        *string `json:"email,omitempty"`
	IsMinor      *bool   `json:"is_minor,omitempty"`
	GuardianName *string `json:"guardian_name,omitempty"`
	Sex          *string `json:"sex,omitempty"`
}

// --------- Handlers ---------

func (h *ClientHandler) List(c *gin.Context) {
	query := strings.ToLower(strings.TrimSpace(c.Query("query")))

	q := h.db.Session(&gorm.Session{})
	if query != "" {
		like := "%" + query + "%"
		q = q.Where(
			"LOWER(name) LIKE ? OR phone LIKE ? OR LOWER(email) LIKE ?",
			like, like, like,
		)
	}

	var clients []models.Client
	if err := q.
		Order("created_at DESC").
		Find(&clients).Error; err != nil {
		httperr.Internal(c, "failed_to_list_clients", "Error al listar clientes.")
		return
	}

	c.JSON(http.StatusOK, clients)
}

func (h *ClientHandler) Get(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var client models.Client
	if err := h.db.First(&client, id).Error; err != nil {
		httperr.NotFound(c, "client_not_found", "Cliente no encontrado.")
		return
	}

	c.JSON(http.StatusOK, client)
}

func (h *ClientHandler) Create(c *gin.Context) {
	var req CreateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	if req.IsMinor && strings.TrimSpace(req.GuardianName) == "" {
		httperr.BadRequest(c, "guardian_required", "Un cliente menor de edad requiere responsable.")
		return
	}

	phone := validators.NormalizePhone(req.Phone)
	if phone != "" && !validators.IsPhoneValid(phone) {
		httperr.BadRequest(c, "invalid_phone", "Teléfono inválido.")
		return
	}

	client := models.Client{
		Name:         strings.TrimSpace(req.Name),
		Phone:        phone,
		Email:        strings.TrimSpace(req.Email),
		IsMinor:      req.IsMinor,
		GuardianName: strings.TrimSpace(req.GuardianName),
		Sex:          strings.ToUpper(strings.TrimSpace(req.Sex)),
	}

	if err := h.db.Create(&client).Error; err != nil {
		httperr.Internal(c, "failed_to_create_client", "Error al crear cliente.")
		return
	}

	c.JSON(http.StatusCreated, client)
}

func (h *ClientHandler) Update(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var client models.Client
	if err := h.db.First(&client, id).Error; err != nil {
		httperr.NotFound(c, "client_not_found", "Cliente no encontrado.")
		return
	}

	var req UpdateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	if req.Name != nil {
		client.Name = strings.TrimSpace(*req.Name)
	}
	if req.Phone != nil {
		phone := validators.NormalizePhone(*req.Phone)
		if phone != "" && !validators.IsPhoneValid(phone) {
			httperr.BadRequest(c, "invalid_phone", "Teléfono inválido.")
			return
		}
		client.Phone = phone
	}
	if req.Email != nil {
		client.Email = strings.TrimSpace(*req.Email)
	}
	if req.IsMinor != nil {
		client.IsMinor = *req.IsMinor
	}
	if req.GuardianName != nil {
		client.GuardianName = strings.TrimSpace(*req.GuardianName)
	}
	if req.Sex != nil {
		client.Sex = strings.ToUpper(strings.TrimSpace(*req.Sex))
	}

	if client.IsMinor && client.GuardianName == "" {
		httperr.BadRequest(c, "guardian_required", "Un cliente menor de edad requiere responsable.")
		return
	}

	if err := h.db.Save(&client).Error; err != nil {
		httperr.Internal(c, "failed_to_update_client", "Error al actualizar cliente.")
		return
	}

	c.JSON(http.StatusOK, client)
}

// Delete hides the client via the deleted-at timestamp. Existing citas keep
// referencing it.
func (h *ClientHandler) Delete(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var client models.Client
	if err := h.db.First(&client, id).Error; err != nil {
		httperr.NotFound(c, "client_not_found", "Cliente no encontrado.")
		return
	}

	if err := h.db.Delete(&client).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_client", "Error al eliminar cliente.")
		return
	}

	c.Status(http.StatusNoContent)
}
