package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/agendapy/cita-scheduler/internal/dto"
	"github.com/agendapy/cita-scheduler/internal/httperr"
	ucCita "github.com/agendapy/cita-scheduler/internal/usecase/cita"
)

// ======================================================
// HANDLER
// ======================================================

type CitaHandler struct {
	createUC       *ucCita.CreateCita
	updateUC       *ucCita.UpdateCita
	cancelUC       *ucCita.CancelCita
	restoreUC      *ucCita.RestoreCita
	getUC          *ucCita.GetCita
	listByDateUC   *ucCita.ListCitasByDate
	listByClientUC *ucCita.ListCitasByClient
	dailyLoadUC    *ucCita.DailyLoad
}

func NewCitaHandler(
	createUC *ucCita.CreateCita,
	updateUC *ucCita.UpdateCita,
	cancelUC *ucCita.CancelCita,
	restoreUC *ucCita.RestoreCita,
	getUC *ucCita.GetCita,
	listByDateUC *ucCita.ListCitasByDate,
	listByClientUC *ucCita.ListCitasByClient,
	dailyLoadUC *ucCita.DailyLoad,
) *CitaHandler {
	return &CitaHandler{
		createUC:       createUC,
		updateUC:       updateUC,
		cancelUC:       cancelUC,
		restoreUC:      restoreUC,
		getUC:          getUC,
		listByDateUC:   listByDateUC,
		listByClientUC: listByClientUC,
		dailyLoadUC:    dailyLoadUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateCitaRequest struct {
	ClientID      uint   `json:"client_id" binding:"required"`
	ScheduledAt   string `json:"scheduled_at" binding:"required"`
	SubServiceIDs []uint `json:"sub_service_ids" binding:"required"`

	Notes string `json:"notes"`

	SendReminder        bool `json:"send_reminder"`
	ReminderLeadMinutes int  `json:"reminder_lead_minutes"`
}

type UpdateCitaRequest struct {
	ClientID      *uint   `json:"client_id,omitempty"`
	ScheduledAt   *string `json:"scheduled_at,omitempty"`
	SubServiceIDs *[]uint `json:"sub_service_ids,omitempty"`
	Notes         *string `json:"notes,omitempty"`
	Cancelled     *bool   `json:"cancelled,omitempty"`
}

// ======================================================
// CREATE
// ======================================================

func (h *CitaHandler) Create(c *gin.Context) {
	var req CreateCitaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	cita, err := h.createUC.Execute(c.Request.Context(), ucCita.CreateCitaInput{
		ClientID:            req.ClientID,
		ScheduledAt:         req.ScheduledAt,
		SubServiceIDs:       req.SubServiceIDs,
		Notes:               req.Notes,
		SendReminder:        req.SendReminder,
		ReminderLeadMinutes: req.ReminderLeadMinutes,
	})
	if err != nil {
		httperr.WriteError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewCitaDTO(cita))
}

// ======================================================
// UPDATE
// ======================================================

func (h *CitaHandler) Update(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var req UpdateCitaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	cita, err := h.updateUC.Execute(c.Request.Context(), id, ucCita.UpdateCitaInput{
		ClientID:      req.ClientID,
		ScheduledAt:   req.ScheduledAt,
		SubServiceIDs: req.SubServiceIDs,
		Notes:         req.Notes,
		Cancelled:     req.Cancelled,
	})
	if err != nil {
		httperr.WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewCitaDTO(cita))
}

// ======================================================
// GET / LIST
// ======================================================

func (h *CitaHandler) Get(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	cita, err := h.getUC.Execute(c.Request.Context(), id)
	if err != nil {
		httperr.WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewCitaDTO(cita))
}

func (h *CitaHandler) ListByDate(c *gin.Context) {
	dateStr := c.Query("date")
	if dateStr == "" {
		httperr.BadRequest(c, "missing_date", "Fecha obligatoria.")
		return
	}

	citas, err := h.listByDateUC.Execute(c.Request.Context(), dateStr)
	if err != nil {
		httperr.WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewCitaDTOs(citas))
}

func (h *CitaHandler) ListByClient(c *gin.Context) {
	clientID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_client_id", "Cliente inválido.")
		return
	}

	citas, err := h.listByClientUC.Execute(c.Request.Context(), uint(clientID))
	if err != nil {
		httperr.WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewCitaDTOs(citas))
}

// ======================================================
// DAILY LOAD (dashboard)
// ======================================================

func (h *CitaHandler) DailyLoad(c *gin.Context) {
	year, err := strconv.Atoi(c.Query("year"))
	if err != nil || year < 2000 || year > 2100 {
		httperr.BadRequest(c, "invalid_year", "Año inválido.")
		return
	}

	month, err := strconv.Atoi(c.Query("month"))
	if err != nil || month < 1 || month > 12 {
		httperr.BadRequest(c, "invalid_month", "Mes inválido.")
		return
	}

	counts, err := h.dailyLoadUC.Execute(c.Request.Context(), year, month)
	if err != nil {
		httperr.WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"year":   year,
		"month":  month,
		"counts": counts,
	})
}

// ======================================================
// CANCEL / RESTORE
// ======================================================

func (h *CitaHandler) Cancel(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	cita, err := h.cancelUC.Execute(c.Request.Context(), id)
	if err != nil {
		httperr.WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewCitaDTO(cita))
}

func (h *CitaHandler) Restore(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	cita, err := h.restoreUC.Execute(c.Request.Context(), id)
	if err != nil {
		httperr.WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewCitaDTO(cita))
}

// ======================================================
// HELPERS
// ======================================================

func paramID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return 0, false
	}
	return uint(id), true
}
