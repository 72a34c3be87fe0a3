package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/agendapy/cita-scheduler/internal/httperr"
	"github.com/agendapy/cita-scheduler/internal/httpresp"
	"github.com/agendapy/cita-scheduler/internal/models"
	"github.com/agendapy/cita-scheduler/internal/reminder"
)

type ReminderHandler struct {
	scheduler *reminder.Scheduler
}

func NewReminderHandler(scheduler *reminder.Scheduler) *ReminderHandler {
	return &ReminderHandler{scheduler: scheduler}
}

// List returns reminders, optionally filtered by delivery status.
func (h *ReminderHandler) List(c *gin.Context) {
	status := models.ReminderStatus(c.Query("status"))

	switch status {
	case "", models.ReminderPending, models.ReminderSent, models.ReminderFailed:
	default:
		httperr.BadRequest(c, "invalid_status", "Estado inválido.")
		return
	}

	reminders, err := h.scheduler.ListByStatus(c.Request.Context(), status)
	if err != nil {
		httperr.Internal(c, "failed_to_list_reminders", "Error al listar recordatorios.")
		return
	}

	httpresp.List(c, reminders)
}
