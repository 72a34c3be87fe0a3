package cita

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/agendapy/cita-scheduler/internal/httperr"
	"github.com/agendapy/cita-scheduler/internal/models"
)

// classifyClientErr turns a client lookup failure into a typed error.
func classifyClientErr(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return httperr.ErrNotFound("client_not_found", "Cliente no encontrado.")
	}
	return httperr.ErrExternal("database_error", err)
}

// classifyCitaErr turns a cita lookup failure into a typed error.
func classifyCitaErr(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return httperr.ErrNotFound("cita_not_found", "Cita no encontrada.")
	}
	return httperr.ErrExternal("database_error", err)
}

// missingIDsErr names every requested id that did not resolve; partial
// matches are never dropped silently.
func missingIDsErr(requested []uint, resolved []models.SubService) error {
	found := make(map[uint]struct{}, len(resolved))
	for _, s := range resolved {
		found[s.ID] = struct{}{}
	}

	var missing []string
	for _, id := range requested {
		if _, ok := found[id]; !ok {
			missing = append(missing, strconv.FormatUint(uint64(id), 10))
		}
	}

	if len(missing) == 0 {
		return nil
	}

	return httperr.ErrValidation(
		"sub_services_not_found",
		fmt.Sprintf("Sub-servicios inexistentes: %s.", strings.Join(missing, ", ")),
	)
}

// parseScheduledAt accepts an ISO-8601 instant. Past timestamps are allowed
// on purpose: historical appointments are recorded through the same path.
func parseScheduledAt(value string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, httperr.ErrValidation("invalid_scheduled_at", "Fecha y hora inválidas.")
	}
	return t, nil
}
