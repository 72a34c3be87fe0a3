package cita

import "github.com/agendapy/cita-scheduler/internal/models"

// ===============================
// Domain Actions
// ===============================

// Cancel flags the cita as cancelled. Cancelling an already cancelled cita
// is a no-op, not an error.
func Cancel(c *models.Cita) {
	c.Cancelled = true
}

// Restore clears the cancelled flag. Idempotent like Cancel; every other
// field, including the total and the line items, is left untouched.
func Restore(c *models.Cita) {
	c.Cancelled = false
}

// DedupIDs removes duplicate ids preserving first-seen order. A sub-service
// requested twice must count once toward the total.
func DedupIDs(ids []uint) []uint {
	seen := make(map[uint]struct{}, len(ids))
	out := make([]uint, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

// ComputeTotal sums the current catalog prices of the resolved sub-services.
// The result is the amount frozen on the cita; later price changes never
// touch it.
func ComputeTotal(subServices []models.SubService) int64 {
	var total int64
	for _, s := range subServices {
		total += s.Price
	}
	return total
}

// BuildLineItems snapshots one line item per resolved sub-service.
func BuildLineItems(citaID uint, subServices []models.SubService) []models.CitaSubService {
	items := make([]models.CitaSubService, 0, len(subServices))
	for _, s := range subServices {
		items = append(items, models.CitaSubService{
			CitaID:       citaID,
			SubServiceID: s.ID,
			Price:        s.Price,
		})
	}
	return items
}
