package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	once sync.Once

	citasCreated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "cita_scheduler",
			Name:      "citas_created_total",
			Help:      "Citas successfully booked.",
		},
	)

	bookingFailures = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "cita_scheduler",
			Name:      "booking_failures_total",
			Help:      "Booking failures by error code.",
		},
		[]string{"code"},
	)

	reminders = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "cita_scheduler",
			Name:      "reminders_total",
			Help:      "Reminder delivery outcomes.",
		},
		[]string{"outcome"},
	)
)

// Register registers Prometheus metrics. Safe to call multiple times.
func Register() {
	once.Do(func() {
		prometheus.MustRegister(citasCreated, bookingFailures, reminders)
	})
}

func IncCitaCreated() {
	citasCreated.Inc()
}

func IncBookingFailure(code string) {
	bookingFailures.WithLabelValues(code).Inc()
}

func IncReminder(outcome string) {
	reminders.WithLabelValues(outcome).Inc()
}
