package metrics

import "github.com/prometheus/client_golang/prometheus"

// BookingMetrics expõe contadores do fluxo de agendamento.
type BookingMetrics struct {
	bookingsTotal     *prometheus.CounterVec
	availabilityTotal prometheus.Counter
}

func NewBookingMetrics(reg prometheus.Registerer) *BookingMetrics {
	m := &BookingMetrics{
		bookingsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "pradoagenda",
			Subsystem: "booking",
			Name:      "requests_total",
			Help:      "Total booking requests by source and outcome",
		}, []string{"source", "outcome"}),
		availabilityTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "pradoagenda",
			Subsystem: "booking",
			Name:      "availability_requests_total",
			Help:      "Total availability computations",
		}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.bookingsTotal, m.availabilityTotal)
	return m
}

func (m *BookingMetrics) ObserveBooking(source, outcome string) {
	if m == nil {
		return
	}
	m.bookingsTotal.WithLabelValues(source, outcome).Inc()
}

func (m *BookingMetrics) ObserveAvailability() {
	if m == nil {
		return
	}
	m.availabilityTotal.Inc()
}
