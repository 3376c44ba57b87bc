package metrics

import "github.com/prometheus/client_golang/prometheus"

// Metrics exposes counters/histograms for the reservation flow. A nil *Metrics is a no-op.
type Metrics struct {
	submissionsTotal *prometheus.CounterVec
	patientsTotal    *prometheus.CounterVec
	orphanPatients   prometheus.Counter
	submitLatency    prometheus.Histogram
	outboxPublished  prometheus.Counter
	outboxFailures   prometheus.Counter
}

func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		submissionsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "clinicbook",
			Subsystem: "booking",
			Name:      "submissions_total",
			Help:      "Reservation form submissions by result",
		}, []string{"result"}),
		patientsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "clinicbook",
			Subsystem: "booking",
			Name:      "patient_resolutions_total",
			Help:      "Patient resolutions by phone, by outcome",
		}, []string{"outcome"}),
		orphanPatients: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "clinicbook",
			Subsystem: "booking",
			Name:      "orphan_patients_total",
			Help:      "New patients left without a reservation because the reservation insert failed",
		}),
		submitLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "clinicbook",
			Subsystem: "booking",
			Name:      "submit_duration_seconds",
			Help:      "Latency of resolve+create submissions",
			Buckets:   prometheus.DefBuckets,
		}),
		outboxPublished: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "clinicbook",
			Subsystem: "outbox",
			Name:      "published_total",
			Help:      "Outbox events written to Kafka",
		}),
		outboxFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "clinicbook",
			Subsystem: "outbox",
			Name:      "publish_failures_total",
			Help:      "Failed outbox publish batches",
		}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.submissionsTotal, m.patientsTotal, m.orphanPatients, m.submitLatency, m.outboxPublished, m.outboxFailures)
	return m
}

func (m *Metrics) ObserveSubmission(result string, seconds float64) {
	if m == nil {
		return
	}
	m.submissionsTotal.WithLabelValues(result).Inc()
	m.submitLatency.Observe(seconds)
}

func (m *Metrics) ObservePatient(outcome string) {
	if m == nil {
		return
	}
	m.patientsTotal.WithLabelValues(outcome).Inc()
}

func (m *Metrics) ObserveOrphanPatient() {
	if m == nil {
		return
	}
	m.orphanPatients.Inc()
}

func (m *Metrics) ObserveOutboxPublished(n int) {
	if m == nil || n <= 0 {
		return
	}
	m.outboxPublished.Add(float64(n))
}

func (m *Metrics) ObserveOutboxFailure() {
	if m == nil {
		return
	}
	m.outboxFailures.Inc()
}
