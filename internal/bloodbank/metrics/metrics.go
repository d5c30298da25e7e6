package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the bloodbank module. Tracks
// registration and donation volumes plus the duration of the donation
// critical path.
type Metrics struct {
	DonorsRegistered       prometheus.Counter
	ReceiversRegistered    prometheus.Counter
	RequestsPosted         prometheus.Counter
	RequestsFulfilled      prometheus.Counter
	DonationsRecorded      prometheus.Counter
	DonationsRejected      *prometheus.CounterVec
	RecordDonationDuration prometheus.Histogram
}

// New creates a Metrics instance with all bloodbank metrics registered on
// the default registry.
func New() *Metrics {
	return &Metrics{
		DonorsRegistered: promauto.NewCounter(prometheus.CounterOpts{
			Name: "lifeline_donors_registered_total",
			Help: "Total number of donors registered",
		}),
		ReceiversRegistered: promauto.NewCounter(prometheus.CounterOpts{
			Name: "lifeline_receivers_registered_total",
			Help: "Total number of receivers registered",
		}),
		RequestsPosted: promauto.NewCounter(prometheus.CounterOpts{
			Name: "lifeline_requests_posted_total",
			Help: "Total number of blood requests posted",
		}),
		RequestsFulfilled: promauto.NewCounter(prometheus.CounterOpts{
			Name: "lifeline_requests_fulfilled_total",
			Help: "Total number of blood requests driven to FULFILLED",
		}),
		DonationsRecorded: promauto.NewCounter(prometheus.CounterOpts{
			Name: "lifeline_donations_recorded_total",
			Help: "Total number of donations recorded",
		}),
		DonationsRejected: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "lifeline_donations_rejected_total",
			Help: "Total number of donation attempts rejected, by reason",
		}, []string{"reason"}),
		RecordDonationDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "lifeline_record_donation_duration_seconds",
			Help:    "Duration of RecordDonation operations (the donation critical path)",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}),
	}
}

// IncrementDonorsRegistered records a successful donor registration.
func (m *Metrics) IncrementDonorsRegistered() {
	m.DonorsRegistered.Inc()
}

// IncrementReceiversRegistered records a successful receiver registration.
func (m *Metrics) IncrementReceiversRegistered() {
	m.ReceiversRegistered.Inc()
}

// IncrementRequestsPosted records a successful request creation.
func (m *Metrics) IncrementRequestsPosted() {
	m.RequestsPosted.Inc()
}

// IncrementRequestsFulfilled records a request reaching FULFILLED.
func (m *Metrics) IncrementRequestsFulfilled() {
	m.RequestsFulfilled.Inc()
}

// IncrementDonationsRecorded records a successful donation.
func (m *Metrics) IncrementDonationsRecorded() {
	m.DonationsRecorded.Inc()
}

// IncrementDonationsRejected records a rejected donation attempt with its
// failure reason.
func (m *Metrics) IncrementDonationsRejected(reason string) {
	m.DonationsRejected.WithLabelValues(reason).Inc()
}

// ObserveRecordDonation records the duration of a RecordDonation operation.
// Call with time.Now() captured at the start of the operation.
func (m *Metrics) ObserveRecordDonation(start time.Time) {
	m.RecordDonationDuration.Observe(time.Since(start).Seconds())
}
