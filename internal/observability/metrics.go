package observability

import "github.com/prometheus/client_golang/prometheus"

// Rejection reasons used as the reason label.
const (
	ReasonInvalidCode = "invalid_code"
	ReasonArity       = "arity"
	ReasonValidation  = "validation"
	ReasonDecode      = "decode"
	ReasonNonFinite   = "non_finite"
)

var (
	workoutsComputed = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "fitness_tracker",
		Name:      "workouts_computed_total",
		Help:      "Number of workout summaries computed, by workout type code.",
	}, []string{"workout_type"})
	workoutsRejected = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "fitness_tracker",
		Name:      "workouts_rejected_total",
		Help:      "Number of workout packages rejected before computing, by reason.",
	}, []string{"reason"})
)

func init() {
	prometheus.MustRegister(workoutsComputed, workoutsRejected)
}

// RecordComputed increments the computed counter for code.
func RecordComputed(code string) {
	workoutsComputed.WithLabelValues(code).Inc()
}

// RecordRejected increments the rejected counter for reason.
func RecordRejected(reason string) {
	workoutsRejected.WithLabelValues(reason).Inc()
}
