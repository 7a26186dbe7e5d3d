package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"pwstrength/internal/domain/entity"
)

const namespace = "pwstrength"

// Recorder exports strength check results as Prometheus metrics.
type Recorder struct {
	checks  *prometheus.CounterVec
	common  prometheus.Counter
	lookups *prometheus.HistogramVec
}

func NewRecorder(reg prometheus.Registerer) *Recorder {
	factory := promauto.With(reg)

	return &Recorder{
		checks: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "checks_total",
			Help:      "Password checks by mode and rating.",
		}, []string{"mode", "rating"}),
		common: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "common_passwords_total",
			Help:      "Checks that matched the common password dictionary.",
		}),
		lookups: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "dictionary_lookup_seconds",
			Help:      "Common password dictionary lookup latency.",
			Buckets:   []float64{.0001, .0005, .001, .005, .01, .05, .1, .5},
		}, []string{"result"}),
	}
}

func (r *Recorder) ObserveCheck(mode entity.CheckMode, rating entity.Rating, common bool) {
	r.checks.WithLabelValues(string(mode), rating.String()).Inc()

	if common {
		r.common.Inc()
	}
}

func (r *Recorder) ObserveLookup(d time.Duration, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}

	r.lookups.WithLabelValues(result).Observe(d.Seconds())
}
