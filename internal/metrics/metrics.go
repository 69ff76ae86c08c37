package metrics

import "github.com/prometheus/client_golang/prometheus"

// View surface labels.
const (
	ViewAlerts   = "alerts"
	ViewTimeline = "timeline"
	ViewProfile  = "profile"
)

var (
	viewRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "insiderwatch",
			Name:      "view_requests_total",
			Help:      "View builds served, partitioned by presentation surface.",
		},
		[]string{"view"},
	)

	exportsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "insiderwatch",
			Name:      "exports_total",
			Help:      "CSV exports produced, partitioned by presentation surface.",
		},
		[]string{"view"},
	)

	classificationErrorsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "insiderwatch",
			Name:      "classification_errors_total",
			Help:      "Records skipped because severity classification failed.",
		},
	)

	datasetRecords = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "insiderwatch",
			Name:      "dataset_records",
			Help:      "Records held by the in-memory store for this session.",
		},
	)
)

// Register attaches the insiderwatch collectors to the supplied registerer.
func Register(reg prometheus.Registerer) error {
	collectors := []prometheus.Collector{
		viewRequestsTotal,
		exportsTotal,
		classificationErrorsTotal,
		datasetRecords,
	}
	for _, collector := range collectors {
		if err := reg.Register(collector); err != nil {
			if _, ok := err.(prometheus.AlreadyRegisteredError); ok {
				continue
			}
			return err
		}
	}
	return nil
}

// ObserveView counts one served view build.
func ObserveView(view string) {
	viewRequestsTotal.WithLabelValues(view).Inc()
}

// ObserveExport counts one produced CSV document.
func ObserveExport(view string) {
	exportsTotal.WithLabelValues(view).Inc()
}

// ObserveClassificationError counts one skipped record.
func ObserveClassificationError() {
	classificationErrorsTotal.Inc()
}

// SetDatasetRecords records the loaded dataset size.
func SetDatasetRecords(n int) {
	datasetRecords.Set(float64(n))
}
