package provisioning

import "github.com/prometheus/client_golang/prometheus"

var (
	launchesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "nodectl",
			Subsystem: "provisioner",
			Name:      "launches_total",
			Help:      "Total number of node start requests by outcome",
		},
		[]string{"outcome"},
	)

	terminationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "nodectl",
			Subsystem: "provisioner",
			Name:      "terminations_total",
			Help:      "Total number of node terminations by result",
		},
		[]string{"result"},
	)

	launchDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "nodectl",
			Subsystem: "provisioner",
			Name:      "launch_duration_seconds",
			Help:      "Time from start request to node ready",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 12), // 1s to ~68min
		},
	)
)

func init() {
	prometheus.MustRegister(launchesTotal, terminationsTotal, launchDuration)
}
