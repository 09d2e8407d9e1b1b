package metricskey

import "github.com/effective-security/metrics"

// Perf
var (
	// PerfTokenDecode is perf metric
	PerfTokenDecode = metrics.Describe{
		Type:         metrics.TypeSample,
		Name:         "perf_jwt_decode",
		Help:         "perf_jwt_decode provides the sample metrics of JWT decoding",
		RequiredTags: []string{"segments"},
	}
)

// Stats
var (
	// StatsSegmentDegraded is counter metric
	StatsSegmentDegraded = metrics.Describe{
		Type:         metrics.TypeCounter,
		Name:         "jwt_segment_degraded",
		Help:         "jwt_segment_degraded provides the count of JWT segments that could not be decoded",
		RequiredTags: []string{"segment", "reason"},
	}
)

// Metrics returns slice of metrics from this repo
var Metrics = []*metrics.Describe{
	&PerfTokenDecode,
	&StatsSegmentDegraded,
}
