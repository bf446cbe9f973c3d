package server

import "github.com/uber-go/tally/v4"

// Metrics holds the request metrics of the estimation endpoint.
type Metrics struct {
	Requests        tally.Counter
	RequestsInvalid tally.Counter
	RequestsFail    tally.Counter

	Latency        tally.Timer
	VMsUnallocated tally.Gauge
}

// NewMetrics returns a new instance of server.Metrics.
func NewMetrics(scope tally.Scope) *Metrics {
	successScope := scope.Tagged(map[string]string{"result": "success"})
	invalidScope := scope.Tagged(map[string]string{"result": "invalid"})
	failScope := scope.Tagged(map[string]string{"result": "fail"})
	return &Metrics{
		Requests:        successScope.Counter("requests"),
		RequestsInvalid: invalidScope.Counter("requests"),
		RequestsFail:    failScope.Counter("requests"),

		Latency:        scope.Timer("latency"),
		VMsUnallocated: scope.Gauge("vms_unallocated"),
	}
}
