// Package metrics implements ftpcmd.MetricsCollector on top of Prometheus.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Result label values.
const (
	ResultOK    = "ok"
	ResultError = "error"
)

// emptyVerb labels lines that had no verb at all.
const emptyVerb = "none"

// Collector counts decoded commands by verb and result.
type Collector struct {
	commands *prometheus.CounterVec
}

// New creates a Collector and registers its metrics with reg.
// A nil reg registers with prometheus.DefaultRegisterer.
func New(reg prometheus.Registerer) *Collector {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	return &Collector{
		commands: promauto.With(reg).NewCounterVec(
			prometheus.CounterOpts{
				Name: "ftpcmd_commands_decoded_total",
				Help: "Total number of FTP control lines decoded",
			},
			[]string{"verb", "result"},
		),
	}
}

// RecordCommand implements ftpcmd.MetricsCollector.
func (c *Collector) RecordCommand(verb string, success bool) {
	if verb == "" {
		verb = emptyVerb
	}
	result := ResultOK
	if !success {
		result = ResultError
	}
	c.commands.WithLabelValues(verb, result).Inc()
}

// Counter returns the counter for one verb and result, for reporting.
func (c *Collector) Counter(verb, result string) prometheus.Counter {
	if verb == "" {
		verb = emptyVerb
	}
	return c.commands.WithLabelValues(verb, result)
}
