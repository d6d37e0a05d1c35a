package ftpcmd

// MetricsCollector is an optional interface for counting decoded commands.
// Implementations can forward to Prometheus, StatsD, etc.
//
// RecordCommand is called once per Parse call, from the caller's goroutine,
// so implementations must be safe for concurrent use and should not block.
// verb is the canonical verb, UnknownVerb for unrecognized verbs, or "" when
// the line was empty. success is false when Parse returned an error.
type MetricsCollector interface {
	RecordCommand(verb string, success bool)
}
