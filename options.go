package ftpcmd

import "fmt"

// Option is a functional option for configuring a Decoder.
type Option func(*Decoder) error

// WithMaxReservedPort sets the highest port a PORT command is not allowed to
// name. PORT arguments decoding to a port at or below limit fail with
// ErrInvalidPort. The default is DefaultMaxReservedPort (1024).
//
// Port 0 can never be dialed, so it is rejected whatever the setting.
//
// Example allowing every non-zero port:
//
//	dec, _ := ftpcmd.NewDecoder(ftpcmd.WithMaxReservedPort(0))
func WithMaxReservedPort(limit uint16) Option {
	return func(d *Decoder) error {
		d.maxReservedPort = limit
		return nil
	}
}

// WithDisableCommands makes the decoder treat the named verbs as unknown.
// A disabled verb decodes to Unknown, so the session layer answers it the
// same way it answers any unimplemented command.
// Verb names are case-insensitive and must be ones the decoder recognizes.
//
// Example:
//
//	dec, _ := ftpcmd.NewDecoder(
//	    ftpcmd.WithDisableCommands(ftpcmd.ActiveModeCommands...),
//	)
func WithDisableCommands(verbs ...string) Option {
	return func(d *Decoder) error {
		for _, v := range verbs {
			name := upperASCII(v)
			if _, ok := verbTable[name]; !ok {
				return fmt.Errorf("cannot disable unknown command %q", v)
			}
			if d.disabled == nil {
				d.disabled = make(map[string]bool)
			}
			d.disabled[name] = true
		}
		return nil
	}
}

// WithLegacyAliases controls whether the RFC 775 X* verbs (XCWD, XCUP, XPWD,
// XMKD, XRMD) are decoded. They are enabled by default.
func WithLegacyAliases(enable bool) Option {
	return func(d *Decoder) error {
		d.legacyAliases = enable
		return nil
	}
}

// WithMetricsCollector sets a collector that is told about every decoded line.
func WithMetricsCollector(collector MetricsCollector) Option {
	return func(d *Decoder) error {
		d.metricsCollector = collector
		return nil
	}
}
