package ftpcmd

import (
	"errors"
	"unicode/utf8"
)

// Decoder turns control lines into Commands.
//
// A Decoder holds only policy set at construction time. It never changes
// afterwards, so one Decoder may be shared by any number of sessions.
type Decoder struct {
	maxReservedPort  uint16
	disabled         map[string]bool
	legacyAliases    bool
	metricsCollector MetricsCollector
}

// defaultDecoder backs the package-level Parse functions.
var defaultDecoder = &Decoder{
	maxReservedPort: DefaultMaxReservedPort,
	legacyAliases:   true,
}

// NewDecoder creates a Decoder with the given options applied over the defaults.
func NewDecoder(opts ...Option) (*Decoder, error) {
	d := &Decoder{
		maxReservedPort: DefaultMaxReservedPort,
		legacyAliases:   true,
	}

	for _, opt := range opts {
		if err := opt(d); err != nil {
			return nil, err
		}
	}

	return d, nil
}

// Parse decodes line with the default policy. See Decoder.Parse.
func Parse(line string) (Command, error) {
	return defaultDecoder.Parse(line)
}

// ParseBytes decodes line with the default policy. See Decoder.Parse.
func ParseBytes(line []byte) (Command, error) {
	return defaultDecoder.Parse(string(line))
}

// Parse decodes one control line whose terminator has already been removed.
//
// It returns exactly one of a Command or a *DecodeError. Unrecognized verbs
// are not errors: they produce Unknown so the caller can answer 502 and keep
// the connection open.
func (d *Decoder) Parse(line string) (Command, error) {
	cmd, err := d.parse(line)

	if d.metricsCollector != nil {
		var verb string
		var de *DecodeError
		switch {
		case cmd != nil:
			verb = cmd.Name()
		case errors.As(err, &de):
			verb = canonicalVerb(de.Verb)
		}
		d.metricsCollector.RecordCommand(verb, err == nil)
	}

	return cmd, err
}

// ParseBytes is Parse for a raw byte line.
func (d *Decoder) ParseBytes(line []byte) (Command, error) {
	return d.Parse(string(line))
}

func (d *Decoder) parse(line string) (Command, error) {
	verb, arg, hasArg, err := splitVerb(line)
	if err != nil {
		return nil, newDecodeError("", "", err)
	}

	name := upperASCII(verb)
	spec := d.lookup(name)

	switch spec.shape {
	case shapeNone:
		// Trailing junk after a no-argument verb is tolerated.
		return spec.build(""), nil

	case shapeMandatoryText:
		if !hasArg {
			return nil, newDecodeError(name, "", ErrMissingArgument)
		}
		if !utf8.ValidString(arg) {
			return nil, newDecodeError(name, arg, ErrInvalidEncoding)
		}
		return spec.build(arg), nil

	case shapeOptionalText:
		// LIST never fails: an undecodable path is the same as no path.
		if !hasArg || !utf8.ValidString(arg) {
			return List{}, nil
		}
		return List{Path: arg, HasPath: true}, nil

	case shapePortAddress:
		return d.decodePort(name, arg, hasArg)

	case shapeTransferCode:
		tt, err := parseTransferType(arg)
		if err != nil {
			return nil, newDecodeError(name, arg, err)
		}
		return Type{TransferType: tt}, nil

	default:
		return Unknown{Verb: verb}, nil
	}
}

// lookup applies the decoder's policy on top of the static verb table.
func (d *Decoder) lookup(name string) verbSpec {
	spec := lookupVerb(name)
	if spec.legacy() && !d.legacyAliases {
		return verbSpec{shape: shapeUnrecognized}
	}
	if d.disabled[name] {
		return verbSpec{shape: shapeUnrecognized}
	}
	return spec
}

func (d *Decoder) decodePort(name, arg string, hasArg bool) (Command, error) {
	if !hasArg {
		return nil, newDecodeError(name, "", ErrMissingArgument)
	}

	ep, err := ParseHostPort(arg)
	if err != nil {
		return nil, newDecodeError(name, arg, err)
	}

	if ep.Port == 0 || ep.Port <= d.maxReservedPort {
		return nil, newDecodeError(name, arg, ErrInvalidPort)
	}

	return Port{Endpoint: ep}, nil
}
