package ftpcmd

import (
	"maps"
	"slices"
)

// argShape describes what a verb expects after it on the line.
type argShape int

const (
	shapeUnrecognized argShape = iota
	shapeNone
	shapeOptionalText
	shapeMandatoryText
	shapePortAddress
	shapeTransferCode
)

func (s argShape) String() string {
	switch s {
	case shapeNone:
		return "none"
	case shapeOptionalText:
		return "optional-text"
	case shapeMandatoryText:
		return "mandatory-text"
	case shapePortAddress:
		return "port-address"
	case shapeTransferCode:
		return "transfer-code"
	default:
		return "unrecognized"
	}
}

// verbSpec is one row of the verb table.
// build constructs the command for shapeNone and shapeMandatoryText verbs;
// the remaining shapes are decoded by the Decoder itself.
// aliasOf names the canonical verb of an RFC 775 alias.
type verbSpec struct {
	shape   argShape
	build   func(arg string) Command
	aliasOf string
}

func (v verbSpec) legacy() bool { return v.aliasOf != "" }

func noArg(c Command) func(string) Command {
	return func(string) Command { return c }
}

// verbTable maps upper-case verbs to their argument shape.
var verbTable = map[string]verbSpec{
	"AUTH": {shape: shapeNone, build: noArg(Auth{})},
	"PASV": {shape: shapeNone, build: noArg(Pasv{})},
	"PWD":  {shape: shapeNone, build: noArg(Pwd{})},
	"QUIT": {shape: shapeNone, build: noArg(Quit{})},
	"SYST": {shape: shapeNone, build: noArg(Syst{})},
	"CDUP": {shape: shapeNone, build: noArg(CdUp{})},
	"NOOP": {shape: shapeNone, build: noArg(NoOp{})},

	"USER": {shape: shapeMandatoryText, build: func(s string) Command { return User{Username: s} }},
	"CWD":  {shape: shapeMandatoryText, build: func(s string) Command { return Cwd{Path: s} }},
	"MKD":  {shape: shapeMandatoryText, build: func(s string) Command { return Mkd{Path: s} }},
	"RMD":  {shape: shapeMandatoryText, build: func(s string) Command { return Rmd{Path: s} }},
	"RETR": {shape: shapeMandatoryText, build: func(s string) Command { return Retr{Path: s} }},
	"STOR": {shape: shapeMandatoryText, build: func(s string) Command { return Stor{Path: s} }},

	"LIST": {shape: shapeOptionalText},
	"PORT": {shape: shapePortAddress},
	"TYPE": {shape: shapeTransferCode},

	// RFC 775 aliases
	"XCWD": {shape: shapeMandatoryText, build: func(s string) Command { return Cwd{Path: s} }, aliasOf: "CWD"},
	"XCUP": {shape: shapeNone, build: noArg(CdUp{}), aliasOf: "CDUP"},
	"XPWD": {shape: shapeNone, build: noArg(Pwd{}), aliasOf: "PWD"},
	"XMKD": {shape: shapeMandatoryText, build: func(s string) Command { return Mkd{Path: s} }, aliasOf: "MKD"},
	"XRMD": {shape: shapeMandatoryText, build: func(s string) Command { return Rmd{Path: s} }, aliasOf: "RMD"},
}

// Predefined verb groups for use with WithDisableCommands.
//
// Example:
//
//	// Refuse active mode and uploads
//	dec, _ := ftpcmd.NewDecoder(
//	    ftpcmd.WithDisableCommands(ftpcmd.ActiveModeCommands...),
//	    ftpcmd.WithDisableCommands(ftpcmd.WriteCommands...),
//	)
var (
	// LegacyCommands contains the X* variants from RFC 775.
	LegacyCommands = []string{"XCWD", "XCUP", "XPWD", "XMKD", "XRMD"}

	// ActiveModeCommands contains commands that make the server dial out.
	// Disable these for transports that only support passive mode.
	ActiveModeCommands = []string{"PORT"}

	// WriteCommands contains every decoded command that modifies the filesystem.
	WriteCommands = []string{"STOR", "MKD", "XMKD", "RMD", "XRMD"}

	// DataCommands contains commands that need a data connection.
	DataCommands = []string{"LIST", "RETR", "STOR"}
)

// SupportedVerbs returns every verb the decoder recognizes, sorted.
// Useful for building HELP and FEAT replies.
func SupportedVerbs() []string {
	return slices.Sorted(maps.Keys(verbTable))
}

// lookupVerb finds the table row for verb, which must already be upper case.
func lookupVerb(verb string) verbSpec {
	spec, ok := verbTable[verb]
	if !ok {
		return verbSpec{shape: shapeUnrecognized}
	}
	return spec
}

// canonicalVerb maps an alias such as XCWD to the verb it stands for.
// Any other verb is returned unchanged.
func canonicalVerb(verb string) string {
	if spec, ok := verbTable[verb]; ok && spec.legacy() {
		return spec.aliasOf
	}
	return verb
}

// upperASCII upper-cases ASCII letters and leaves every other byte alone.
func upperASCII(s string) string {
	for i := 0; i < len(s); i++ {
		if c := s[i]; c >= 'a' && c <= 'z' {
			b := []byte(s)
			for j := i; j < len(b); j++ {
				if b[j] >= 'a' && b[j] <= 'z' {
					b[j] -= 'a' - 'A'
				}
			}
			return string(b)
		}
	}
	return s
}
