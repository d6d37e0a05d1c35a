// Package ftpcmd decodes FTP control-connection command lines into typed commands.
//
// # Overview
//
// This package is the piece of an FTP server that sits between the line reader
// and the session state machine. It:
//   - Splits a line into a verb and an argument at the first whitespace only
//   - Looks the verb up case-insensitively in a static table
//   - Validates the argument for the verb's shape (text, PORT address, TYPE code)
//   - Returns one immutable Command value or one *DecodeError
//
// It performs no I/O and sends no replies. Deciding what to answer is left to
// the caller.
//
// # Basic Usage
//
//	cmd, err := ftpcmd.Parse("PORT 127,0,0,1,20,10")
//	if err != nil {
//	    var de *ftpcmd.DecodeError
//	    if errors.As(err, &de) {
//	        reply(de.ReplyCode(), "Syntax error in parameters or arguments.")
//	    }
//	    return
//	}
//
//	switch c := cmd.(type) {
//	case ftpcmd.Port:
//	    fmt.Println(c.Endpoint) // 127.0.0.1:5130
//	case ftpcmd.Unknown:
//	    reply(502, "Command not implemented.")
//	}
//
// # Policy
//
// A Decoder can be configured with functional options:
//
//	dec, err := ftpcmd.NewDecoder(
//	    ftpcmd.WithMaxReservedPort(1024),
//	    ftpcmd.WithDisableCommands(ftpcmd.WriteCommands...),
//	    ftpcmd.WithLegacyAliases(false),
//	)
//
// PORT targets at or below the reserved port limit are refused with
// ErrInvalidPort. The default limit of 1024 is a server-side choice, not an
// FTP requirement.
//
// Disabled verbs and verbs the decoder does not know decode to Unknown, never
// to an error.
//
// # Error Handling
//
// Every error is a *DecodeError wrapping one of the package sentinels:
//
//	if errors.Is(err, ftpcmd.ErrMissingArgument) {
//	    reply(501, "Missing argument.")
//	}
//
// # Concurrency
//
// Decoders are immutable once built and may be shared between goroutines.
// Decoding the same line twice always yields equal results.
package ftpcmd
