package ftpcmd

// UnknownVerb is the name reported by Unknown commands. It is an internal
// label, not an FTP verb, and must never be written to the control connection.
const UnknownVerb = "UNKN"

// Command is a decoded control line. The set of implementations is closed;
// callers dispatch with a type switch:
//
//	switch c := cmd.(type) {
//	case ftpcmd.Cwd:
//	    changeDir(c.Path)
//	case ftpcmd.Port:
//	    dialActive(c.Endpoint)
//	case ftpcmd.Unknown:
//	    reply(502, "Command not implemented.")
//	}
//
// Every Command is a comparable value that has already been validated.
type Command interface {
	// Name returns the canonical verb (e.g., "CWD"), or UnknownVerb.
	Name() string

	command()
}

// Commands without a payload.
type (
	Auth struct{}
	Pasv struct{}
	Pwd  struct{}
	Quit struct{}
	Syst struct{}
	CdUp struct{}
	NoOp struct{}
)

// User is USER <name>.
type User struct {
	Username string
}

// Cwd is CWD <path> (or XCWD).
type Cwd struct {
	Path string
}

// Mkd is MKD <path> (or XMKD).
type Mkd struct {
	Path string
}

// Rmd is RMD <path> (or XRMD).
type Rmd struct {
	Path string
}

// Retr is RETR <path>.
type Retr struct {
	Path string
}

// Stor is STOR <path>.
type Stor struct {
	Path string
}

// List is LIST [<path>]. HasPath is false when no usable path was sent.
type List struct {
	Path    string
	HasPath bool
}

// PathOrDefault returns the listed path, or def when none was given.
func (l List) PathOrDefault(def string) string {
	if l.HasPath {
		return l.Path
	}
	return def
}

// Port is PORT h1,h2,h3,h4,p1,p2.
type Port struct {
	Endpoint Endpoint
}

// Type is TYPE <code>.
type Type struct {
	TransferType TransferType
}

// Unknown is any verb the decoder does not recognize or has been told to
// refuse. Verb holds the token exactly as the client sent it.
type Unknown struct {
	Verb string
}

func (Auth) Name() string { return "AUTH" }
func (Pasv) Name() string { return "PASV" }
func (Pwd) Name() string { return "PWD" }
func (Quit) Name() string { return "QUIT" }
func (Syst) Name() string { return "SYST" }
func (CdUp) Name() string { return "CDUP" }
func (NoOp) Name() string { return "NOOP" }
func (User) Name() string { return "USER" }
func (Cwd) Name() string { return "CWD" }
func (Mkd) Name() string { return "MKD" }
func (Rmd) Name() string { return "RMD" }
func (Retr) Name() string { return "RETR" }
func (Stor) Name() string { return "STOR" }
func (List) Name() string { return "LIST" }
func (Port) Name() string { return "PORT" }
func (Type) Name() string { return "TYPE" }
func (Unknown) Name() string { return UnknownVerb }

func (Auth) command() {}
func (Pasv) command() {}
func (Pwd) command() {}
func (Quit) command() {}
func (Syst) command() {}
func (CdUp) command() {}
func (NoOp) command() {}
func (User) command() {}
func (Cwd) command() {}
func (Mkd) command() {}
func (Rmd) command() {}
func (Retr) command() {}
func (Stor) command() {}
func (List) command() {}
func (Port) command() {}
func (Type) command() {}
func (Unknown) command() {}
