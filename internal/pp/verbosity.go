package pp

// Verbosity is the type of message levels.
type Verbosity int

// Pre-defined verbosity levels.
const (
	Info             Verbosity = iota // useful additional info
	Notice                            // important messages
	Warning                           // non-fatal errors where the program should continue
	Error                             // fatal errors where the program should stop
	Verbose          Verbosity = Info
	Quiet            Verbosity = Notice
	DefaultVerbosity Verbosity = Verbose
)
