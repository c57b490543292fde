package core

// Level represents the severity level of a log entry
type Level int8

const (
	// DebugLevel for detailed debugging information
	DebugLevel Level = iota
	// VerboseLevel for verbose diagnostic messages
	VerboseLevel
	// InformationLevel for general informational messages (default)
	InformationLevel
	// WarningLevel for warning messages
	WarningLevel
	// ErrorLevel for error messages
	ErrorLevel
	// CriticalLevel for critical failures
	CriticalLevel
)

// String returns the string representation of the level
func (l Level) String() string {
	switch l {
	case DebugLevel:
		return "Debug"
	case VerboseLevel:
		return "Verbose"
	case InformationLevel:
		return "Information"
	case WarningLevel:
		return "Warning"
	case ErrorLevel:
		return "Error"
	case CriticalLevel:
		return "Critical"
	default:
		return "Unknown"
	}
}

// Label returns the fixed-width token used in rendered log lines.
// Every label is exactly 8 characters, padded with trailing spaces,
// so messages across levels stay column-aligned.
func (l Level) Label() string {
	switch l {
	case DebugLevel:
		return "debug   "
	case VerboseLevel:
		return "verbose "
	case InformationLevel:
		return "info    "
	case WarningLevel:
		return "warning "
	case ErrorLevel:
		return "error   "
	case CriticalLevel:
		return "critical"
	default:
		return "unknown "
	}
}
