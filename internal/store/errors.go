package store

import "fmt"

// CorruptDataError reports a data file that exists but cannot be parsed.
// Loading degrades to an empty collection; the operator recovers the
// data from the .bak file.
type CorruptDataError struct {
	Path    string
	Message string
	Hint    string
}

func (e *CorruptDataError) Error() string {
	msg := fmt.Sprintf("corrupt data file: %s", e.Path)
	if e.Message != "" {
		msg += "\n" + e.Message
	}
	if e.Hint != "" {
		msg += "\n" + e.Hint
	}
	return msg
}
