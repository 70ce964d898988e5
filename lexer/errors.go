package lexer

import "fmt"

// Error is returned when a lexicon table is inconsistent.
type Error struct {
	Message string
	Unit    string
}

// Errorf creates a new Error for the given unit.
func Errorf(unit string, format string, args ...interface{}) *Error {
	return &Error{
		Message: fmt.Sprintf(format, args...),
		Unit:    unit,
	}
}

func (e *Error) Error() string {
	if e.Unit == "" {
		return e.Message
	}
	return fmt.Sprintf("%q: %s", e.Unit, e.Message)
}
