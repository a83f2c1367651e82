package chart

import "fmt"

// ConfigurationError marks an invalid calculation configuration: the
// computation fails fast rather than producing houses or scores from a
// bad setup.
type ConfigurationError struct {
	Field  string
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("configuration error: %s: %s", e.Field, e.Reason)
}
