package cardbrand

import (
	"fmt"
	"strings"
)

// ConfigError is returned by Config.Validate when a setting is unusable.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("cardbrand: invalid config %s: %s", e.Field, e.Reason)
}

// SampleMismatch is a sample that did not classify as expected.
type SampleMismatch struct {
	Name   string
	Masked string
	Expect Brand
	Got    Brand
}

// SampleMismatchError is returned by CheckSamples when one or more samples
// classify differently than expected.
type SampleMismatchError struct {
	Mismatches []SampleMismatch
}

func (e *SampleMismatchError) Error() string {
	parts := make([]string, 0, len(e.Mismatches))
	for _, m := range e.Mismatches {
		parts = append(parts, fmt.Sprintf("%s (%s): expected %s, got %s", m.Name, m.Masked, m.Expect, m.Got))
	}
	return fmt.Sprintf("cardbrand: %d sample(s) mismatched: %s", len(e.Mismatches), strings.Join(parts, "; "))
}
