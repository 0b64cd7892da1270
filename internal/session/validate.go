package session

import (
	"fmt"
	"regexp"
)

const maxNameLen = 64

var namePattern = regexp.MustCompile(`^[a-z0-9_-]+$`)

// InvalidNameError reports a session name that cannot be used as a
// directory name.
type InvalidNameError struct {
	Name   string
	Reason string
}

func (e *InvalidNameError) Error() string {
	return fmt.Sprintf("invalid session name %q: %s", e.Name, e.Reason)
}

// ValidateName checks that name matches ^[a-z0-9_-]{1,64}$.
func ValidateName(name string) error {
	switch {
	case name == "":
		return &InvalidNameError{Name: name, Reason: "empty"}
	case len(name) > maxNameLen:
		return &InvalidNameError{Name: name, Reason: fmt.Sprintf("longer than %d characters", maxNameLen)}
	case !namePattern.MatchString(name):
		return &InvalidNameError{Name: name, Reason: "use only a-z, 0-9, '_' or '-'"}
	}
	return nil
}
