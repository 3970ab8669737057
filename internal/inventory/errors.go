package inventory

import (
	"errors"
	"fmt"
)

// ErrDuplicateName is matched by every *DuplicateNameError.
var ErrDuplicateName = errors.New("duplicate name")

// Kind names the container a DuplicateNameError refers to.
type Kind string

const (
	KindTab  Kind = "tab"
	KindWell Kind = "well"
)

// DuplicateNameError reports that an add or rename collided with an existing
// tab or well name. The state is left unchanged.
type DuplicateNameError struct {
	Kind Kind
	Name string
}

func (e *DuplicateNameError) Error() string {
	return fmt.Sprintf("there is already a %s named %q", e.Kind, e.Name)
}

func (e *DuplicateNameError) Is(target error) bool {
	return target == ErrDuplicateName
}
