package domain

import (
	"errors"
	"fmt"
)

// ErrUnknownOption se devuelve cuando un id no existe en su catálogo o tabla.
var ErrUnknownOption = errors.New("unknown option")

// UnknownOptionError indica qué dimensión e id fallaron. Envuelve ErrUnknownOption.
type UnknownOptionError struct {
	Dimension   Dimension
	ID          string
	Suggestions []string
}

func (e *UnknownOptionError) Error() string {
	return fmt.Sprintf("%s %s %q", ErrUnknownOption.Error(), e.Dimension, e.ID)
}

func (e *UnknownOptionError) Unwrap() error {
	return ErrUnknownOption
}
