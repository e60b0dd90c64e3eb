package main

import (
	"fmt"

	"github.com/vovakirdan/tui-runner/internal/registry"
)

type unknownGameError struct {
	id string
}

func (e *unknownGameError) Error() string {
	return fmt.Sprintf("unknown game %q, run 'runner list' to see available games", e.id)
}

func (e *unknownGameError) Unwrap() error { return registry.ErrUnknownGame }
