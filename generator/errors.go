package generator

import (
	"errors"
	"fmt"
)

var (
	// ErrGenerationInProgress is returned when a run is started while another is active.
	ErrGenerationInProgress = errors.New("generation in progress")
	ErrMissingCurve         = errors.New("missing curve")
	ErrMissingBossType      = errors.New("missing boss type table")
	ErrUnknownVelocityCurve = errors.New("unknown velocity curve")
	ErrUnknownShape         = errors.New("unknown shape")
	ErrNotStarted           = errors.New("no generation in progress")
)

// ConfigError reports content tables that cannot drive a run.
type ConfigError struct {
	Stage  State
	Detail string
	Err    error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("generator: config: %s: %s: %v", e.Stage, e.Detail, e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}
