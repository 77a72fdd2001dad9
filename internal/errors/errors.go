package errors

import (
	stdErrors "errors"
	"fmt"
)

type Kind string

const (
	InvalidConfig       Kind = "invalid_config"
	ConfigParse         Kind = "config_parse"
	NotFound            Kind = "not_found"
	MetadataUnavailable Kind = "metadata_unavailable"
	MoveFailed          Kind = "move_failed"
	IOFailure           Kind = "io_failure"
	Internal            Kind = "internal"
)

// ErrMetadataUnavailable marks a timestamp field the filesystem does not expose.
var ErrMetadataUnavailable = stdErrors.New("metadata unavailable")

type AppError struct {
	Kind   Kind
	Op     string
	Path   string
	Target string
	Err    error
}

func (e *AppError) Error() string {
	switch {
	case e.Path != "" && e.Target != "":
		return fmt.Sprintf("%s: %s -> %s: %v", e.Op, e.Path, e.Target, e.Err)
	case e.Path != "":
		return fmt.Sprintf("%s: %s: %v", e.Op, e.Path, e.Err)
	default:
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func Wrap(kind Kind, op, path string, err error) error {
	if err == nil {
		return nil
	}
	return &AppError{
		Kind: kind,
		Op:   op,
		Path: path,
		Err:  err,
	}
}

// WrapMove records a failed move of source to target.
func WrapMove(source, target string, err error) error {
	if err == nil {
		return nil
	}
	return &AppError{
		Kind:   MoveFailed,
		Op:     "move",
		Path:   source,
		Target: target,
		Err:    err,
	}
}

// KindOf returns the kind of the outermost AppError in err's chain, or
// Internal when there is none.
func KindOf(err error) Kind {
	var appErr *AppError
	if stdErrors.As(err, &appErr) {
		return appErr.Kind
	}
	return Internal
}

func UserMessage(err error) string {
	var appErr *AppError
	if !stdErrors.As(err, &appErr) {
		return err.Error()
	}
	switch appErr.Kind {
	case InvalidConfig:
		return fmt.Sprintf("invalid configuration: %v", appErr.Err)
	case ConfigParse:
		return fmt.Sprintf("failed to parse config file %s: %v", appErr.Path, appErr.Err)
	case NotFound:
		return fmt.Sprintf("no such file or directory %q. Try sortery --help for more info.", appErr.Path)
	case MetadataUnavailable:
		return fmt.Sprintf("%s time unavailable for %s.", appErr.Op, appErr.Path)
	case MoveFailed:
		return fmt.Sprintf("failed to move %s to %s.", appErr.Path, appErr.Target)
	case IOFailure:
		return fmt.Sprintf("I/O error: %s: %v", appErr.Path, appErr.Err)
	default:
		return fmt.Sprintf("unexpected error: %v", appErr.Err)
	}
}
