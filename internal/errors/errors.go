// Package errors provides standardized error handling for the Notable
// application. It defines common error types, constants, and helper
// functions for consistent error creation, wrapping, and handling
// across the application.
package errors

import (
	"errors"
	"fmt"
)

// Standard errors package errors that we re-export for convenience
var (
	// Unwrap unwraps an error to access the underlying error
	Unwrap = errors.Unwrap
	// Is reports whether any error in err's chain matches target
	Is = errors.Is
	// As finds the first error in err's chain that matches target
	As = errors.As
)

// ErrorKind represents the kind of error
type ErrorKind int

// Error kinds
const (
	Unknown ErrorKind = iota
	// File error kinds
	NotFound
	AlreadyExists
	InvalidPath
	UnsupportedFileType
	// Selection error kinds
	NoSelection
	// Template error kinds
	UnknownTemplate
	// Config error kinds
	InvalidConfig
	ConfigNotFound
	// Subprocess error kinds
	SubprocessFailed
)

// Common error constants for frequently occurring errors
var (
	ErrNotFound      = NewFileError("no matching files found", "", NotFound, nil)
	ErrNoSelection   = &ApplicationError{msg: "no selection made", kind: NoSelection}
	ErrInvalidConfig = NewConfigError("invalid configuration", "", InvalidConfig, nil)
)

// ApplicationError is the base error type for all application errors
type ApplicationError struct {
	msg  string
	err  error
	kind ErrorKind
}

// Error returns the error message
func (e *ApplicationError) Error() string {
	if e.err != nil {
		return fmt.Sprintf("%s: %v", e.msg, e.err)
	}
	return e.msg
}

// Unwrap returns the wrapped error
func (e *ApplicationError) Unwrap() error {
	return e.err
}

// Kind returns the kind of error
func (e *ApplicationError) Kind() ErrorKind {
	return e.kind
}

// FileError represents errors related to file operations
type FileError struct {
	ApplicationError
	path string
}

// NewFileError creates a new file error
func NewFileError(msg string, path string, kind ErrorKind, err error) *FileError {
	return &FileError{
		ApplicationError: ApplicationError{
			msg:  msg,
			err:  err,
			kind: kind,
		},
		path: path,
	}
}

// Error returns the file error message
func (e *FileError) Error() string {
	if e.path != "" {
		if e.err != nil {
			return fmt.Sprintf("%s: %s: %v", e.msg, e.path, e.err)
		}
		return fmt.Sprintf("%s: %s", e.msg, e.path)
	}
	return e.ApplicationError.Error()
}

// Path returns the file path associated with the error
func (e *FileError) Path() string {
	return e.path
}

// ConfigError represents errors related to configuration
type ConfigError struct {
	ApplicationError
	param string
}

// NewConfigError creates a new configuration error
func NewConfigError(msg string, param string, kind ErrorKind, err error) *ConfigError {
	return &ConfigError{
		ApplicationError: ApplicationError{
			msg:  msg,
			err:  err,
			kind: kind,
		},
		param: param,
	}
}

// Error returns the config error message
func (e *ConfigError) Error() string {
	if e.param != "" {
		if e.err != nil {
			return fmt.Sprintf("%s: %s: %v", e.msg, e.param, e.err)
		}
		return fmt.Sprintf("%s: %s", e.msg, e.param)
	}
	return e.ApplicationError.Error()
}

// Param returns the configuration parameter associated with the error
func (e *ConfigError) Param() string {
	return e.param
}

// TemplateError represents errors related to project templates
type TemplateError struct {
	ApplicationError
	template string
}

// NewTemplateError creates a new template error
func NewTemplateError(msg string, template string, kind ErrorKind, err error) *TemplateError {
	return &TemplateError{
		ApplicationError: ApplicationError{
			msg:  msg,
			err:  err,
			kind: kind,
		},
		template: template,
	}
}

// Error returns the template error message
func (e *TemplateError) Error() string {
	if e.template != "" {
		if e.err != nil {
			return fmt.Sprintf("%s: %s: %v", e.msg, e.template, e.err)
		}
		return fmt.Sprintf("%s: %s", e.msg, e.template)
	}
	return e.ApplicationError.Error()
}

// Template returns the template name associated with the error
func (e *TemplateError) Template() string {
	return e.template
}

// CommandError represents errors related to external subprocesses
type CommandError struct {
	ApplicationError
	command string
}

// NewCommandError creates a new subprocess error
func NewCommandError(msg string, command string, err error) *CommandError {
	return &CommandError{
		ApplicationError: ApplicationError{
			msg:  msg,
			err:  err,
			kind: SubprocessFailed,
		},
		command: command,
	}
}

// Error returns the subprocess error message
func (e *CommandError) Error() string {
	if e.command != "" {
		if e.err != nil {
			return fmt.Sprintf("%s: %s: %v", e.msg, e.command, e.err)
		}
		return fmt.Sprintf("%s: %s", e.msg, e.command)
	}
	return e.ApplicationError.Error()
}

// Command returns the external command associated with the error
func (e *CommandError) Command() string {
	return e.command
}

// New creates a new error with a message
func New(msg string) error {
	return &ApplicationError{
		msg:  msg,
		kind: Unknown,
	}
}

// Newf creates a new error with a formatted message
func Newf(format string, args ...interface{}) error {
	return &ApplicationError{
		msg:  fmt.Sprintf(format, args...),
		kind: Unknown,
	}
}

// Wrap wraps an existing error with additional context
func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return &ApplicationError{
		msg:  msg,
		err:  err,
		kind: Unknown,
	}
}

// Wrapf wraps an existing error with additional formatted context
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return &ApplicationError{
		msg:  fmt.Sprintf(format, args...),
		err:  err,
		kind: Unknown,
	}
}

// kindOf extracts the ErrorKind from any application error in the chain
func kindOf(err error) ErrorKind {
	type kinder interface {
		Kind() ErrorKind
	}
	var k kinder
	if errors.As(err, &k) {
		return k.Kind()
	}
	return Unknown
}

// IsNotFound checks if the error reports that no matching files exist
func IsNotFound(err error) bool {
	return kindOf(err) == NotFound
}

// IsNoSelection checks if the error reports a cancelled interactive pick
func IsNoSelection(err error) bool {
	return kindOf(err) == NoSelection
}

// IsAlreadyExists checks if the error reports a path collision
func IsAlreadyExists(err error) bool {
	return kindOf(err) == AlreadyExists
}

// IsUnknownTemplate checks if the error reports a missing template name
func IsUnknownTemplate(err error) bool {
	return kindOf(err) == UnknownTemplate
}

// IsUnsupportedFileType checks if the error reports an extension with no
// configured viewer
func IsUnsupportedFileType(err error) bool {
	return kindOf(err) == UnsupportedFileType
}

// IsSubprocessFailed checks if the error reports an external process
// that failed to launch or exited with a non-zero status
func IsSubprocessFailed(err error) bool {
	return kindOf(err) == SubprocessFailed
}

// IsInvalidConfig checks if the error is an invalid configuration error
func IsInvalidConfig(err error) bool {
	var configErr *ConfigError
	if errors.As(err, &configErr) {
		return configErr.Kind() == InvalidConfig
	}
	return false
}
