package settings

import "fmt"

// MalformedArgumentError reports a command-line token that does not match
// the --key or --key=value shape.
type MalformedArgumentError struct {
	Token string
}

func (e *MalformedArgumentError) Error() string {
	return fmt.Sprintf("can't parse this argument: %q", e.Token)
}

// MalformedNumberError reports a value that was expected to be a decimal
// integer but isn't. Key names the offending option, or "port-file" when the
// contents of a port file failed to parse.
type MalformedNumberError struct {
	Key   string
	Value string
	Err   error
}

func (e *MalformedNumberError) Error() string {
	return fmt.Sprintf("%s: not a number: %q", e.Key, e.Value)
}

func (e *MalformedNumberError) Unwrap() error { return e.Err }

// MissingOptionError reports a required option that was not given.
type MissingOptionError struct {
	Option string
}

func (e *MissingOptionError) Error() string {
	return fmt.Sprintf("--%s must be specified", e.Option)
}

// BindError reports that the OS refused a listening-socket bind.
type BindError struct {
	Addr string
	Err  error
}

func (e *BindError) Error() string {
	return fmt.Sprintf("bind %s: %v", e.Addr, e.Err)
}

func (e *BindError) Unwrap() error { return e.Err }
