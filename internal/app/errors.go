package app

import (
	"errors"
	"fmt"
	"strings"

	"github.com/seuusuario/servebox/internal/settings"
)

// FriendlyMessage maps a startup error to a one-line operator diagnostic.
// The underlying error stays available for the logs; this is what a person
// staring at a failed launch should read first.
func FriendlyMessage(err error) string {
	if err == nil {
		return ""
	}
	var (
		malformedArg *settings.MalformedArgumentError
		malformedNum *settings.MalformedNumberError
		missing      *settings.MissingOptionError
		bind         *settings.BindError
	)
	switch {
	case errors.As(err, &malformedArg):
		return fmt.Sprintf("unrecognized argument %q: expected --key or --key=value", malformedArg.Token)
	case errors.As(err, &missing):
		return fmt.Sprintf("--%s must be specified (a port number or a port file path)", missing.Option)
	case errors.As(err, &malformedNum):
		return fmt.Sprintf("%s must be a decimal number, got %q", malformedNum.Key, malformedNum.Value)
	case errors.As(err, &bind):
		s := strings.ToLower(bind.Err.Error())
		switch {
		case strings.Contains(s, "address already in use"):
			return fmt.Sprintf("port %s is already in use", bind.Addr)
		case strings.Contains(s, "permission denied"):
			return fmt.Sprintf("no permission to bind %s (privileged port?)", bind.Addr)
		case strings.Contains(s, "invalid port"):
			return fmt.Sprintf("%s is not a valid TCP port", bind.Addr)
		default:
			return fmt.Sprintf("could not bind %s", bind.Addr)
		}
	default:
		return "startup failed; check the logs"
	}
}
