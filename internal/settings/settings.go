package settings

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/seuusuario/servebox/internal/system"
)

// Unbounded is returned by Lifetime and MaxLatency when no limit was
// configured. Compare against it; don't do arithmetic on it.
const Unbounded time.Duration = math.MaxInt64

var validKey = regexp.MustCompile(`^[a-z-]+$`)

// Settings is an immutable view over the command-line arguments. The map is
// built once by New and never mutated afterward, so a single instance can be
// shared by any number of concurrent readers without locking.
type Settings struct {
	args map[string]string
}

// New parses an ordered sequence of tokens of the form --key or --key=value,
// where key is one or more characters from [a-z-]. A flag without =value (or
// with an empty one) stores "". Later duplicates of a key overwrite earlier
// ones. The first token outside the grammar aborts the parse with a
// *MalformedArgumentError carrying that token verbatim.
func New(args []string) (*Settings, error) {
	m := make(map[string]string, len(args))
	for _, arg := range args {
		body, ok := strings.CutPrefix(arg, "--")
		if !ok {
			return nil, &MalformedArgumentError{Token: arg}
		}
		key, value, _ := strings.Cut(body, "=")
		if !validKey.MatchString(key) {
			return nil, &MalformedArgumentError{Token: arg}
		}
		m[key] = value
	}
	return &Settings{args: m}, nil
}

// IsDaemon reports whether --daemon was given. The value, if any, is ignored.
func (s *Settings) IsDaemon() bool {
	_, ok := s.args["daemon"]
	return ok
}

// HitRefresh reports whether --hit-refresh was given.
func (s *Settings) HitRefresh() bool {
	_, ok := s.args["hit-refresh"]
	return ok
}

// Lifetime returns how long the process should run before shutting itself
// down, or Unbounded when --lifetime is absent.
func (s *Settings) Lifetime() (time.Duration, error) {
	return s.millis("lifetime")
}

// MaxLatency returns the per-request latency budget, or Unbounded when
// --max-latency is absent.
func (s *Settings) MaxLatency() (time.Duration, error) {
	return s.millis("max-latency")
}

// Threads returns the worker count, defaulting to four per logical CPU.
func (s *Settings) Threads() (int, error) {
	value, ok := s.args["threads"]
	if !ok {
		return system.Parallelism() * 4, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, &MalformedNumberError{Key: "threads", Value: value, Err: err}
	}
	return n, nil
}

func (s *Settings) millis(key string) (time.Duration, error) {
	value, ok := s.args[key]
	if !ok {
		return Unbounded, nil
	}
	ms, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0, &MalformedNumberError{Key: key, Value: value, Err: err}
	}
	return time.Duration(ms) * time.Millisecond, nil
}
