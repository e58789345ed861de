package settings

import (
	"fmt"
	"io"
	"net"
	"os"
	"strconv"
)

// A port file holds the decimal string of a TCP port; readers consume at
// most this many bytes.
const portFileLimit = 8

// Socket resolves the listening socket described by --port and returns it
// bound and listening. A value of decimal digits binds that literal port.
// Anything else is treated as a filesystem path: an existing file is read
// for the port number, while a missing one triggers a bind to an ephemeral
// port whose number is then written to the path so a later process can pick
// it up. The caller owns the returned listener and is responsible for
// closing it.
//
// The port-file exchange is a one-shot handshake: no lock, no retry, no
// staleness check. Two processes racing on the same not-yet-written path
// will each bind their own ephemeral port; sequencing is the caller's job.
func (s *Settings) Socket() (net.Listener, error) {
	port, ok := s.args["port"]
	if !ok {
		return nil, &MissingOptionError{Option: "port"}
	}
	if isDigits(port) {
		return listen(port)
	}
	f, err := os.Open(port)
	if err == nil {
		defer f.Close()
		return listenFromFile(f)
	}
	if !os.IsNotExist(err) {
		return nil, fmt.Errorf("open port file %s: %w", port, err)
	}
	return listenEphemeral(port)
}

func isDigits(v string) bool {
	for i := 0; i < len(v); i++ {
		if v[i] < '0' || v[i] > '9' {
			return false
		}
	}
	return len(v) > 0
}

func listen(port string) (net.Listener, error) {
	ln, err := net.Listen("tcp", ":"+port)
	if err != nil {
		return nil, &BindError{Addr: ":" + port, Err: err}
	}
	return ln, nil
}

// listenFromFile binds to the port recorded in an existing port file. The
// file must hold exactly the decimal port string; a stale or truncated file
// surfaces as a malformed number rather than being repaired.
func listenFromFile(f *os.File) (net.Listener, error) {
	buf := make([]byte, portFileLimit)
	n, err := io.ReadFull(f, buf)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return nil, fmt.Errorf("read port file %s: %w", f.Name(), err)
	}
	text := string(buf[:n])
	if _, err := strconv.Atoi(text); err != nil {
		return nil, &MalformedNumberError{Key: "port-file", Value: text, Err: err}
	}
	return listen(text)
}

// listenEphemeral binds an OS-assigned port and records its number at path
// for a later reader.
func listenEphemeral(path string) (net.Listener, error) {
	ln, err := net.Listen("tcp", ":0")
	if err != nil {
		return nil, &BindError{Addr: ":0", Err: err}
	}
	port := ln.Addr().(*net.TCPAddr).Port
	if err := os.WriteFile(path, []byte(strconv.Itoa(port)), 0o644); err != nil {
		_ = ln.Close()
		return nil, fmt.Errorf("write port file %s: %w", path, err)
	}
	return ln, nil
}
