package settings

import (
	"errors"
	"net"
	"os"
	"path/filepath"
	"strconv"
	"testing"
)

func TestSocketMissingPort(t *testing.T) {
	st, err := New(nil)
	if err != nil {
		t.Fatal(err)
	}
	_, err = st.Socket()
	var missing *MissingOptionError
	if !errors.As(err, &missing) {
		t.Fatalf("expected MissingOptionError, got %v", err)
	}
	if missing.Option != "port" {
		t.Fatalf("missing option = %q, want %q", missing.Option, "port")
	}
}

func TestSocketLiteralPort(t *testing.T) {
	// Grab a free port first so the literal branch binds a real number.
	probe, err := net.Listen("tcp", ":0")
	if err != nil {
		t.Fatal(err)
	}
	port := probe.Addr().(*net.TCPAddr).Port
	_ = probe.Close()

	st, err := New([]string{"--port=" + strconv.Itoa(port)})
	if err != nil {
		t.Fatal(err)
	}
	ln, err := st.Socket()
	if err != nil {
		t.Fatal(err)
	}
	defer ln.Close()
	if got := ln.Addr().(*net.TCPAddr).Port; got != port {
		t.Fatalf("bound port = %d, want %d", got, port)
	}
}

func TestSocketPortOutOfRange(t *testing.T) {
	st, err := New([]string{"--port=99999999"})
	if err != nil {
		t.Fatal(err)
	}
	_, err = st.Socket()
	var bind *BindError
	if !errors.As(err, &bind) {
		t.Fatalf("expected BindError, got %v", err)
	}
}

func TestSocketPortInUse(t *testing.T) {
	ln, err := net.Listen("tcp", ":0")
	if err != nil {
		t.Fatal(err)
	}
	defer ln.Close()
	port := ln.Addr().(*net.TCPAddr).Port

	st, err := New([]string{"--port=" + strconv.Itoa(port)})
	if err != nil {
		t.Fatal(err)
	}
	_, err = st.Socket()
	var bind *BindError
	if !errors.As(err, &bind) {
		t.Fatalf("expected BindError for busy port, got %v", err)
	}
}

func TestSocketPortFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "port")

	st, err := New([]string{"--port=" + path})
	if err != nil {
		t.Fatal(err)
	}
	ln, err := st.Socket()
	if err != nil {
		t.Fatal(err)
	}
	port := ln.Addr().(*net.TCPAddr).Port

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("port file not written: %v", err)
	}
	if got := string(data); got != strconv.Itoa(port) {
		t.Fatalf("port file holds %q, want %q", got, strconv.Itoa(port))
	}

	// Release the port so the second run can bind it via the read branch.
	if err := ln.Close(); err != nil {
		t.Fatal(err)
	}

	st2, err := New([]string{"--port=" + path})
	if err != nil {
		t.Fatal(err)
	}
	ln2, err := st2.Socket()
	if err != nil {
		t.Fatal(err)
	}
	defer ln2.Close()
	if got := ln2.Addr().(*net.TCPAddr).Port; got != port {
		t.Fatalf("second bind on port %d, want %d", got, port)
	}
}

func TestSocketPortFileGarbage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "port")
	if err := os.WriteFile(path, []byte("abcdefghij"), 0o644); err != nil {
		t.Fatal(err)
	}

	st, err := New([]string{"--port=" + path})
	if err != nil {
		t.Fatal(err)
	}
	_, err = st.Socket()
	var malformed *MalformedNumberError
	if !errors.As(err, &malformed) {
		t.Fatalf("expected MalformedNumberError, got %v", err)
	}
	// Only the first 8 bytes are ever consumed.
	if malformed.Value != "abcdefgh" {
		t.Fatalf("consumed %q, want first 8 bytes only", malformed.Value)
	}
}

func TestSocketPortFileEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "port")
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		t.Fatal(err)
	}

	st, err := New([]string{"--port=" + path})
	if err != nil {
		t.Fatal(err)
	}
	_, err = st.Socket()
	var malformed *MalformedNumberError
	if !errors.As(err, &malformed) {
		t.Fatalf("expected MalformedNumberError for empty file, got %v", err)
	}
}
