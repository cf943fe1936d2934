package env

import (
	"net"
	"testing"
)

func TestIsPortAvailable_FreePort(t *testing.T) {
	// Grab an ephemeral port, close it, and expect it to be reported free.
	ln, err := net.Listen("tcp", ":0")
	if err != nil {
		t.Fatalf("failed to grab ephemeral port: %v", err)
	}
	port := ln.Addr().(*net.TCPAddr).Port
	ln.Close()

	if !IsPortAvailable(port) {
		t.Errorf("expected port %d to be available after close", port)
	}
}

func TestIsPortAvailable_BusyPort(t *testing.T) {
	ln, err := net.Listen("tcp", ":0")
	if err != nil {
		t.Fatalf("failed to grab ephemeral port: %v", err)
	}
	defer ln.Close()
	port := ln.Addr().(*net.TCPAddr).Port

	if IsPortAvailable(port) {
		t.Errorf("expected port %d to be reported busy while listener is open", port)
	}
}

func TestCheckPrerequisites_DoesNotPanic(t *testing.T) {
	res := CheckPrerequisites()
	if res == nil {
		t.Fatal("expected a non-nil result")
	}
}
