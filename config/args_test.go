package config

import (
	"errors"
	"testing"
)

func TestParseArgsMinimal(t *testing.T) {
	cfg, err := ParseArgs([]string{"ticketsrv", "-f", "events.txt"})
	if err != nil {
		t.Fatalf("ParseArgs: %v", err)
	}
	if cfg.SeedPath != "events.txt" || cfg.Port != defaultPort || cfg.TimeoutSeconds != defaultTimeout {
		t.Fatalf("unexpected config: %+v", cfg)
	}
}

func TestParseArgsAnyOrderAllFlags(t *testing.T) {
	cfg, err := ParseArgs([]string{"ticketsrv", "-t", "10", "-p", "3000", "-f", "events.txt"})
	if err != nil {
		t.Fatalf("ParseArgs: %v", err)
	}
	if cfg.SeedPath != "events.txt" || cfg.Port != 3000 || cfg.TimeoutSeconds != 10 {
		t.Fatalf("unexpected config: %+v", cfg)
	}
}

func TestParseArgsMissingF(t *testing.T) {
	var argErr *ArgError
	_, err := ParseArgs([]string{"ticketsrv", "-p", "3000"})
	if !errors.As(err, &argErr) || argErr.Reason != ReasonBadPath {
		t.Fatalf("expected ReasonBadPath, got %v", err)
	}
}

func TestParseArgsEvenCountRejected(t *testing.T) {
	_, err := ParseArgs([]string{"ticketsrv", "-f"})
	if err == nil {
		t.Fatalf("expected error for even/short argument count")
	}
}

func TestParseArgsTooManyFlags(t *testing.T) {
	_, err := ParseArgs([]string{"ticketsrv", "-f", "a", "-p", "1", "-t", "1", "-x", "1"})
	if err == nil {
		t.Fatalf("expected error for argument count above 7")
	}
}

func TestParseArgsUnknownFlag(t *testing.T) {
	_, err := ParseArgs([]string{"ticketsrv", "-z", "1"})
	if err == nil {
		t.Fatalf("expected error for unrecognized flag")
	}
}

func TestParseArgsPortOutOfRange(t *testing.T) {
	var argErr *ArgError
	_, err := ParseArgs([]string{"ticketsrv", "-f", "a", "-p", "70000"})
	if !errors.As(err, &argErr) || argErr.Reason != ReasonBadPort {
		t.Fatalf("expected ReasonBadPort, got %v", err)
	}
}

func TestParseArgsPortNotAllDigits(t *testing.T) {
	_, err := ParseArgs([]string{"ticketsrv", "-f", "a", "-p", "80x"})
	if err == nil {
		t.Fatalf("expected error for non-digit port")
	}
}

func TestParseArgsTimeoutOutOfRange(t *testing.T) {
	var argErr *ArgError
	_, err := ParseArgs([]string{"ticketsrv", "-f", "a", "-t", "0"})
	if !errors.As(err, &argErr) || argErr.Reason != ReasonBadTimeout {
		t.Fatalf("expected ReasonBadTimeout, got %v", err)
	}
}

func TestParseArgsDuplicateFlag(t *testing.T) {
	_, err := ParseArgs([]string{"ticketsrv", "-f", "a", "-f", "b"})
	if err == nil {
		t.Fatalf("expected error for duplicate flag")
	}
}
