//go:build pact
// +build pact

// Package pacttest holds shared names and paths for the hosted-checkout
// consumer contract.
package pacttest

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

const (
	ProviderName = "hosted-checkout-api"
	ConsumerName = "storefront-api"

	StateSessionCreatable = "checkout sessions can be created"
	StateSessionPaid      = "checkout session cs_pact_paid is paid"
	StateSessionUnpaid    = "checkout session cs_pact_open is unpaid"
	StateSessionMissing   = "no checkout session cs_pact_missing"
)

const (
	PaidSessionID    = "cs_pact_paid"
	UnpaidSessionID  = "cs_pact_open"
	MissingSessionID = "cs_pact_missing"

	SecretKey = "sk_test_pact"
)

// PactDir returns the workspace-level directory for generated pact files.
func PactDir(t testing.TB) string {
	t.Helper()
	dir := filepath.Join(projectRoot(t), "pacts")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("create pact dir: %v", err)
	}
	return dir
}

// LogDir returns the log output directory for pact-go.
func LogDir(t testing.TB) string {
	t.Helper()
	dir := filepath.Join(projectRoot(t), "bin", "pact-logs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("create pact log dir: %v", err)
	}
	return dir
}

// projectRoot walks up from this file to the workspace root.
func projectRoot(t testing.TB) string {
	t.Helper()
	_, file, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("cannot determine caller for pact paths")
	}
	return filepath.Clean(filepath.Join(filepath.Dir(file), "..", ".."))
}
