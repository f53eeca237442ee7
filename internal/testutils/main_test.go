package testutils

import (
	"os"
	"os/signal"
	"syscall"
	"testing"
)

// TestMain ensures the shared Postgres container is purged when the test
// binary exits, including interrupt signals.
func TestMain(m *testing.M) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigs
		CleanupSharedContainer()
		os.Exit(1)
	}()

	code := m.Run()
	CleanupSharedContainer()
	os.Exit(code)
}
