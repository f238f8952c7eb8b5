package integration_test

import (
	"os"
	"sync"
	"testing"

	"cobrew_backend/test/helpers"
)

var (
	globalTestServer *helpers.TestServer
	serverOnce       sync.Once
)

// GetTestServer returns the shared test server, creating it on first use.
// Tests run against a shared in-memory sqlite database, so they use unique
// emails instead of parallel isolation.
func GetTestServer(t *testing.T) *helpers.TestServer {
	serverOnce.Do(func() {
		os.Setenv("DATABASE_URL", "file::memory:?cache=shared")
		os.Setenv("DATABASE_DRIVER", "sqlite")
		os.Setenv("SERVER_ENV", "test")
		os.Setenv("JWT_SECRET", "integration_test_secret_12345")

		globalTestServer = helpers.NewTestServer(t)
	})
	return globalTestServer
}

func TestMain(m *testing.M) {
	code := m.Run()

	if globalTestServer != nil {
		globalTestServer.Close()
	}

	os.Exit(code)
}
