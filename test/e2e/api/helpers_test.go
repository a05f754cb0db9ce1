package api_test

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/offmenu/offmenu/pkg/dashsdk"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

/*
 * Common helpers for dashboard API end-to-end tests: container setup,
 * magic-link sign-in, and log scraping.
 */

const testImageName = "offmenu-api-test:latest"

// TestMain builds the Docker image once before all tests and removes it
// afterwards.
func TestMain(m *testing.M) {
	fmt.Fprintf(os.Stdout, "Building API Docker image...")
	if err := buildDockerImage(); err != nil {
		fmt.Fprintf(os.Stderr, "\nFailed to build Docker image: %v\n", err)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stdout, " done\n")

	exitCode := m.Run()

	fmt.Fprintf(os.Stdout, "Cleaning up API Docker image...")
	cleanupDockerImage()
	fmt.Fprintf(os.Stdout, " done\n")

	os.Exit(exitCode)
}

func buildDockerImage() error {
	cmd := exec.CommandContext(context.Background(), "docker", "build",
		"-t", testImageName,
		"-f", "../../../cmd/api/Dockerfile",
		"../../../")
	cmd.Stdout = os.Stdout
	cmd.Stderr = nil
	return cmd.Run()
}

func cleanupDockerImage() {
	cmd := exec.CommandContext(context.Background(), "docker", "rmi", "-f", testImageName)
	_ = cmd.Run() // image might not exist
}

// setupAPIContainer starts the API in a container and returns its base
// URL plus a handle for log scraping.
func setupAPIContainer(t *testing.T) (string, testcontainers.Container) {
	t.Helper()
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        testImageName,
		ExposedPorts: []string{"8080/tcp"},
		Env: map[string]string{
			"ENV":        "test",
			"LOG_LEVEL":  "debug",
			"LOG_FORMAT": "json",
			// The magic-link mailer logs the link; tests fish the token
			// out of the container logs.
			"OFFMENU_BASE_URL": "http://localhost:3000",
			"OFFMENU_ISSUER":   "offmenu-api",
			"OFFMENU_AUDIENCE": "offmenu",
		},
		WaitingFor: wait.ForHTTP("/readyz").WithPort("8080/tcp").WithStartupTimeout(60 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err, "Failed to start API container")
	t.Cleanup(func() { _ = container.Terminate(context.Background()) })

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "8080")
	require.NoError(t, err)

	return fmt.Sprintf("http://%s:%s", host, port.Port()), container
}

// magicLinkToken extracts the most recent magic-link token issued for
// an email address from the container logs. The LogMailer writes the
// full sign-in link at info level.
func magicLinkToken(t *testing.T, container testcontainers.Container, email string) string {
	t.Helper()

	tokenRe := regexp.MustCompile(`token=([A-Za-z0-9_-]+\.[A-Za-z0-9_-]+)`)
	deadline := time.Now().Add(10 * time.Second)

	for time.Now().Before(deadline) {
		reader, err := container.Logs(context.Background())
		require.NoError(t, err)
		logs, err := io.ReadAll(reader)
		_ = reader.Close()
		require.NoError(t, err)

		token := ""
		for _, line := range strings.Split(string(logs), "\n") {
			if !strings.Contains(line, "magic link issued") || !strings.Contains(line, email) {
				continue
			}
			if m := tokenRe.FindStringSubmatch(line); m != nil {
				token = m[1] // keep the latest issue for this address
			}
		}
		if token != "" {
			return token
		}
		time.Sleep(200 * time.Millisecond)
	}

	t.Fatalf("no magic link for %s found in container logs", email)
	return ""
}

// signIn runs the full magic-link dance for an email address and
// returns an authenticated session.
func signIn(t *testing.T, container testcontainers.Container, client *dashsdk.SDKClient, email string) *dashsdk.Session {
	t.Helper()
	ctx := context.Background()

	_, err := client.RequestMagicLink(ctx, dashsdk.MagicLinkRequest{Email: email})
	require.NoError(t, err, "Magic link request should succeed")

	token := magicLinkToken(t, container, email)
	session, err := client.Verify(ctx, token)
	require.NoError(t, err, "Magic link verification should succeed")
	require.Equal(t, email, session.User().Email)

	return session
}
