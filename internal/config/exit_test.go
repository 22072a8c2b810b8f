package config_test

import (
	"os"
	"os/exec"
	"strings"
	"testing"

	"github.com/KirkDiggler/otsim/internal/config"
)

// os.Exit cannot be intercepted in-process, so these re-run the test binary.
func TestExitf_ExitsWithCode1(t *testing.T) {
	if os.Getenv("TEST_EXITF_SUBPROCESS") == "1" {
		config.Exitf("fatal: %s", "something broke")
		return
	}

	assertExit(t, "^TestExitf_ExitsWithCode1$", "TEST_EXITF_SUBPROCESS", 1, "fatal: something broke")
}

func TestExitCodef_ExitsWithCode(t *testing.T) {
	if os.Getenv("TEST_EXITCODEF_SUBPROCESS") == "1" {
		config.ExitCodef(config.ExitBadUsage, "bad flag %q", "--trials")
		return
	}

	assertExit(t, "^TestExitCodef_ExitsWithCode$", "TEST_EXITCODEF_SUBPROCESS", 2, `bad flag "--trials"`)
}

func assertExit(t *testing.T, run, envKey string, code int, message string) {
	t.Helper()

	cmd := exec.Command(os.Args[0], "-test.run="+run)
	cmd.Env = append(os.Environ(), envKey+"=1")

	out, err := cmd.CombinedOutput()

	exitErr, ok := err.(*exec.ExitError)
	if !ok {
		t.Fatalf("expected *exec.ExitError, got %T: %v", err, err)
	}
	if exitErr.ExitCode() != code {
		t.Fatalf("expected exit code %d, got %d", code, exitErr.ExitCode())
	}
	if !strings.Contains(string(out), message) {
		t.Fatalf("expected stderr to contain %q, got %q", message, string(out))
	}
}
