package os_test

import (
	"strings"
	"testing"

	"github.com/coveooss/ferry/lib/ferry/os"
)

func TestExecuteReturnsStandardOutput(t *testing.T) {
	out, err := os.Execute("", "sh", "-c", "echo hello")
	if err != nil {
		t.Fatalf("Execute failed: %s", err)
	}

	if out != "hello\n" {
		t.Errorf("Execute output = %q, expected %q", out, "hello\n")
	}
}

func TestExecuteRunsInTheGivenDirectory(t *testing.T) {
	out, err := os.Execute("/", "pwd")
	if err != nil {
		t.Fatalf("Execute failed: %s", err)
	}

	if strings.TrimSpace(out) != "/" {
		t.Errorf("Execute ran in %q, expected the root directory", strings.TrimSpace(out))
	}
}

func TestExecuteFailureCarriesCommandExitCodeAndStderr(t *testing.T) {
	_, err := os.Execute("", "sh", "-c", "echo broken >&2; exit 3")
	if err == nil {
		t.Fatal("Expected an error for a failing command")
	}

	for _, part := range []string{"sh -c", "exited with code 3", "broken"} {
		if !strings.Contains(err.Error(), part) {
			t.Errorf("Error %q does not mention %q", err.Error(), part)
		}
	}
}
