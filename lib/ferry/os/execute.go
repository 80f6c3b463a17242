package os

import (
	"bytes"
	"fmt"
	"os/exec"
	"strings"

	"github.com/coveooss/ferry/lib/ferry/log"
)

// Execute runs a command in the given directory and returns its stdout.
// A non-zero exit turns into an error carrying the command line, the exit
// code and the captured stderr.
func Execute(pwd string, command string, params ...string) (string, error) {
	log.Logger.Tracef("%s %q", command, params)

	cmd := exec.Command(command, params...)
	cmd.Dir = pwd

	var buff bytes.Buffer
	var stderr bytes.Buffer

	cmd.Stdout = &buff
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		log.Logger.Error(stderr.String())
		if exitErr, ok := err.(*exec.ExitError); ok {
			cmdLine := strings.Join(append([]string{command}, params...), " ")
			return "", fmt.Errorf("Call to '%s' exited with code %d: %s", cmdLine, exitErr.ExitCode(), strings.TrimSpace(stderr.String()))
		}
		return "", err
	}

	out := buff.String()

	log.Logger.Tracef("\t%s\n", out)

	return out, nil
}
