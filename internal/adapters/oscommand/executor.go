package oscommand

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/AntonioJCosta/aliasmap/internal/core/ports"
)

const fallbackShell = "/bin/sh"

// OSCommandExecutor implements the CommandExecutor interface using the operating system's shell.
type OSCommandExecutor struct {
	shellPath string
}

// NewOSCommandExecutor creates a new OSCommandExecutor running commands with
// $SHELL, or /bin/sh when SHELL is not set.
func NewOSCommandExecutor() ports.CommandExecutor {
	shellPath := os.Getenv("SHELL")
	if shellPath == "" {
		shellPath = fallbackShell
	}
	return &OSCommandExecutor{shellPath: shellPath}
}

// Execute runs pipeline with "<shell> -c" and returns its stdout and stderr.
// The process is killed when ctx is cancelled.
func (e *OSCommandExecutor) Execute(ctx context.Context, pipeline string) (string, string, error) {
	if strings.TrimSpace(pipeline) == "" {
		return "", "", fmt.Errorf("cannot execute an empty command")
	}

	cmd := exec.CommandContext(ctx, e.shellPath, "-c", pipeline)
	var outBuf, errBuf bytes.Buffer
	cmd.Stdout = &outBuf
	cmd.Stderr = &errBuf

	err := cmd.Run()
	stdout := outBuf.String()
	stderr := errBuf.String()

	if err != nil {
		return stdout, stderr, fmt.Errorf("executing command with shell '%s': %w. Stderr: %s", e.shellPath, err, strings.TrimSpace(stderr))
	}
	return stdout, stderr, nil
}
