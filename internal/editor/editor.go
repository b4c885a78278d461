// Package editor spawns the configured external editor.
package editor

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// Launch opens path in the given editor command and blocks until the
// editor exits. A non-zero exit status is surfaced as an error.
func Launch(editorCmd, path string) error {
	if strings.TrimSpace(editorCmd) == "" {
		return errors.New("editor: no editor configured")
	}
	parts := strings.Fields(editorCmd)
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("editor: %s: %w", editorCmd, err)
	}
	return nil
}
