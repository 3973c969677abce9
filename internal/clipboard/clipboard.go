// Package clipboard copies rendered rosters to the system clipboard.
package clipboard

import (
	"fmt"
	"os/exec"
	"runtime"
	"strings"
)

// tool is a clipboard command that reads the content on stdin.
type tool []string

// Tools tried per platform, in order of preference.
var platformTools = map[string][]tool{
	"linux": {
		{"wl-copy"},                          // Wayland
		{"xclip", "-selection", "clipboard"}, // X11
		{"xsel", "--clipboard", "--input"},   // X11 alternative
	},
	"darwin":  {{"pbcopy"}},
	"windows": {{"clip"}},
}

// lookPath is replaced in tests.
var lookPath = exec.LookPath

// CopyText copies plain text to the system clipboard.
func CopyText(text string) error {
	tools, ok := platformTools[runtime.GOOS]
	if !ok {
		return fmt.Errorf("unsupported platform: %s", runtime.GOOS)
	}
	return copyWith(tools, text)
}

func copyWith(tools []tool, text string) error {
	var tried []string
	for _, t := range tools {
		tried = append(tried, t[0])
		if !isCommandAvailable(t[0]) {
			continue
		}
		cmd := exec.Command(t[0], t[1:]...)
		cmd.Stdin = strings.NewReader(text)
		if err := cmd.Run(); err == nil {
			return nil
		}
	}
	return fmt.Errorf("no suitable clipboard tool found (tried: %s)", strings.Join(tried, ", "))
}

func isCommandAvailable(name string) bool {
	_, err := lookPath(name)
	return err == nil
}
