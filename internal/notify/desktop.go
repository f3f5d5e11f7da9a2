package notify

import (
	"fmt"
	"os/exec"
	"runtime"
)

// DesktopNotifier shows native desktop notifications by shelling out
// to the host notifier: notify-send on Linux, osascript on macOS.
type DesktopNotifier struct {
	tool    string
	enabled bool
}

// NewDesktopNotifier creates a desktop backend, probing for an
// available notification tool.
func NewDesktopNotifier() Notifier {
	n := &DesktopNotifier{}
	n.tool, n.enabled = findTool()
	return n
}

// Name returns the backend identifier
func (n *DesktopNotifier) Name() string {
	return "desktop"
}

// IsEnabled returns whether a notification tool was found
func (n *DesktopNotifier) IsEnabled() bool {
	return n.enabled
}

// Push shows a desktop notification
func (n *DesktopNotifier) Push(title, body string) error {
	if !n.enabled {
		return fmt.Errorf("no notification tool available")
	}

	var cmd *exec.Cmd
	switch n.tool {
	case "osascript":
		script := fmt.Sprintf("display notification %q with title %q", body, title)
		cmd = exec.Command("osascript", "-e", script)
	default:
		cmd = exec.Command("notify-send", title, body)
	}

	output, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("showing notification: %w (output: %s)", err, string(output))
	}
	return nil
}

// findTool locates a usable notification command for this platform.
func findTool() (string, bool) {
	candidates := []string{"notify-send"}
	if runtime.GOOS == "darwin" {
		candidates = []string{"osascript", "notify-send"}
	}

	for _, tool := range candidates {
		if _, err := exec.LookPath(tool); err == nil {
			return tool, true
		}
	}
	return "", false
}

// Register the desktop backend
func init() {
	Register("desktop", func() Notifier { return NewDesktopNotifier() })
}
