// Package clipboard provides backends for placing copied text on the
// system clipboard.
package clipboard

import (
	"os"
	"os/exec"
	"runtime"

	"github.com/muesli/termenv"
)

// Clipboard defines the interface for clipboard operations.
type Clipboard interface {
	Copy(text string) error
}

// System implements Clipboard using the platform's clipboard utility.
type System struct{}

// Copy copies text to the system clipboard.
func (System) Copy(text string) error {
	cmd := copyCommand()

	pipe, err := cmd.StdinPipe()
	if err != nil {
		return err
	}

	if err := cmd.Start(); err != nil {
		return err
	}

	if _, err := pipe.Write([]byte(text)); err != nil {
		return err
	}

	if err := pipe.Close(); err != nil {
		return err
	}

	return cmd.Wait()
}

func copyCommand() *exec.Cmd {
	switch runtime.GOOS {
	case "darwin":
		return exec.Command("pbcopy")
	case "linux":
		if os.Getenv("WAYLAND_DISPLAY") != "" {
			if _, err := exec.LookPath("wl-copy"); err == nil {
				return exec.Command("wl-copy")
			}
		}
		return exec.Command("xclip", "-selection", "clipboard")
	default:
		return exec.Command("xclip", "-selection", "clipboard")
	}
}

// OSC52 implements Clipboard by emitting an OSC 52 escape sequence, which
// works over SSH where no clipboard utility is reachable.
type OSC52 struct {
	output *termenv.Output
}

// NewOSC52 creates an OSC52 clipboard writing to the default terminal output.
func NewOSC52() *OSC52 {
	return &OSC52{output: termenv.DefaultOutput()}
}

// Copy emits the text as an OSC 52 clipboard sequence.
func (c *OSC52) Copy(text string) error {
	c.output.Copy(text)
	return nil
}

// Mock records copies for testing.
type Mock struct {
	Copied []string
	Err    error
}

// Copy records the text, or fails with the configured error.
func (m *Mock) Copy(text string) error {
	if m.Err != nil {
		return m.Err
	}
	m.Copied = append(m.Copied, text)
	return nil
}

// Last returns the most recently copied text, or "" if none.
func (m *Mock) Last() string {
	if len(m.Copied) == 0 {
		return ""
	}
	return m.Copied[len(m.Copied)-1]
}

// ForBackend returns the clipboard for a configured backend name.
// Unknown names fall back to the system clipboard.
func ForBackend(name string) Clipboard {
	switch name {
	case "osc52":
		return NewOSC52()
	case "mock":
		return &Mock{}
	default:
		return System{}
	}
}
