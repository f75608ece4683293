// Package external hands non-Gopher links to the platform's URL handler.
package external

import (
	"errors"
	"fmt"
	"os/exec"
	"runtime"

	"github.com/google/shlex"
)

// ErrNoHandler is returned when nothing on the system can open a URL
var ErrNoHandler = errors.New("no handler found for url")

// Opener delegates a URL to something outside this program
type Opener interface {
	Open(url string) error
}

// CommandOpener launches a command with the URL as its last argument
type CommandOpener struct {
	command  []string
	lookPath func(string) (string, error)
	start    func(name string, args ...string) error
}

// NewCommandOpener splits command with shell quoting rules. An empty command means the
// platform default; unbalanced quotes are an error.
func NewCommandOpener(command string) (*CommandOpener, error) {
	args, err := shlex.Split(command)
	if err != nil {
		return nil, fmt.Errorf("invalid external_opener %q: %w", command, err)
	}
	o := newOpener(args)
	if len(o.command) == 0 {
		o.command = platformCommand(runtime.GOOS)
	}
	return o, nil
}

// NewPlatformOpener uses the platform's URL handler
func NewPlatformOpener() *CommandOpener {
	return newOpener(platformCommand(runtime.GOOS))
}

func newOpener(command []string) *CommandOpener {
	return &CommandOpener{
		command:  command,
		lookPath: exec.LookPath,
		start: func(name string, args ...string) error {
			cmd := exec.Command(name, args...)
			if err := cmd.Start(); err != nil {
				return err
			}
			go func() { _ = cmd.Wait() }()
			return nil
		},
	}
}

func platformCommand(goos string) []string {
	switch goos {
	case "darwin":
		return []string{"open"}
	case "windows":
		return []string{"rundll32", "url.dll,FileProtocolHandler"}
	default:
		return []string{"xdg-open"}
	}
}

// Open starts the handler and returns without waiting for it
func (o *CommandOpener) Open(url string) error {
	if url == "" || len(o.command) == 0 {
		return ErrNoHandler
	}
	bin, err := o.lookPath(o.command[0])
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrNoHandler, o.command[0], err)
	}
	args := append(append([]string{}, o.command[1:]...), url)
	if err := o.start(bin, args...); err != nil {
		return fmt.Errorf("%w: %v", ErrNoHandler, err)
	}
	return nil
}
