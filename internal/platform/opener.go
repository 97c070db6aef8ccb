package platform

import (
	"errors"
	"fmt"
	"net/url"
	"os/exec"
	"runtime"
)

// Opener commands
const (
	OpenCommand    = "open"
	XDGOpenCommand = "xdg-open"
	CmdCommand     = "cmd"
	StartCommand   = "start"
	WindowsCmdFlag = "/c"
)

// ErrUnsupportedOS is returned when the host has no known URL opener.
var ErrUnsupportedOS = errors.New("unsupported operating system")

// runCommand is swapped in tests.
var runCommand = func(name string, args ...string) error {
	return exec.Command(name, args...).Start()
}

// OpenURL opens rawURL with the host's default handler (usually a browser).
// Only http and https URLs are accepted.
func OpenURL(rawURL string) error {
	u, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("parse url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("refusing to open %q: scheme must be http or https", rawURL)
	}

	name, args, err := openCommand(runtime.GOOS, u.String())
	if err != nil {
		return err
	}
	if err := runCommand(name, args...); err != nil {
		return fmt.Errorf("open %s: %w", u, err)
	}
	return nil
}

func openCommand(goos, target string) (string, []string, error) {
	switch goos {
	case goosDarwin:
		return OpenCommand, []string{target}, nil
	case goosWindows:
		// The empty argument is the window title consumed by start.
		return CmdCommand, []string{WindowsCmdFlag, StartCommand, "", target}, nil
	case goosLinux, "freebsd", "openbsd", "netbsd":
		return XDGOpenCommand, []string{target}, nil
	default:
		return "", nil, fmt.Errorf("%w: %s", ErrUnsupportedOS, goos)
	}
}
