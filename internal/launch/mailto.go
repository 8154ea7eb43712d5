package launch

import (
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
)

// ErrNoMailClient is returned when no way of opening a mailto link worked
var ErrNoMailClient = errors.New("no mail client available")

// Opener opens mailto links in a mail client
type Opener struct {
	command string   // configured mail client, empty for auto-detect
	args    []string // additional arguments for the client
	logger  *slog.Logger

	// Overridable for tests
	lookPath func(string) (string, error)
	start    func(name string, args ...string) error
}

// launchPath is one way to start a mail client
type launchPath struct {
	path string   // Command path, or "open-a:AppName" for macOS apps
	args []string // Arguments placed before the link
}

// clients lists known mail clients per platform, in preference order
var clients = map[string][]launchPath{
	"darwin": {
		{path: "open-a:Mail"},
		{path: "thunderbird", args: []string{"-compose"}},
	},
	"linux": {
		{path: "thunderbird", args: []string{"-compose"}},
		{path: "evolution"},
		{path: "geary"},
	},
	"windows": {
		{path: "thunderbird.exe", args: []string{"-compose"}},
	},
}

// NewOpener creates an Opener. command may be empty.
func NewOpener(command string, args []string, logger *slog.Logger) *Opener {
	if logger == nil {
		logger = slog.Default()
	}
	return &Opener{
		command:  command,
		args:     args,
		logger:   logger,
		lookPath: exec.LookPath,
		start: func(name string, args ...string) error {
			return exec.Command(name, args...).Start()
		},
	}
}

// MailtoURL builds a mailto link with an optional subject
func MailtoURL(address, subject string) string {
	u := url.URL{Scheme: "mailto", Opaque: address}
	if subject != "" {
		u.RawQuery = "subject=" + url.PathEscape(subject)
	}
	return u.String()
}

// Open opens link in the configured client, the first known client found on
// this platform, or the system default handler
func (o *Opener) Open(link string) error {
	if o.command != "" {
		o.logger.Info("using configured mail client", "command", o.command)
		return o.launchConfigured(link)
	}

	if name, err := o.detectAndLaunch(link); err == nil {
		o.logger.Info("opened mail client", "client", name)
		return nil
	}

	o.logger.Info("no known mail client found, using system default")
	return o.launchDefault(link)
}

func (o *Opener) launchConfigured(link string) error {
	args := append(append([]string{}, o.args...), link)

	// GUI apps on macOS are often not in PATH
	if runtime.GOOS == "darwin" {
		if _, err := o.lookPath(o.command); err != nil {
			return o.start("open", "-a", o.command, link)
		}
	}
	return o.start(o.command, args...)
}

func (o *Opener) detectAndLaunch(link string) (string, error) {
	paths, ok := clients[runtime.GOOS]
	if !ok {
		paths = clients["linux"]
	}

	for _, lp := range paths {
		var err error
		if app, ok := strings.CutPrefix(lp.path, "open-a:"); ok {
			err = o.start("open", "-a", app, link)
		} else if _, err = o.lookPath(lp.path); err == nil {
			err = o.start(lp.path, append(append([]string{}, lp.args...), link)...)
		}
		if err == nil {
			return strings.TrimSuffix(filepath.Base(strings.TrimPrefix(lp.path, "open-a:")), ".exe"), nil
		}
		o.logger.Debug("mail client not available", "path", lp.path, "error", err)
	}
	return "", ErrNoMailClient
}

func (o *Opener) launchDefault(link string) error {
	var err error
	switch runtime.GOOS {
	case "darwin":
		err = o.start("open", link)
	case "windows":
		err = o.start("cmd", "/c", "start", "", link)
	default:
		err = o.start("xdg-open", link)
	}
	if err != nil {
		return fmt.Errorf("%w: %v", ErrNoMailClient, err)
	}
	return nil
}
