// Package open launches URLs with the system's default handler.
package open

import (
	"fmt"
	"net/url"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"

	"github.com/vidinfo-cli/vidinfo/log"
)

// start runs the launcher without waiting for it. Replaced in tests.
var start = func(cmd *exec.Cmd) error {
	return cmd.Start()
}

// URL opens an http or https link in the default browser.
func URL(link string) error {
	parsed, err := url.Parse(link)
	if err != nil {
		return fmt.Errorf("parse url: %w", err)
	}

	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return fmt.Errorf("refusing to open %q: not a web url", link)
	}

	cmd, ok := command(runtime.GOOS, parsed.String())
	if !ok {
		return fmt.Errorf("unsupported OS: %s", runtime.GOOS)
	}

	log.Infof("opening %s", link)
	return start(cmd)
}

// launchers maps runtime.GOOS to the command that hands a URL to the default handler.
var launchers = map[string]func(input string) *exec.Cmd{
	"windows": func(input string) *exec.Cmd {
		rundll := filepath.Join(os.Getenv("SYSTEMROOT"), "System32", "rundll32.exe")
		return exec.Command(rundll, "url.dll,FileProtocolHandler", input)
	},
	"darwin": func(input string) *exec.Cmd {
		return exec.Command("open", input)
	},
	"linux": func(input string) *exec.Cmd {
		return exec.Command("xdg-open", input)
	},
	"android": func(input string) *exec.Cmd {
		return exec.Command("termux-open", input)
	},
}

func command(goos, input string) (*exec.Cmd, bool) {
	launcher, ok := launchers[goos]
	if !ok {
		return nil, false
	}
	return launcher(input), true
}
