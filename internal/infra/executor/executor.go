// Package executor launches external programs. It backs outbound links:
// issue pages open in the user's browser without blocking the caller.
package executor

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"os/exec"
	"runtime"
	"strings"

	"github.com/runoshun/oss-curator/internal/domain"
)

// Client implements domain.LinkOpener by starting the platform's opener.
type Client struct {
	start  func(program string, args ...string) error
	getenv func(string) string
	goos   string
}

// NewClient creates a new link opener client.
func NewClient() *Client {
	return &Client{
		start:  startDetached,
		getenv: os.Getenv,
		goos:   runtime.GOOS,
	}
}

// Ensure Client implements domain.LinkOpener interface.
var _ domain.LinkOpener = (*Client)(nil)

// Open starts a browser for rawURL and returns without waiting for it.
// Only http and https links are opened.
func (c *Client) Open(ctx context.Context, rawURL string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	u, err := url.Parse(rawURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("refusing to open %q: not an http(s) link", rawURL)
	}

	program, args := c.command(u.String())
	if err := c.start(program, args...); err != nil {
		return fmt.Errorf("open %s: %w", u, err)
	}
	return nil
}

// command returns the program and arguments that open link.
// $BROWSER takes precedence over the platform default.
func (c *Client) command(link string) (string, []string) {
	if b := strings.TrimSpace(c.getenv("BROWSER")); b != "" {
		fields := strings.Fields(b)
		return fields[0], append(fields[1:], link)
	}
	switch c.goos {
	case "darwin":
		return "open", []string{link}
	case "windows":
		return "rundll32", []string{"url.dll,FileProtocolHandler", link}
	default:
		return "xdg-open", []string{link}
	}
}

// startDetached starts the program and reaps it in the background.
func startDetached(program string, args ...string) error {
	// #nosec G204 - program comes from the platform table or $BROWSER
	cmd := exec.Command(program, args...)
	if err := cmd.Start(); err != nil {
		return err
	}
	go func() { _ = cmd.Wait() }()
	return nil
}
