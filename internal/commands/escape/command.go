package escape

import (
	"errors"
	"fmt"
	"html"
	"io"
	"net/url"
	"os"
	"strings"

	"github.com/danmuck/dispatch"
	"github.com/danmuck/dispatch/opt"
)

const (
	// Name is the canonical registry name; the CLI form is "escape".
	Name = "Escape"

	Summary = "escape text for a target context"
)

var ErrUnknownMode = errors.New("escape: unknown mode")

// Command escapes its arguments for an output context, reading stdin
// when no arguments remain after option parsing.
type Command struct {
	in   io.Reader
	out  io.Writer
	opts opt.Set
}

// New constructs the command reading stdin and writing stdout.
func New() *Command {
	return &Command{in: os.Stdin, out: os.Stdout}
}

// NewWithStreams constructs the command with explicit streams.
func NewWithStreams(in io.Reader, out io.Writer) *Command {
	return &Command{in: in, out: out}
}

// Register adds the command to a registry under namespace.
func Register(reg *dispatch.Registry, namespace string) error {
	return reg.Register(namespace, dispatch.Registration{
		Name:    Name,
		Summary: Summary,
		New:     func() (dispatch.Command, error) { return New(), nil },
	})
}

// Options declares the escape mode selector.
func (c *Command) Options() []opt.Spec {
	return opt.MustSpecs("mode|m=s")
}

func (c *Command) SetOptions(opts opt.Set) { c.opts = opts }

// Run escapes each argument on its own line. Mode defaults to html.
func (c *Command) Run(args []string) error {
	mode := c.opts.String("mode")
	if mode == "" {
		mode = "html"
	}
	esc, err := escaperFor(mode)
	if err != nil {
		return err
	}

	if len(args) == 0 {
		data, err := io.ReadAll(c.in)
		if err != nil {
			return fmt.Errorf("escape: read input: %w", err)
		}
		args = []string{strings.TrimRight(string(data), "\n")}
	}
	for _, arg := range args {
		fmt.Fprintln(c.out, esc(arg))
	}
	return nil
}

func escaperFor(mode string) (func(string) string, error) {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "html":
		return html.EscapeString, nil
	case "url":
		return url.PathEscape, nil
	case "query":
		return url.QueryEscape, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownMode, mode)
}
