package dumpme

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/danmuck/dispatch"
	"github.com/danmuck/dispatch/opt"
)

const (
	// Name is the canonical registry name; the CLI form is "dump-me".
	Name = "DumpMe"

	Summary = "print the execution context"
)

// Command prints the namespace, merged options, and remaining arguments
// it was dispatched with. Debugging aid for dispatcher wiring.
type Command struct {
	out  io.Writer
	opts opt.Set
}

// New constructs the command writing to stdout.
func New() *Command {
	return &Command{out: os.Stdout}
}

// NewWithWriter constructs the command writing to w.
func NewWithWriter(w io.Writer) *Command {
	return &Command{out: w}
}

// Register adds the command to a registry under namespace.
func Register(reg *dispatch.Registry, namespace string) error {
	return reg.Register(namespace, dispatch.Registration{
		Name:    Name,
		Summary: Summary,
		New:     func() (dispatch.Command, error) { return New(), nil },
	})
}

// Options declares the JSON toggle and the repeatable label list.
func (c *Command) Options() []opt.Spec {
	return opt.MustSpecs("json|j", "label|l=s@")
}

func (c *Command) SetOptions(opts opt.Set) { c.opts = opts }

// Run renders the execution context, as JSON when requested.
func (c *Command) Run(args []string) error {
	namespace := c.opts.String(dispatch.NamespaceKey)
	if c.opts.Bool("json") {
		return c.renderJSON(namespace, args)
	}

	fmt.Fprintf(c.out, "namespace: %s\n", namespace)
	for _, name := range c.optionNames() {
		fmt.Fprintf(c.out, "option %s: %s\n", name, c.opts.String(name))
	}
	for i, arg := range args {
		fmt.Fprintf(c.out, "arg[%d]: %s\n", i, arg)
	}
	return nil
}

type contextDump struct {
	Namespace string         `json:"namespace"`
	Options   map[string]any `json:"options"`
	Args      []string       `json:"args"`
}

func (c *Command) renderJSON(namespace string, args []string) error {
	dump := contextDump{
		Namespace: namespace,
		Options:   make(map[string]any, len(c.opts)),
		Args:      args,
	}
	for name, v := range c.opts {
		if name == dispatch.NamespaceKey {
			continue
		}
		switch v.Kind() {
		case opt.KindBool:
			dump.Options[name] = v.Bool()
		case opt.KindList:
			dump.Options[name] = v.Strings()
		default:
			dump.Options[name] = v.String()
		}
	}

	enc := json.NewEncoder(c.out)
	enc.SetIndent("", "  ")
	return enc.Encode(dump)
}

func (c *Command) optionNames() []string {
	names := make([]string, 0, len(c.opts))
	for name := range c.opts {
		if name == dispatch.NamespaceKey {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
