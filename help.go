package dispatch

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/stoewer/go-strcase"

	"github.com/danmuck/dispatch/opt"
)

// helpCommand renders command listings and per-command usage. It is the
// fallback target of resolution, so it never declares options of its
// own and never returns an error.
type helpCommand struct {
	d    *Dispatcher
	opts opt.Set
}

func (h *helpCommand) Options() []opt.Spec { return nil }

func (h *helpCommand) SetOptions(opts opt.Set) { h.opts = opts }

func (h *helpCommand) Run(args []string) error {
	namespace := h.opts.String(NamespaceKey)
	if namespace == "" {
		namespace = h.d.identity
	}

	target := ""
	if len(args) > 0 {
		target = strings.TrimSpace(args[0])
	}
	if target == "" || target == helpName {
		h.overview(namespace)
		return nil
	}
	h.describe(namespace, target)
	return nil
}

func (h *helpCommand) overview(namespace string) {
	out := h.d.stdout
	fmt.Fprintf(out, "usage: %s <command> [options] [args]\n", h.d.identity)
	h.listCommands(out, namespace)
	h.listGlobalOptions(out)
}

// listCommands merges the effective namespace with the dispatcher
// identity, namespace entries winning on duplicate names.
func (h *helpCommand) listCommands(out io.Writer, namespace string) {
	lister, ok := h.d.loader.(Lister)
	if !ok {
		return
	}

	entries := lister.Entries(namespace)
	if namespace != h.d.identity {
		entries = append(entries, lister.Entries(h.d.identity)...)
	}
	seen := make(map[string]bool, len(entries))
	rows := make([]Registration, 0, len(entries))
	for _, reg := range entries {
		if seen[reg.Name] {
			continue
		}
		seen[reg.Name] = true
		rows = append(rows, reg)
	}
	if len(rows) == 0 {
		return
	}
	sort.Slice(rows, func(i, j int) bool {
		return rows[i].Name < rows[j].Name
	})

	width := 0
	names := make([]string, len(rows))
	for i, reg := range rows {
		names[i] = strcase.KebabCase(reg.Name)
		if len(names[i]) > width {
			width = len(names[i])
		}
	}
	fmt.Fprintln(out)
	fmt.Fprintln(out, "commands:")
	for i, reg := range rows {
		fmt.Fprintf(out, "  %-*s  %s\n", width, names[i], reg.Summary)
	}
}

func (h *helpCommand) listGlobalOptions(out io.Writer) {
	if len(h.d.globalOptions) == 0 {
		return
	}
	fmt.Fprintln(out)
	fmt.Fprintln(out, "global options:")
	for _, sp := range h.d.globalOptions {
		fmt.Fprintf(out, "  %s\n", renderSpec(sp))
	}
}

// describe renders one command's usage, retrying under the dispatcher
// identity when the effective namespace misses.
func (h *helpCommand) describe(namespace, target string) {
	out := h.d.stdout
	cmd, err := h.d.loader.Load(namespace, target)
	if errors.Is(err, ErrNotFound) && namespace != h.d.identity {
		retryCmd, retryErr := h.d.loader.Load(h.d.identity, target)
		if retryErr == nil {
			cmd, err, namespace = retryCmd, nil, h.d.identity
		} else if !errors.Is(retryErr, ErrNotFound) {
			err = retryErr
		}
	}

	display := strcase.KebabCase(target)
	switch {
	case err == nil:
		h.describeCommand(out, namespace, target, display, cmd)
	case errors.Is(err, ErrNotFound):
		fmt.Fprintf(out, "unknown command: %s\n", display)
		h.overview(namespace)
	default:
		fmt.Fprintf(out, "command %s is installed but failed to load: %v\n", display, err)
	}
}

func (h *helpCommand) describeCommand(out io.Writer, namespace, name, display string, cmd Command) {
	fmt.Fprintf(out, "usage: %s %s [options] [args]\n", h.d.identity, display)
	if summary := h.summaryFor(namespace, name); summary != "" {
		fmt.Fprintf(out, "\n%s\n", summary)
	}

	specs := cmd.Options()
	if len(specs) == 0 {
		return
	}
	fmt.Fprintln(out)
	fmt.Fprintln(out, "options:")
	for _, sp := range specs {
		fmt.Fprintf(out, "  %s\n", renderSpec(sp))
	}
}

func (h *helpCommand) summaryFor(namespace, name string) string {
	lister, ok := h.d.loader.(Lister)
	if !ok {
		return ""
	}
	for _, reg := range lister.Entries(namespace) {
		if reg.Name == name {
			return reg.Summary
		}
	}
	return ""
}

func renderSpec(sp opt.Spec) string {
	parts := make([]string, 0, 1+len(sp.Aliases))
	parts = append(parts, dashed(sp.Name))
	for _, alias := range sp.Aliases {
		parts = append(parts, dashed(alias))
	}
	line := strings.Join(parts, ", ")
	switch sp.Arity {
	case opt.Single:
		line += " <value>"
	case opt.List:
		line += " <value>..."
	}
	return line
}

func dashed(name string) string {
	if utf8.RuneCountInString(name) == 1 {
		return "-" + name
	}
	return "--" + name
}
