package dispatch

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/danmuck/dispatch/internal/testutil/testlog"
	"github.com/danmuck/dispatch/opt"
)

// helpOnlyLoader serves the built-in help and nothing else. It does not
// implement Lister.
type helpOnlyLoader struct {
	d *Dispatcher
}

func (l *helpOnlyLoader) Load(namespace, name string) (Command, error) {
	if name == helpName {
		return &helpCommand{d: l.d}, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrNotFound, DefaultKey(namespace, name))
}

func demoRegistry(t *testing.T) *Registry {
	t.Helper()
	reg := NewRegistry()
	cases := []Registration{
		{
			Name:    "DumpMe",
			Summary: "dump the execution context",
			New:     func() (Command, error) { return &stubCommand{}, nil },
		},
		{
			Name:    "Escape",
			Summary: "escape text for a target context",
			New: func() (Command, error) {
				return &stubCommand{specs: opt.MustSpecs("mode|m=s", "label|l=s@")}, nil
			},
		},
	}
	for _, entry := range cases {
		if err := reg.Register("textctl", entry); err != nil {
			t.Fatalf("register %s: %v", entry.Name, err)
		}
	}
	return reg
}

func TestHelpOverviewListing(t *testing.T) {
	testlog.Start(t)
	out := &bytes.Buffer{}
	d := New(Config{Identity: "textctl", Loader: demoRegistry(t), Stdout: out})

	if err := d.Run("", nil); err != nil {
		t.Fatalf("run: %v", err)
	}
	want := "usage: textctl <command> [options] [args]\n" +
		"\n" +
		"commands:\n" +
		"  dump-me  dump the execution context\n" +
		"  escape   escape text for a target context\n" +
		"  help     describe available commands\n" +
		"\n" +
		"global options:\n" +
		"  --help, -h, -?\n" +
		"  --verbose, -v\n"
	if out.String() != want {
		t.Fatalf("unexpected overview:\ngot:\n%s\nwant:\n%s", out.String(), want)
	}
}

func TestHelpAboutItselfRendersOverview(t *testing.T) {
	testlog.Start(t)
	out := &bytes.Buffer{}
	d := New(Config{Identity: "textctl", Loader: demoRegistry(t), Stdout: out})

	if err := d.Run("", []string{"help", "help"}); err != nil {
		t.Fatalf("run: %v", err)
	}
	if !strings.Contains(out.String(), "commands:") {
		t.Fatalf("expected the overview listing:\n%s", out.String())
	}
}

func TestHelpDescribeRendersOptions(t *testing.T) {
	testlog.Start(t)
	out := &bytes.Buffer{}
	d := New(Config{Identity: "textctl", Loader: demoRegistry(t), Stdout: out})

	if err := d.Run("", []string{"help", "escape"}); err != nil {
		t.Fatalf("run: %v", err)
	}
	want := "usage: textctl escape [options] [args]\n" +
		"\n" +
		"escape text for a target context\n" +
		"\n" +
		"options:\n" +
		"  --mode, -m <value>\n" +
		"  --label, -l <value>...\n"
	if out.String() != want {
		t.Fatalf("unexpected description:\ngot:\n%s\nwant:\n%s", out.String(), want)
	}
}

func TestHelpUnknownCommandFallsBackToOverview(t *testing.T) {
	testlog.Start(t)
	out := &bytes.Buffer{}
	d := New(Config{Identity: "textctl", Loader: demoRegistry(t), Stdout: out})

	if err := d.Run("", []string{"help", "no-such"}); err != nil {
		t.Fatalf("run: %v", err)
	}
	if !strings.Contains(out.String(), "unknown command: no-such") {
		t.Fatalf("missing unknown-command line:\n%s", out.String())
	}
	if !strings.Contains(out.String(), "commands:") {
		t.Fatalf("expected the overview after the unknown-command line:\n%s", out.String())
	}
}

func TestHelpShowsLoadFailureDetail(t *testing.T) {
	testlog.Start(t)
	reg := demoRegistry(t)
	err := reg.Register("textctl", Registration{
		Name:    "Broken",
		Summary: "never loads",
		New:     func() (Command, error) { return nil, errors.New("missing dependency") },
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	out := &bytes.Buffer{}
	d := New(Config{Identity: "textctl", Loader: reg, Stdout: out})

	if err := d.Run("", []string{"help", "broken"}); err != nil {
		t.Fatalf("run: %v", err)
	}
	if !strings.Contains(out.String(), "command broken is installed but failed to load") {
		t.Fatalf("missing load-failure line:\n%s", out.String())
	}
	if !strings.Contains(out.String(), "missing dependency") {
		t.Fatalf("load-failure detail dropped:\n%s", out.String())
	}
}

func TestHelpDescribeRetriesUnderIdentity(t *testing.T) {
	testlog.Start(t)
	reg := NewRegistry()
	err := reg.Register("dispatch", Registration{
		Name:    "Tool",
		Summary: "identity-scoped tool",
		New:     func() (Command, error) { return &stubCommand{}, nil },
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	out := &bytes.Buffer{}
	d := New(Config{Loader: reg, Stdout: out})

	if err := d.Run("Foo", []string{"--help", "tool"}); err != nil {
		t.Fatalf("run: %v", err)
	}
	if !strings.Contains(out.String(), "usage: dispatch tool [options] [args]") {
		t.Fatalf("identity retry did not describe the command:\n%s", out.String())
	}
	if !strings.Contains(out.String(), "identity-scoped tool") {
		t.Fatalf("summary missing:\n%s", out.String())
	}
}

func TestHelpOverviewMergesNamespaceAndIdentity(t *testing.T) {
	testlog.Start(t)
	reg := NewRegistry()
	err := reg.Register("Foo", Registration{
		Name:    "Widget",
		Summary: "make widgets",
		New:     func() (Command, error) { return &stubCommand{}, nil },
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	out := &bytes.Buffer{}
	d := New(Config{Loader: reg, Stdout: out})

	if err := d.Run("Foo", nil); err != nil {
		t.Fatalf("run: %v", err)
	}
	if !strings.Contains(out.String(), "widget  make widgets") {
		t.Fatalf("namespace command missing from listing:\n%s", out.String())
	}
	if !strings.Contains(out.String(), "help    describe available commands") {
		t.Fatalf("identity command missing from listing:\n%s", out.String())
	}
}

func TestHelpWithoutListerRendersUsageOnly(t *testing.T) {
	testlog.Start(t)
	out := &bytes.Buffer{}
	l := &helpOnlyLoader{}
	d := New(Config{Loader: l, Stdout: out})
	l.d = d

	if err := d.Run("", nil); err != nil {
		t.Fatalf("run: %v", err)
	}
	if !strings.Contains(out.String(), "usage: dispatch <command> [options] [args]") {
		t.Fatalf("usage line missing:\n%s", out.String())
	}
	if strings.Contains(out.String(), "commands:") {
		t.Fatalf("listing rendered without a Lister:\n%s", out.String())
	}
	if !strings.Contains(out.String(), "global options:") {
		t.Fatalf("global options missing:\n%s", out.String())
	}
}
