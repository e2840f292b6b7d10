package dispatch

import (
	"io"
	"os"
	"strings"

	"github.com/danmuck/dispatch/argv"
	"github.com/danmuck/dispatch/opt"
)

// Config wires a Dispatcher.
type Config struct {
	// Identity is the dispatcher's own namespace; the built-in help
	// command registers under it.
	Identity string
	// DefaultCommand substitutes for a missing or empty leading token.
	DefaultCommand string
	// GlobalOptions are parsed off the stream before command
	// extraction.
	GlobalOptions []opt.Spec
	// Loader resolves commands. Nil means a fresh Registry.
	Loader Loader
	// Stderr receives the terminal diagnostic.
	Stderr io.Writer
	// Stdout receives built-in help output.
	Stdout io.Writer
	// Exit terminates the process on the terminal path.
	Exit func(code int)
}

// DefaultConfig returns dispatcher defaults.
func DefaultConfig() Config {
	return Config{
		Identity:       "dispatch",
		DefaultCommand: "help",
		GlobalOptions:  DefaultGlobalOptions(),
		Stderr:         os.Stderr,
		Stdout:         os.Stdout,
		Exit:           os.Exit,
	}
}

// DefaultGlobalOptions declares the stock global flags.
func DefaultGlobalOptions() []opt.Spec {
	return opt.MustSpecs("help|h|?", "verbose|v")
}

// Dispatcher runs the per-invocation pipeline: global options, command
// extraction, resolution, local options, context merge, invocation.
type Dispatcher struct {
	identity       string
	defaultCommand string
	globalOptions  []opt.Spec
	loader         Loader
	stderr         io.Writer
	stdout         io.Writer
	exit           func(code int)
}

// New builds a Dispatcher, filling zero config fields from
// DefaultConfig. When the loader is a Registry, the built-in help
// command registers under the dispatcher identity unless that slot is
// already taken.
func New(cfg Config) *Dispatcher {
	def := DefaultConfig()
	if strings.TrimSpace(cfg.Identity) == "" {
		cfg.Identity = def.Identity
	}
	if strings.TrimSpace(cfg.DefaultCommand) == "" {
		cfg.DefaultCommand = def.DefaultCommand
	}
	if cfg.GlobalOptions == nil {
		cfg.GlobalOptions = def.GlobalOptions
	}
	if cfg.Loader == nil {
		cfg.Loader = NewRegistry()
	}
	if cfg.Stderr == nil {
		cfg.Stderr = def.Stderr
	}
	if cfg.Stdout == nil {
		cfg.Stdout = def.Stdout
	}
	if cfg.Exit == nil {
		cfg.Exit = def.Exit
	}

	d := &Dispatcher{
		identity:       cfg.Identity,
		defaultCommand: cfg.DefaultCommand,
		globalOptions:  cfg.GlobalOptions,
		loader:         cfg.Loader,
		stderr:         cfg.Stderr,
		stdout:         cfg.Stdout,
		exit:           cfg.Exit,
	}
	if reg, ok := cfg.Loader.(*Registry); ok {
		d.registerBuiltinHelp(reg)
	}
	return d
}

func (d *Dispatcher) registerBuiltinHelp(reg *Registry) {
	if _, ok := reg.Lookup(d.identity, helpName); ok {
		return
	}
	_ = reg.Register(d.identity, Registration{
		Name:    helpName,
		Summary: "describe available commands",
		New:     func() (Command, error) { return &helpCommand{d: d}, nil },
	})
}

// Run dispatches one invocation from raw tokens. An empty namespace
// defaults to the dispatcher identity; a missing or empty leading token
// substitutes the default command. The handler's own error is returned
// unchanged.
func (d *Dispatcher) Run(namespace string, tokens []string) error {
	namespace = d.effectiveNamespace(namespace)
	stream := argv.New(tokens)
	global := opt.Parse(d.globalOptions, stream)

	rawCommand, _ := stream.Shift()
	if strings.TrimSpace(rawCommand) == "" {
		rawCommand = d.defaultCommand
	}

	cmd, err := d.resolve(namespace, rawCommand, global.Bool("help"), stream)
	if err != nil {
		return err
	}
	return d.invoke(namespace, cmd, global, stream)
}

// RunDirect dispatches a caller-supplied handler, skipping extraction
// and resolution. Single-command tools keep both option tiers and the
// execution context without a registry.
func (d *Dispatcher) RunDirect(namespace string, cmd Command, tokens []string) error {
	namespace = d.effectiveNamespace(namespace)
	stream := argv.New(tokens)
	global := opt.Parse(d.globalOptions, stream)
	return d.invoke(namespace, cmd, global, stream)
}

func (d *Dispatcher) effectiveNamespace(namespace string) string {
	namespace = strings.TrimSpace(namespace)
	if namespace == "" {
		return d.identity
	}
	return namespace
}

func (d *Dispatcher) invoke(namespace string, cmd Command, global opt.Set, stream *argv.Stream) error {
	local := opt.Parse(cmd.Options(), stream)
	ctx := global.Merge(local)
	ctx[NamespaceKey] = opt.StringValue(namespace)
	cmd.SetOptions(ctx)

	// The built-in help receives its target in canonical form.
	if _, ok := cmd.(*helpCommand); ok {
		if lead, ok := stream.Shift(); ok {
			stream.Unshift(Normalize(lead))
		}
	}
	return cmd.Run(stream.Tokens())
}
