package dispatch

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/danmuck/dispatch/argv"
)

// helpName is the reserved canonical name of the fallback command. It
// bypasses normalization when help is requested explicitly.
const helpName = "Help"

// ErrHelpUnavailable reports that neither the requested command nor the
// dispatcher's own help command could be loaded.
var ErrHelpUnavailable = errors.New("dispatch: help command unavailable")

// resolve locates the handler for one invocation. Whenever the resolved
// handler is expected to describe the command instead of being it, the
// raw command form goes back onto the stream front first.
func (d *Dispatcher) resolve(namespace, rawCommand string, helpRequested bool, stream *argv.Stream) (Command, error) {
	candidate := Normalize(rawCommand)
	if helpRequested {
		stream.Unshift(rawCommand)
		candidate = helpName
	}

	cmd, err := d.loader.Load(namespace, candidate)
	if err == nil {
		return cmd, nil
	}
	if errors.Is(err, ErrNotFound) {
		log.Debug().Str("namespace", namespace).Str("command", candidate).Msg("command_not_found")
	} else {
		log.Warn().Err(err).Str("namespace", namespace).Str("command", candidate).Msg("command_load_failed")
	}

	if !helpRequested {
		stream.Unshift(rawCommand)
	}
	cmd, err = d.loader.Load(d.identity, helpName)
	if err == nil {
		return cmd, nil
	}
	log.Debug().Err(err).Str("namespace", d.identity).Msg("help_fallback_failed")

	return nil, d.failHelp()
}

// failHelp writes the fixed terminal diagnostic and invokes the exit
// hook. The returned error matters only when a test hook declines to
// terminate.
func (d *Dispatcher) failHelp() error {
	fmt.Fprintln(d.stderr, "help command is missing or broken.")
	fmt.Fprintln(d.stderr, "prerequisite components may not be installed.")
	fmt.Fprintln(d.stderr, "cannot continue.")
	d.exit(1)
	return ErrHelpUnavailable
}
