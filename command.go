package dispatch

import "github.com/danmuck/dispatch/opt"

// NamespaceKey is the reserved option name carrying the effective
// namespace in a handler's execution context. It overrides any
// handler-declared option of the same name.
const NamespaceKey = "namespace"

// Command is the handler contract for one dispatchable action.
// SetOptions attaches the merged execution context before Run.
type Command interface {
	Options() []opt.Spec
	SetOptions(opts opt.Set)
	Run(args []string) error
}

// Factory constructs a fresh handler instance per load. A non-nil
// error or a nil command classifies the load as failed.
type Factory func() (Command, error)

// Registration is the contract for handler identity and display data.
type Registration struct {
	Name    string
	Summary string
	New     Factory
}
