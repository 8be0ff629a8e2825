// Package layout defines the interface between the syntax tree and an
// external layout engine: the read-only [Context] handed to every layout
// call and the [Command] values layout produces. The engine that turns
// commands into geometry lives outside this module.
package layout

import "context"

// Resources lets a model obtain external data during layout. Load may
// block; implementations must honor ctx cancellation. This is the one
// sanctioned suspension point the context exposes.
type Resources interface {
	Load(ctx context.Context, name string) ([]byte, error)
}

// Context is the engine-provided input to a layout call. It is borrowed
// read-only for the whole traversal; models must not assume exclusive
// access to it or mutate anything reachable from it.
type Context struct {
	Resources Resources
}

// Command is one layout instruction. The set is open: engines interpret
// the primitive commands below plus any they define themselves; this
// module never interprets commands.
type Command interface {
	String() string
}

// Commands is the ordered output of one layout call.
type Commands []Command
