/*
Package history implements the inspector's undo/redo log.

Overview

The log records reversible commands for every style, class, attribute and
structural mutation of an editing session, decoupled from which subsystem
produced the mutation: entries carry enough state (old value, new value,
weak element handle, structural payload) to apply their inverse effect on
undo and their forward effect on redo, dispatched by entry type.

The log is bounded. Appending truncates the stale redo branch (everything
strictly after the cursor), evicts from the front when the capacity is
exceeded, and notifies subscribers only after internal state has been
fully updated.

Entries referring to elements do so through weak handles: if the element
is no longer retained when a step is replayed, the step degrades to a
documented no-op which still consumes a cursor position.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/
package history

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'lumos.history'.
func tracer() tracing.Trace {
	return tracing.Select("lumos.history")
}
