/*
Package editor wires the inspector's subsystems into one editing session:
a live document, the rule repository materializing class styles into the
document's managed style element, the bounded undo/redo log, the snapshot
engine, and the persistence store.

Every edit operation of a Session applies its mutation and appends the
matching history entry in one step, so undo/redo always has a complete
record. Class-rule edits broadcast through the materialized rule: every
element sharing the class is affected by the one rule, not by per-element
mutation.

A session owns exactly one instance of each subsystem. Construct one per
edited document and inject it into whatever calls it.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2026 EstateFlow Digital. All rights reserved.
*/
package editor

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'lumos.editor'.
func tracer() tracing.Trace {
	return tracing.Select("lumos.editor")
}
