/*
Package store persists style caches and snapshots in a key/value byte
store.

The persistence layer is deliberately a degraded-mode collaborator of the
editing session, never an authority: a corrupt stored blob is discarded
wholesale and the subsystem reinitializes to empty, a write hitting the
storage quota surfaces as a warning while the in-memory state stays
authoritative. Nothing in this package is fatal.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2026 EstateFlow Digital. All rights reserved.
*/
package store

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'lumos.store'.
func tracer() tracing.Trace {
	return tracing.Select("lumos.store")
}
