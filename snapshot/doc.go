/*
Package snapshot captures bounded, comparable views of style-relevant
state and computes structural diffs between two such views.

A snapshot records, for a capped set of target elements, a deterministic
selector derived from the element's identity, a fixed allow-list of
computed style properties, the element's own inline overrides, and its
layout box. Two snapshots compare by derived selector: elements present
on one side only turn up as added or removed, elements present on both
sides contribute one change record per differing property.

Computed values are resolved by a small cascade: user-agent defaults,
overlaid by the matching rules of a rule provider in list order, overlaid
by the element's inline declarations. Layout boxes come from a
host-provided Measurer, or are estimated from the computed width and
height when no measurer is available.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2026 EstateFlow Digital. All rights reserved.
*/
package snapshot

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'lumos.snapshot'.
func tracer() tracing.Trace {
	return tracing.Select("lumos.snapshot")
}
