/*
Package style holds the CSS value model of the inspector: raw property
values, the registry of editable properties, and user-agent defaults.

Overview

The inspector edits a fixed, known set of CSS properties (layout,
typography, color). We make no attempt at being a general CSS engine;
the registry in this package is the single source of truth for which
property keys the editing surface accepts, and how they are grouped
for display and defaulting.

Property values are kept as raw strings (type Property), with conversion
helpers where the core needs typed access (colors, dimensions). Validation
of declarations happens here, at the lowest level, so that every consumer
(rule repository, inline-style editing, snapshot capture) rejects the same
inputs.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/
package style

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'lumos.style'.
func tracer() tracing.Trace {
	return tracing.Select("lumos.style")
}
