/*
Package dom wraps HTML parse trees for in-page style editing.

Overview

The inspector operates on a live document without ever touching its
original source markup: it mutates the parsed tree — style attributes,
class lists, arbitrary attributes, element structure — and materializes
class rules into one managed <style> element (see DocumentSheet).

Elements are addressed three ways, with different lifetimes:

  - CSS selectors (cascadia), for queries and class-rule broadcasting;
  - node paths (child-index chains from the root), stable for as long as
    the structure above an element is unchanged, used by structural undo;
  - weak handles (see Registry), non-owning references that report absence
    once an element has been released, used by the history log.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/
package dom

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'lumos.dom'.
func tracer() tracing.Trace {
	return tracing.Select("lumos.dom")
}
