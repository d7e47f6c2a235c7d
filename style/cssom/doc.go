/*
Package cssom manages the inspector's style rules.

Overview

Clients edit class styles through a Repository, which owns the canonical
selector → declarations cache and keeps it reflected, at all times, as
exactly one materialized rule per selector in a host rule list.

Rule lists, as exposed by live rendering surfaces, are append/delete-only
ordered collections: there is no in-place replace. CSS handling is
de-coupled by introducing an appropriate interface, RuleList, so that the
repository can be driven against an in-memory list (see MemList) as well
as against a managed style element of a live document (see package dom).
Having this interface imposes a performance hit. We will not trade
modularity and clarity for performance here; the rule counts of an editing
session are small.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/
package cssom

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'lumos.cssom'.
func tracer() tracing.Trace {
	return tracing.Select("lumos.cssom")
}
