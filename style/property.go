package style

import (
	"fmt"
	"strings"
)

// Property is a raw value for a CSS property. For example, with
//
//	color: black
//
// a property value of "black" is set. The main purpose of wrapping
// the raw string value into type Property is to provide a set of
// convenient type conversion functions and other helpers.
type Property string

// NullStyle is an empty property value.
const NullStyle Property = ""

func (p Property) String() string {
	return string(p)
}

// IsInitial denotes if a property is of inheritence-type "initial".
func (p Property) IsInitial() bool {
	return p == "initial"
}

// IsInherit denotes if a property is of inheritence-type "inherit".
func (p Property) IsInherit() bool {
	return p == "inherit"
}

// IsEmpty checks wether a property is empty, i.e. the null-string.
func (p Property) IsEmpty() bool {
	return p == ""
}

// KeyValue is a container for a single style declaration.
type KeyValue struct {
	Key   string
	Value Property
}

// --- Declaration validation -------------------------------------------

// IsCustomProperty returns true for CSS custom properties ("--accent").
func IsCustomProperty(key string) bool {
	return strings.HasPrefix(key, "--") && len(key) > 2
}

// IsKnownProperty is a predicate wether the editing surface accepts a
// property key. Custom properties are always accepted.
func IsKnownProperty(key string) bool {
	if IsCustomProperty(key) {
		return true
	}
	_, ok := groupNameFromPropertyKey[key]
	return ok
}

// ValidateSelector rejects selectors which cannot be serialized into a
// rule without escaping the rule's own syntax. The inspector does not
// parse selector grammar; it only guards the materialization boundary.
func ValidateSelector(selector string) error {
	s := strings.TrimSpace(selector)
	if s == "" {
		return fmt.Errorf("style: empty selector")
	}
	if strings.ContainsAny(s, "{};") {
		return fmt.Errorf("style: malformed selector %q", selector)
	}
	return nil
}

// ValidateDeclaration rejects unknown property keys and values which would
// break out of a serialized declaration block.
func ValidateDeclaration(key string, value Property) error {
	k := strings.TrimSpace(key)
	if k == "" {
		return fmt.Errorf("style: empty property key")
	}
	if !IsKnownProperty(k) {
		return fmt.Errorf("style: unknown property %q", key)
	}
	v := strings.TrimSpace(value.String())
	if v == "" {
		return fmt.Errorf("style: empty value for property %q", key)
	}
	if strings.ContainsAny(v, "{}") {
		return fmt.Errorf("style: malformed value %q for property %q", value, key)
	}
	return nil
}

// --- Declaration lists ------------------------------------------------

// Declarations is an ordered set of style declarations with unique keys.
// Setting an existing key overwrites the value in place (last write wins)
// without changing the key's position. The zero value is ready to use.
type Declarations struct {
	keys []string
	vals map[string]Property
}

// NewDeclarations returns an empty declaration list.
func NewDeclarations() *Declarations {
	return &Declarations{}
}

// Len returns the number of declarations.
func (d *Declarations) Len() int {
	if d == nil {
		return 0
	}
	return len(d.keys)
}

// Get a declaration's value.
func (d *Declarations) Get(key string) (Property, bool) {
	if d == nil || d.vals == nil {
		return NullStyle, false
	}
	p, ok := d.vals[key]
	return p, ok
}

// Set a declaration. Overwrites an existing value, if present.
// Property values are always converted to lower case, mirroring how
// browsers normalize computed values.
func (d *Declarations) Set(key string, p Property) {
	p = Property(strings.ToLower(string(p)))
	if d.vals == nil {
		d.vals = make(map[string]Property)
	}
	if _, exists := d.vals[key]; !exists {
		d.keys = append(d.keys, key)
	}
	d.vals[key] = p
}

// Remove drops a declaration. Returns the removed value, if any.
func (d *Declarations) Remove(key string) (Property, bool) {
	if d == nil || d.vals == nil {
		return NullStyle, false
	}
	p, ok := d.vals[key]
	if !ok {
		return NullStyle, false
	}
	delete(d.vals, key)
	for i, k := range d.keys {
		if k == key {
			d.keys = append(d.keys[:i], d.keys[i+1:]...)
			break
		}
	}
	return p, true
}

// Each calls f for every declaration, in insertion order.
func (d *Declarations) Each(f func(key string, value Property)) {
	if d == nil {
		return
	}
	for _, k := range d.keys {
		f(k, d.vals[k])
	}
}

// KeyValues returns all declarations in insertion order.
func (d *Declarations) KeyValues() []KeyValue {
	if d == nil {
		return nil
	}
	r := make([]KeyValue, 0, len(d.keys))
	for _, k := range d.keys {
		r = append(r, KeyValue{k, d.vals[k]})
	}
	return r
}

// Map returns the declarations as a plain map.
func (d *Declarations) Map() map[string]Property {
	m := make(map[string]Property, d.Len())
	d.Each(func(k string, v Property) { m[k] = v })
	return m
}

// Clone returns a deep copy.
func (d *Declarations) Clone() *Declarations {
	c := NewDeclarations()
	d.Each(func(k string, v Property) { c.Set(k, v) })
	return c
}

// Serialize writes the declarations as CSS text, e.g.
//
//	color: blue; margin-top: 4px
//
func (d *Declarations) Serialize() string {
	var b strings.Builder
	first := true
	d.Each(func(k string, v Property) {
		if !first {
			b.WriteString("; ")
		}
		b.WriteString(k)
		b.WriteString(": ")
		b.WriteString(v.String())
		first = false
	})
	return b.String()
}

// ParseDeclarations parses inline-style-like CSS text ("color:red;…") into
// a declaration list. Declarations with empty keys or values are dropped;
// this is intentionally forgiving, matching how rendering engines treat
// broken style attributes.
func ParseDeclarations(text string) *Declarations {
	d := NewDeclarations()
	for _, decl := range strings.Split(text, ";") {
		decl = strings.TrimSpace(decl)
		if decl == "" {
			continue
		}
		key, val, ok := strings.Cut(decl, ":")
		if !ok {
			continue
		}
		key = strings.TrimSpace(key)
		val = strings.TrimSpace(val)
		if key == "" || val == "" {
			continue
		}
		d.Set(key, Property(val))
	}
	return d
}

func (d *Declarations) String() string {
	return "{ " + d.Serialize() + " }"
}
