package cssom

import (
	"fmt"
	"strings"

	"github.com/EstateFlowDigital/lumos-inspector-sub001/style"
)

// RuleList is an interface to abstract away an ordered list of materialized
// style rules, as exposed by a host rendering surface. Implementations
// support appending a serialized rule at the end and deleting a rule at an
// index; deleting at index i shifts every rule after i down by one
// position. There is no in-place replace.
//
// See Repository for the cache layered on top.
type RuleList interface {
	AppendRule(selector string, cssText string) (int, error) // index of the new rule
	DeleteRule(index int) error                              // shifts subsequent rules down
	Len() int                                                // number of rules in the list
}

// A Rule is one materialized entry of a rule list.
type Rule struct {
	Selector string
	CSSText  string // serialized declaration block, without braces
}

// SerializeRule renders a rule the way it is materialized into a rule
// list, e.g.
//
//	.card { color: blue; margin-top: 4px }
//
func SerializeRule(selector string, decls *style.Declarations) string {
	return fmt.Sprintf("%s { %s }", strings.TrimSpace(selector), decls.Serialize())
}

// --- In-memory rule list ----------------------------------------------

// MemList is an in-memory RuleList. It is the reference implementation for
// the repository's index bookkeeping and the default list for headless
// sessions and tests.
type MemList struct {
	rules []Rule
}

// NewMemList returns an empty in-memory rule list.
func NewMemList() *MemList {
	return &MemList{}
}

// AppendRule is part of interface RuleList.
func (l *MemList) AppendRule(selector string, cssText string) (int, error) {
	l.rules = append(l.rules, Rule{Selector: selector, CSSText: cssText})
	return len(l.rules) - 1, nil
}

// DeleteRule is part of interface RuleList.
func (l *MemList) DeleteRule(index int) error {
	if index < 0 || index >= len(l.rules) {
		return fmt.Errorf("cssom: rule index %d out of range [0,%d)", index, len(l.rules))
	}
	l.rules = append(l.rules[:index], l.rules[index+1:]...)
	return nil
}

// Len is part of interface RuleList.
func (l *MemList) Len() int {
	return len(l.rules)
}

// Rule returns the rule at index.
func (l *MemList) Rule(index int) (Rule, bool) {
	if index < 0 || index >= len(l.rules) {
		return Rule{}, false
	}
	return l.rules[index], true
}

// Rules returns a copy of all rules, in list order.
func (l *MemList) Rules() []Rule {
	r := make([]Rule, len(l.rules))
	copy(r, l.rules)
	return r
}

var _ RuleList = &MemList{}
