// Package css provides an option type for CSS dimension values, plus a
// forgiving parser for the dimension strings found in style declarations.
//
// A CSS length is not just a number: it may be auto, inherit, initial, a
// fixed length in one of several units, or a percentage. DimenT makes
// these cases explicit so clients cannot accidentally compute with a
// keyword value.
//
// ___________________________________________________________________________
//
// License
//
// Governed by a 3-Clause BSD license. License file may be found in the root
// folder of this module.
//
// Copyright © 2026 EstateFlow Digital. All rights reserved.
package css

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/npillmayer/tyse/core/dimen"
	"github.com/npillmayer/tyse/core/percent"
)

const (
	dimenNone uint32 = 0

	dimenAbsolute uint32 = 0x0001
	dimenAuto     uint32 = 0x0002
	dimenInherit  uint32 = 0x0003
	dimenInitial  uint32 = 0x0004
	kindMask      uint32 = 0x000f

	dimenEM      uint32 = 0x0100
	dimenREM     uint32 = 0x0200
	dimenVW      uint32 = 0x0300
	dimenVH      uint32 = 0x0400
	dimenPercent uint32 = 0x0900
	relativeMask uint32 = 0xff00
)

// Pixels are specified in device-independent units: one px is 3/4 of a
// typographic point.
const px = dimen.PT * 3 / 4

// DimenT is an option type for CSS dimensions.
//
//	type DimenT
//	    = None
//	    | Auto
//	    | Inherit
//	    | Initial
//	    | JustDimen dimen
//	    | Percentage Percent
//	    | FontRel unit
//	    | ViewRel unit
type DimenT struct {
	d     dimen.DU
	pcnt  percent.Percent
	rel   float64
	flags uint32
}

// None is the zero DimenT: no value given.
func None() DimenT {
	return DimenT{}
}

func Auto() DimenT {
	return DimenT{flags: dimenAuto}
}

func Inherit() DimenT {
	return DimenT{flags: dimenInherit}
}

func Initial() DimenT {
	return DimenT{flags: dimenInitial}
}

// JustDimen creates a CSS dimension with a fixed value of x.
func JustDimen(x dimen.DU) DimenT {
	return DimenT{d: x, flags: dimenAbsolute}
}

// Pixels creates a fixed CSS dimension from a pixel count.
func Pixels(n float64) DimenT {
	return JustDimen(dimen.DU(math.Round(n * float64(px))))
}

// Percentage creates a CSS dimension with a %-relative value.
func Percentage(n percent.Percent) DimenT {
	return DimenT{pcnt: n, flags: dimenPercent}
}

// ---------------------------------------------------------------------------

// ParseDimen parses the textual form of a CSS dimension: the keywords
// auto, inherit and initial, fixed lengths in px, pt, em or rem, viewport
// units vw and vh, and percentages. Fractional percentages are rounded to
// whole percent. A unit-less "0" parses as zero length; anything else
// without a recognized unit is an error.
func ParseDimen(s string) (DimenT, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	switch s {
	case "":
		return None(), nil
	case "auto":
		return Auto(), nil
	case "inherit":
		return Inherit(), nil
	case "initial":
		return Initial(), nil
	case "0":
		return JustDimen(0), nil
	}
	unit, flags := "", dimenNone
	switch {
	case strings.HasSuffix(s, "%"):
		unit, flags = "%", dimenPercent
	case strings.HasSuffix(s, "px"):
		unit, flags = "px", dimenAbsolute
	case strings.HasSuffix(s, "pt"):
		unit, flags = "pt", dimenAbsolute
	case strings.HasSuffix(s, "rem"):
		unit, flags = "rem", dimenREM
	case strings.HasSuffix(s, "em"):
		unit, flags = "em", dimenEM
	case strings.HasSuffix(s, "vw"):
		unit, flags = "vw", dimenVW
	case strings.HasSuffix(s, "vh"):
		unit, flags = "vh", dimenVH
	default:
		return None(), fmt.Errorf("css: dimension %q has no recognized unit", s)
	}
	n, err := strconv.ParseFloat(strings.TrimSuffix(s, unit), 64)
	if err != nil {
		return None(), fmt.Errorf("css: malformed dimension %q", s)
	}
	switch flags {
	case dimenPercent:
		d := Percentage(percent.FromInt(int(math.Round(n))))
		d.rel = n
		return d, nil
	case dimenAbsolute:
		if unit == "px" {
			return Pixels(n), nil
		}
		return JustDimen(dimen.DU(math.Round(n * float64(dimen.PT)))), nil
	default:
		return DimenT{rel: n, flags: flags}, nil
	}
}

// ---------------------------------------------------------------------------

// IsNone reports wether no value is present.
func (d DimenT) IsNone() bool {
	return d.flags == dimenNone
}

// IsAuto reports wether d holds the keyword auto.
func (d DimenT) IsAuto() bool {
	return d.flags&kindMask == dimenAuto
}

// IsAbsolute reports wether d holds a fixed length.
func (d DimenT) IsAbsolute() bool {
	return d.flags&kindMask == dimenAbsolute
}

// IsPercent reports wether d holds a percentage.
func (d DimenT) IsPercent() bool {
	return d.flags&relativeMask == dimenPercent
}

// IsRelative reports wether d depends on context (percentage, font- or
// viewport-relative).
func (d DimenT) IsRelative() bool {
	return d.flags&relativeMask != 0
}

// UnwrapDU returns the fixed length of an absolute dimension, and wether
// the dimension is absolute at all.
func (d DimenT) UnwrapDU() (dimen.DU, bool) {
	return d.d, d.IsAbsolute()
}

// UnwrapPercent returns the percentage of a %-relative dimension, and
// wether the dimension is %-relative at all.
func (d DimenT) UnwrapPercent() (percent.Percent, bool) {
	return d.pcnt, d.IsPercent()
}

// AsPixels resolves d to device-independent pixels. Percentages resolve
// against base (itself in pixels); font- and viewport-relative units
// resolve against the given em size and viewport extent. Keyword values
// and None report false.
func (d DimenT) AsPixels(base, em, viewport float64) (float64, bool) {
	switch {
	case d.IsAbsolute():
		return float64(d.d) / float64(px), true
	case d.IsPercent():
		return base * d.rel / 100, true
	case d.flags&relativeMask == dimenEM || d.flags&relativeMask == dimenREM:
		return d.rel * em, true
	case d.flags&relativeMask == dimenVW || d.flags&relativeMask == dimenVH:
		return d.rel * viewport / 100, true
	}
	return 0, false
}

func (d DimenT) String() string {
	switch d.flags & kindMask {
	case dimenAuto:
		return "auto"
	case dimenInherit:
		return "inherit"
	case dimenInitial:
		return "initial"
	case dimenAbsolute:
		return strconv.FormatFloat(float64(d.d)/float64(px), 'f', -1, 64) + "px"
	}
	switch d.flags & relativeMask {
	case dimenPercent:
		return strconv.FormatFloat(d.rel, 'f', -1, 64) + "%"
	case dimenEM:
		return strconv.FormatFloat(d.rel, 'f', -1, 64) + "em"
	case dimenREM:
		return strconv.FormatFloat(d.rel, 'f', -1, 64) + "rem"
	case dimenVW:
		return strconv.FormatFloat(d.rel, 'f', -1, 64) + "vw"
	case dimenVH:
		return strconv.FormatFloat(d.rel, 'f', -1, 64) + "vh"
	}
	return "<none>"
}

// --- Expression matching ---------------------------------------------------

// DimenPatterns names the result for each DimenT case when matching with
// DimenPattern.
type DimenPatterns[T any] struct {
	None    T
	Auto    T
	Inherit T
	Initial T
	Just    T
	Default T
}

// DimenPattern starts a match expression on a DimenT.
func DimenPattern[T any](d DimenT) *MatchExpr[T] {
	return &MatchExpr[T]{dimen: d}
}

type MatchExpr[T any] struct {
	dimen DimenT
}

// OneOf selects the pattern matching the dimension's case. Relative
// dimensions select Default.
func (m *MatchExpr[T]) OneOf(patterns DimenPatterns[T]) T {
	switch {
	case m.dimen.flags == dimenNone:
		return patterns.None
	case m.dimen.flags&kindMask == dimenAuto:
		return patterns.Auto
	case m.dimen.flags&kindMask == dimenAbsolute:
		return patterns.Just
	case m.dimen.flags&kindMask == dimenInitial:
		return patterns.Initial
	case m.dimen.flags&kindMask == dimenInherit:
		return patterns.Inherit
	}
	return patterns.Default
}

// With binds the fixed length of the dimension, if any, to du.
func (m *MatchExpr[T]) With(du *dimen.DU) *MatchExpr[T] {
	*du = m.dimen.d
	return m
}

// Const is a convenience for literal results inside a match.
func (m *MatchExpr[T]) Const(x T) T {
	return x
}
