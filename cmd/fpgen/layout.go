// Copyright 2026 go-fpguard Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import "fmt"

// Field is one architecturally meaningful bit field of a control
// register, named as in the Intel SDM.
type Field struct {
	Name string
	Bits []int // bit positions, low to high
}

// Layout describes the modeled bits of one register kind. Bits not
// covered by any field are reserved (or carry no determinism signal,
// like the MXCSR sticky flags) and fall outside the comparison mask.
type Layout struct {
	Label  string // diagnostic label, e.g. "MXCSR"
	Fields []Field
}

// Mask returns the comparison mask: every modeled bit set.
func (l Layout) Mask() uint16 {
	var m uint16
	for _, f := range l.Fields {
		for _, b := range f.Bits {
			m |= 1 << b
		}
	}
	return m
}

// Compose builds a control word from per-field values.
func (l Layout) Compose(values map[string]uint16) (uint16, error) {
	var word uint16
	for name, v := range values {
		f, ok := l.field(name)
		if !ok {
			return 0, fmt.Errorf("%s: unknown field %q", l.Label, name)
		}
		if v >= 1<<len(f.Bits) {
			return 0, fmt.Errorf("%s: value %d too wide for %d-bit field %q", l.Label, v, len(f.Bits), name)
		}
		for i, b := range f.Bits {
			if v&(1<<i) != 0 {
				word |= 1 << b
			}
		}
	}
	return word, nil
}

func (l Layout) field(name string) (Field, bool) {
	for _, f := range l.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

// mxcsrLayout models the MXCSR control bits. The sticky exception flags
// (bits 0-5) and the reserved bit 6 are deliberately absent, giving the
// 0xFF80 mask.
var mxcsrLayout = Layout{
	Label: "MXCSR",
	Fields: []Field{
		{Name: "IM", Bits: []int{7}},
		{Name: "DM", Bits: []int{8}},
		{Name: "ZM", Bits: []int{9}},
		{Name: "OM", Bits: []int{10}},
		{Name: "UM", Bits: []int{11}},
		{Name: "PM", Bits: []int{12}},
		{Name: "RC", Bits: []int{13, 14}},
		{Name: "FZ", Bits: []int{15}},
	},
}

// x87Layout models the x87 control word. Bits 6, 7 and 13-15 are
// reserved, giving the 0x1F3F mask.
var x87Layout = Layout{
	Label: "FPUCW",
	Fields: []Field{
		{Name: "IM", Bits: []int{0}},
		{Name: "DM", Bits: []int{1}},
		{Name: "ZM", Bits: []int{2}},
		{Name: "OM", Bits: []int{3}},
		{Name: "UM", Bits: []int{4}},
		{Name: "PM", Bits: []int{5}},
		{Name: "PC", Bits: []int{8, 9}},
		{Name: "RC", Bits: []int{10, 11}},
		{Name: "X", Bits: []int{12}},
	},
}

// Profile is one accepted configuration of a register: either composed
// from field settings or given as a raw word (historical values carried
// over verbatim, masked at emit time).
type Profile struct {
	Name   string
	Raw    uint16
	Fields map[string]uint16
}

// Value resolves the profile against its layout, pre-masked.
func (p Profile) Value(l Layout) (uint16, error) {
	if p.Fields == nil {
		return p.Raw & l.Mask(), nil
	}
	w, err := l.Compose(p.Fields)
	if err != nil {
		return 0, err
	}
	return w & l.Mask(), nil
}

// KindSpec binds a layout to its accepted profiles. Canonical names the
// profile the corrector resets to.
type KindSpec struct {
	Layout    Layout
	A, B      Profile
	Canonical Profile
}

// Table is one pattern-table variant to generate.
type Table struct {
	FileName string
	BuildTag string
	Comment  string
	SnanTrap bool
	MXCSR    KindSpec
	X87      KindSpec
}

// tables returns the standard and signaling-NaN table definitions.
func tables() []Table {
	maskedOnly := []string{"PM", "UM", "OM", "DM"}
	allMasked := []string{"PM", "UM", "OM", "ZM", "DM", "IM"}
	simFrame := func() map[string]uint16 { return fieldSet(maskedOnly) }
	def := func() map[string]uint16 { return fieldSet(allMasked) }

	std := Table{
		FileName: "patterns_std.go",
		BuildTag: "!snantrap",
		Comment: "Accepted sync-safe control words for the standard (quiet-NaN) build.\n" +
			"A is the %s profile, B the %s profile.",
		MXCSR: KindSpec{
			Layout:    mxcsrLayout,
			A:         Profile{Name: "simFrame", Fields: simFrame()},
			B:         Profile{Name: "default", Fields: def()},
			Canonical: Profile{Name: "default", Fields: def()},
		},
		X87: KindSpec{
			Layout:    x87Layout,
			A:         Profile{Name: "simFrame", Fields: simFrame()},
			B:         Profile{Name: "default", Fields: def()},
			Canonical: Profile{Name: "default", Fields: def()},
		},
	}

	// The signaling-NaN values are the historical control words with the
	// invalid, divide-by-zero and overflow exceptions unmasked.
	snan := Table{
		FileName: "patterns_snan.go",
		BuildTag: "snantrap",
		Comment: "Accepted sync-safe control words for the signaling-NaN build: the\n" +
			"invalid, divide-by-zero and overflow exceptions run unmasked so that\n" +
			"signaling NaNs trap instead of propagating. Values are pre-masked.\n" +
			"A is the %s profile, B the %s profile.",
		SnanTrap: true,
		MXCSR: KindSpec{
			Layout:    mxcsrLayout,
			A:         Profile{Name: "simFrame", Raw: 0x1937},
			B:         Profile{Name: "default", Raw: 0x1925},
			Canonical: Profile{Name: "default", Raw: 0x1925},
		},
		X87: KindSpec{
			Layout:    x87Layout,
			A:         Profile{Name: "simFrame", Raw: 0x0072},
			B:         Profile{Name: "default", Raw: 0x003F},
			Canonical: Profile{Name: "simFrame", Raw: 0x0072},
		},
	}

	return []Table{std, snan}
}

func fieldSet(names []string) map[string]uint16 {
	m := make(map[string]uint16, len(names))
	for _, n := range names {
		m[n] = 1
	}
	return m
}
