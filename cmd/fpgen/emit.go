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

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/tools/imports"
)

// NoLower keeps the interior capitals of names like "simFrame".
var titleCaser = cases.Title(language.English, cases.NoLower)

const fileTemplate = `// Copyright 2026 go-fpguard Authors
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

// Code generated by fpgen. DO NOT EDIT.

//go:build {{.BuildTag}}

package fpguard

{{.Comment}}
const (
	mxcsrMask uint16 = {{.MXCSRMask}}
	mxcsrA    uint16 = {{.MXCSRA}}
	mxcsrB    uint16 = {{.MXCSRB}}

	x87Mask uint16 = {{.X87Mask}}
	x87A    uint16 = {{.X87A}}
	x87B    uint16 = {{.X87B}}
)

// Canonical single-precision reset values used by the corrector.
const (
	canonicalMXCSR uint16 = {{.CanonMXCSR}}
	canonicalX87CW uint16 = {{.CanonX87}}
)

// snanTrapEnabled selects whether the corrector re-arms trapping
// exception conditions after a reset.
const snanTrapEnabled = {{.SnanTrap}}
`

type fileData struct {
	BuildTag   string
	Comment    string
	MXCSRMask  string
	MXCSRA     string
	MXCSRB     string
	X87Mask    string
	X87A       string
	X87B       string
	CanonMXCSR string
	CanonX87   string
	SnanTrap   bool
}

func hex(v uint16) string { return fmt.Sprintf("0x%04X", v) }

// comment turns a table's comment format into a // block, with the
// profile names title-cased for readability.
func comment(t Table) string {
	text := fmt.Sprintf(t.Comment, titleCaser.String(t.MXCSR.A.Name), titleCaser.String(t.MXCSR.B.Name))
	lines := strings.Split(text, "\n")
	for i, l := range lines {
		lines[i] = "// " + l
	}
	return strings.Join(lines, "\n")
}

// render produces the formatted source for one pattern-table variant.
func render(t Table) ([]byte, error) {
	d := fileData{
		BuildTag: t.BuildTag,
		Comment:  comment(t),
		SnanTrap: t.SnanTrap,
	}

	var err error
	resolve := func(p Profile, l Layout) string {
		if err != nil {
			return ""
		}
		var v uint16
		v, err = p.Value(l)
		return hex(v)
	}
	d.MXCSRMask = hex(t.MXCSR.Layout.Mask())
	d.MXCSRA = resolve(t.MXCSR.A, t.MXCSR.Layout)
	d.MXCSRB = resolve(t.MXCSR.B, t.MXCSR.Layout)
	d.CanonMXCSR = resolve(t.MXCSR.Canonical, t.MXCSR.Layout)
	d.X87Mask = hex(t.X87.Layout.Mask())
	d.X87A = resolve(t.X87.A, t.X87.Layout)
	d.X87B = resolve(t.X87.B, t.X87.Layout)
	d.CanonX87 = resolve(t.X87.Canonical, t.X87.Layout)
	if err != nil {
		return nil, err
	}

	tmpl, err := template.New("patterns").Parse(fileTemplate)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, d); err != nil {
		return nil, err
	}
	return imports.Process(t.FileName, buf.Bytes(), nil)
}
