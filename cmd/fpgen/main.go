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

// Command fpgen generates the accepted-pattern table sources of the
// fpguard package from the declarative register layouts in layout.go.
// Run via go generate in the fpguard package.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
)

func main() {
	out := flag.String("out", ".", "directory to write the generated pattern files to")
	flag.Parse()

	for _, tbl := range tables() {
		src, err := render(tbl)
		if err != nil {
			fmt.Fprintf(os.Stderr, "fpgen: %s: %v\n", tbl.FileName, err)
			os.Exit(1)
		}
		path := filepath.Join(*out, tbl.FileName)
		if err := os.WriteFile(path, src, 0o644); err != nil {
			fmt.Fprintf(os.Stderr, "fpgen: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("wrote %s\n", path)
	}
}
