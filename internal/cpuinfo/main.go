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

// Package main provides a diagnostic tool to print the floating-point
// control state as the fpguard package sees it.
package main

import (
	"fmt"
	"runtime"

	"golang.org/x/sys/cpu"

	"github.com/ajroetker/go-fpguard/fpguard"
)

func main() {
	runtime.LockOSThread()

	fmt.Printf("GOOS: %s\n", runtime.GOOS)
	fmt.Printf("GOARCH: %s\n", runtime.GOARCH)
	fmt.Printf("NumCPU: %d\n", runtime.NumCPU())
	fmt.Println()

	kinds := fpguard.Kinds()
	if len(kinds) == 0 {
		fmt.Println("fpguard: no supported register model on this platform")
		return
	}

	env, _ := fpguard.Snapshot()
	fmt.Println("=== fpguard control-register snapshot ===")
	for _, k := range kinds {
		p := fpguard.PatternFor(k)
		v := env.Value(k)
		verdict := "MISMATCH"
		if p.Accepts(v) {
			verdict = "ok"
		}
		fmt.Printf("  %-5s 0x%04X  accepted 0x%04X or 0x%04X under mask 0x%04X  %s\n",
			k, v, p.A, p.B, p.Mask, verdict)
	}
	fmt.Println()

	if runtime.GOARCH == "amd64" {
		printAMD64Features()
	}
}

func printAMD64Features() {
	fmt.Println("=== golang.org/x/sys/cpu.X86 ===")
	fmt.Printf("  HasSSE2:    %v (baseline for amd64)\n", cpu.X86.HasSSE2)
	fmt.Printf("  HasSSE3:    %v\n", cpu.X86.HasSSE3)
	fmt.Printf("  HasSSE41:   %v\n", cpu.X86.HasSSE41)
	fmt.Printf("  HasSSE42:   %v\n", cpu.X86.HasSSE42)
	fmt.Printf("  HasAVX:     %v\n", cpu.X86.HasAVX)
	fmt.Printf("  HasAVX2:    %v\n", cpu.X86.HasAVX2)
	fmt.Printf("  HasAVX512F: %v\n", cpu.X86.HasAVX512F)
	fmt.Printf("  HasFMA:     %v\n", cpu.X86.HasFMA)
}
