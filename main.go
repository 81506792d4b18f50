package main

import (
	"fmt"
	"os"
	"sort"
	"strings"

	_ "github.com/nathants/answer/cmd/answer"
	"github.com/nathants/answer/lib"
)

type describer interface {
	Description() string
}

func usage() {
	var fns []string
	for k := range lib.Commands {
		fns = append(fns, k)
	}
	sort.Strings(fns)
	for _, fn := range fns {
		line := fn
		if d, ok := lib.Args[fn].(describer); ok {
			line = fmt.Sprintf("%-14s %s", fn, firstLine(d.Description()))
		}
		fmt.Println(line)
	}
}

func firstLine(s string) string {
	for _, line := range strings.Split(s, "\n") {
		if line != "" {
			return line
		}
	}
	return ""
}

func main() {
	if len(os.Args) < 2 || os.Args[1] == "-h" || os.Args[1] == "--help" {
		usage()
		os.Exit(1)
	}
	cmd := os.Args[1]
	fn, ok := lib.Commands[cmd]
	if !ok {
		usage()
		os.Exit(1)
	}
	var args []string
	for _, a := range os.Args[1:] {
		if len(a) > 2 && a[0] == '-' && a[1] != '-' {
			for _, k := range a[1:] {
				args = append(args, fmt.Sprintf("-%s", string(k)))
			}
		} else {
			args = append(args, a)
		}
	}
	os.Args = args
	fn()
}
