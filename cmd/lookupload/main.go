package main

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/fishub/lookupload/internal/cli"
	"github.com/fishub/lookupload/pkg/lookupload"
)

func main() {
	// Recover from panics to ensure graceful exits with stack traces
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "panic: %v\n%s\n", r, debug.Stack())
			os.Exit(lookupload.ExitPanic)
		}
	}()

	if err := cli.Execute(); err != nil {
		os.Exit(lookupload.ExitCodeForError(err))
	}
}
