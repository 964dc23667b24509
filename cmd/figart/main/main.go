package main

import (
	"fmt"
	"os"

	"github.com/arthur-debert/figart/cmd/figart"
	"github.com/arthur-debert/figart/pkg/style"
)

func main() {
	rootCmd := figart.NewRootCmd()
	rootCmd.SetArgs(figart.NormalizeArgs(os.Args[1:]))
	if err := rootCmd.Execute(); err != nil {
		errorStyle := style.Default.Get("Error")
		fmt.Fprintln(os.Stderr, errorStyle.Render(fmt.Sprintf("Error: %v", err)))
		fmt.Fprintln(os.Stderr, "Run 'figart --help' for usage.")
		os.Exit(1)
	}
}
