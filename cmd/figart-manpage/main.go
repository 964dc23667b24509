package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra/doc"

	"github.com/arthur-debert/figart/cmd/figart"
	"github.com/arthur-debert/figart/internal/version"
)

func main() {
	rootCmd := figart.NewRootCmd()

	header := &doc.GenManHeader{
		Title:   "FIGART",
		Section: "1",
		Source:  "figart " + version.Version,
		Manual:  "figart manual",
	}

	if err := doc.GenMan(rootCmd, header, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error generating man page: %v\n", err)
		os.Exit(1)
	}
}
