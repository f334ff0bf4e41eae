package main

import (
	"fmt"
	"os"

	"github.com/arthur-debert/crosspath/internal/commands"
	"github.com/arthur-debert/crosspath/pkg/ui/styles"
)

func main() {
	rootCmd := commands.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		// Print the error in red
		errorStyle := styles.GetStyle("Error")
		fmt.Fprintln(os.Stderr, errorStyle.Render(fmt.Sprintf("Error: %v", err)))
		os.Exit(1)
	}
}
