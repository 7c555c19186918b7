// Command quill runs programs written in the quill scripting language.
package main

import (
	"fmt"
	"os"

	"github.com/quill-lang/quill/cmd/quill/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
