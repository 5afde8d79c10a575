// Command sprig renders declarative scene templates.
package main

import (
	"fmt"
	"os"

	"github.com/phanxgames/sprig/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "sprig:", err)
		os.Exit(1)
	}
}
