// Command zeta renders the public photo feed as a terminal list.
package main

import (
	"fmt"
	"os"

	"github.com/manjunathc23/zeta/cmd/zeta/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
