// bid128 evaluates decimal128 operations and runs test-vector files.
package main

import (
	"os"

	"github.com/db47h/decimal128/cmd/bid128/command"
)

func main() {
	if err := command.NewRoot().Execute(); err != nil {
		os.Exit(1)
	}
}
