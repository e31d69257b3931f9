// Command valveflow computes how much flow can be released from a valve
// network within a time budget, alone or with a partner.
package main

import (
	"fmt"
	"os"

	"github.com/katalvlaran/valveflow/cli"
)

func main() {
	if err := cli.NewRoot().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "valveflow:", err)
		os.Exit(1)
	}
}
