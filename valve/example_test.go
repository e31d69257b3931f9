package valve_test

import (
	"fmt"
	"os"

	"github.com/katalvlaran/valveflow/valve"
)

// ExampleWriteTGF dumps a three-valve corridor in Trivial Graph Format.
func ExampleWriteTGF() {
	g, err := valve.Build([]valve.Record{
		{Label: "BB", Rate: 13, Neighbors: []string{"AA", "CC"}},
		{Label: "AA", Rate: 0, Neighbors: []string{"BB"}},
		{Label: "CC", Rate: 2, Neighbors: []string{"BB"}},
	}, "AA")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	if err = valve.WriteTGF(os.Stdout, g); err != nil {
		fmt.Println("error:", err)
	}
	// Output:
	// AA AA,0
	// BB BB,13
	// CC CC,2
	// #
	// AA BB
	// BB AA
	// BB CC
	// CC BB
}
