package cityio_test

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/katalvlaran/greedytsp/cityio"
	"github.com/katalvlaran/greedytsp/tsp"
)

// ExampleReadTSPLIB solves a small TSPLIB instance and prints the result.
func ExampleReadTSPLIB() {
	const src = "NAME : line3\n" +
		"DIMENSION : 3\n" +
		"NODE_COORD_SECTION\n" +
		"A 0 0\n" +
		"B 2 0\n" +
		"C 1 0\n" +
		"EOF\n"

	inst, err := cityio.ReadTSPLIB(strings.NewReader(src))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	res, err := tsp.Solve(context.Background(), inst.Cities)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	_ = cityio.WriteText(os.Stdout, res)
	// Output:
	// Path: A B C A
	// Length: 4.000000
}
