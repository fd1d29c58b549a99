// perft is a movegen debugging tool. See: https://www.chessprogramming.org/Perft_Results.
package main

import (
	"context"
	"flag"
	"fmt"
	"time"

	"github.com/halfmove/mainline/pkg/chess"
	"github.com/halfmove/mainline/pkg/chess/fen"
	"github.com/seekerror/logw"
)

var (
	depth    = flag.Int("depth", 4, "Search depth")
	position = flag.String("fen", "", "Start position (default to standard)")
	divide   = flag.Bool("divide", false, "Print the per-root-move breakdown at the final depth")
)

func main() {
	ctx := context.Background()
	flag.Parse()

	if *position == "" {
		*position = fen.Initial
	}

	pos, err := fen.Decode(*position)
	if err != nil {
		logw.Exitf(ctx, "invalid fen %q: %v", *position, err)
	}

	for d := 1; d <= *depth; d++ {
		start := time.Now()
		nodes := count(pos, d, *divide && d == *depth)
		elapsed := time.Since(start)

		fmt.Printf("perft,%v,%v,%v,%v\n", *position, d, nodes, elapsed.Microseconds())
	}
}

func count(pos *chess.Position, depth int, divide bool) uint64 {
	if depth == 0 {
		return 1
	}

	legal, _ := chess.LegalMoves(pos)
	var nodes uint64
	for _, m := range legal {
		undo, err := pos.Make(m)
		if err != nil {
			panic(err)
		}
		n := count(pos, depth-1, false)
		pos.Unmake(undo)

		if divide {
			fmt.Printf("%v: %v\n", m, n)
		}
		nodes += n
	}
	return nodes
}
