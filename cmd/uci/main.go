// uci runs the engine as a synchronous UCI-subset driver over stdin/stdout.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/halfmove/mainline/pkg/engine"
	"github.com/halfmove/mainline/pkg/engine/uci"
	"github.com/seekerror/logw"
	"github.com/seekerror/stdlib/pkg/lang"
)

var maxDepth = flag.Uint("maxdepth", 0, "Cap every 'go depth' request to at most this depth (0 = no cap)")

func main() {
	flag.Parse()
	ctx := context.Background()

	var opts engine.Options
	if *maxDepth > 0 {
		opts.MaxDepth = lang.Some(*maxDepth)
	}
	e := engine.New("Mainline", "halfmove", engine.WithOptions(opts))
	driver := uci.NewDriver(e, func(line string) {
		logw.Debugf(ctx, ">> %v", line)
		fmt.Fprintln(os.Stdout, line)
	})

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line := scanner.Text()
		logw.Debugf(ctx, "<< %v", line)
		if driver.HandleLine(ctx, line) {
			break
		}
	}
	if err := scanner.Err(); err != nil {
		logw.Exitf(ctx, "stdin read failed: %v", err)
	}

	logw.Infof(ctx, "Mainline exited")
}
