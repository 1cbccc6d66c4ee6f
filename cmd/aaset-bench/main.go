package main

import (
	"log/slog"

	"github.com/cosmos/iavl-bench/aaset/bench"
)

func main() {
	bench.Run(bench.RunConfig{
		Logger: slog.Default(),
	})
}
