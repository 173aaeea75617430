// Command taxbit-sort merges one or more TaxBit CSV exports, sorts the
// records by the deterministic record order and writes the combined export.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/rocjay1/taxbit-ledger/internal/config"
	"github.com/rocjay1/taxbit-ledger/internal/csvparse"
	"github.com/rocjay1/taxbit-ledger/internal/ledger"
	"github.com/rocjay1/taxbit-ledger/internal/logger"
)

func main() {
	inFiles := flag.String("in", "", "Comma-separated list of TaxBit export CSV files (required)")
	outFile := flag.String("out", "", "Output file (default: stdout)")
	flag.Parse()

	cfg := config.Load()
	logger.Init(cfg.LogLevel)

	if *inFiles == "" {
		fmt.Println("Error: -in is required.")
		flag.Usage()
		os.Exit(1)
	}
	paths := strings.Split(*inFiles, ",")

	source := csvparse.NewFileSource()
	l := ledger.New(source)

	if err := l.Load(context.Background(), paths...); err != nil {
		slog.Error("Failed to load exports", "error", err)
		os.Exit(1)
	}
	slog.Info("loaded exports", "files", len(paths), "records", l.Len())

	l.Sort()

	out := os.Stdout
	if *outFile != "" {
		f, err := os.Create(*outFile)
		if err != nil {
			slog.Error("Failed to create output file", "path", *outFile, "error", err)
			os.Exit(1)
		}
		defer f.Close()
		out = f
	}

	if err := csvparse.WriteRecords(out, l.Records()); err != nil {
		slog.Error("Failed to write sorted export", "error", err)
		os.Exit(1)
	}
	slog.Info("wrote sorted export", "records", l.Len())
}
