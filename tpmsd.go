/*
 tpmsd is the reference shell around the TPMS decoding core: a small
 cobra binary whose subcommands drive the buffer/scanner/dispatcher
 pipeline. The core packages themselves (buffer, bitmap, linecode,
 checksum, fieldset, scanner, decoders, dispatcher) never log and never
 touch files; everything shell-shaped lives here and under cmd/.
*/
package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/n8jr/tpmsd/cmd/tpmsmonitor"
	"github.com/n8jr/tpmsd/cmd/tpmsregistry"
	"github.com/n8jr/tpmsd/cmd/tpmsreplay"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	root := &cobra.Command{
		Use:   "tpmsd",
		Short: "TPMS receiver core: scan RF pulse samples and decode tire sensor broadcasts",
	}
	root.AddCommand(tpmsmonitor.NewCommand(logger))
	root.AddCommand(tpmsreplay.NewCommand())
	root.AddCommand(tpmsregistry.NewCommand())

	if err := root.Execute(); err != nil {
		logger.Error("tpmsd exited", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
