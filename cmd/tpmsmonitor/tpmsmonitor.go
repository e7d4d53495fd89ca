/*
 Package tpmsmonitor is the periodic scan-and-print loop: call
 scanner.ScanForSignal on a timer, and whenever it latches a decoded
 candidate, read the fields out by name, print them, and reset the
 latch. It is the reference consumer for the decoding core.
*/
package tpmsmonitor

import (
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/n8jr/tpmsd/buffer"
	"github.com/n8jr/tpmsd/config"
	"github.com/n8jr/tpmsd/decoders"
	"github.com/n8jr/tpmsd/scanner"
)

// NewCommand builds the "monitor" subcommand.
func NewCommand(logger *slog.Logger) *cobra.Command {
	var intervalMS int
	var capacity int

	cmd := &cobra.Command{
		Use:   "monitor",
		Short: "Periodically scan the sample buffer and print decoded TPMS readings",
		RunE: func(cmd *cobra.Command, args []string) error {
			preset, ok := config.Load()
			if !ok {
				logger.Warn("no config file found, using default preset", slog.String("preset", preset.Name))
			}

			buf := buffer.Alloc(capacity)
			var app scanner.App
			interval := time.Duration(intervalMS) * time.Millisecond

			for range time.Tick(interval) {
				scanner.ScanForSignal(&app, buf, preset.DurationFilterUS)
				if !app.Decoded || app.MsgInfo == nil {
					continue
				}
				printReading(logger, app.MsgInfo)
				app.ReleaseLatched()
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&intervalMS, "interval-ms", 500, "milliseconds between scan bursts")
	cmd.Flags().IntVar(&capacity, "capacity", 32768, "sample buffer capacity in pulses")
	return cmd
}

// printReading extracts the sensor-reading fields by name and logs
// them; it tolerates any of them being absent, exactly as a decoder is
// allowed to omit optional fields.
func printReading(logger *slog.Logger, info *decoders.MessageInfo) {
	attrs := []any{slog.String("decoder", info.DecoderName)}

	if tireID, ok := info.FieldSet.Lookup("Tire ID"); ok {
		attrs = append(attrs, slog.String("tire_id", tireID.String()))
	}
	if pressure, ok := info.FieldSet.Lookup("Pressure kpa"); ok {
		attrs = append(attrs, slog.Float64("pressure_kpa", pressure.Float))
	} else if pressure, ok := info.FieldSet.Lookup("Pressure psi"); ok {
		attrs = append(attrs, slog.Float64("pressure_psi", pressure.Float))
	}
	if temp, ok := info.FieldSet.Lookup("Temperature C"); ok {
		attrs = append(attrs, slog.Int64("temperature_c", temp.Int))
	}

	logger.Info("tpms reading", attrs...)
}
