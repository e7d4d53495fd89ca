/*
 Package tpmsregistry lists the decoder registry's metadata: name,
 concrete Go type, preamble bit length, payload length, and checksum
 kind, in dispatch order. Dispatch order is a contract: the first
 decoder to accept a bitstream wins. Making it inspectable is directly
 useful for debugging a mis-ordered registry.
*/
package tpmsregistry

import (
	"fmt"
	"reflect"

	"github.com/spf13/cobra"

	"github.com/n8jr/tpmsd/decoders"
)

// NewCommand builds the "registry" subcommand.
func NewCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "registry",
		Short: "List the protocol decoder registry in dispatch order",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for i, d := range decoders.Registry {
				t := reflect.TypeOf(d)
				dd, ok := d.(decoders.Described)
				if !ok {
					fmt.Fprintf(out, "%2d  %-20s  %s\n", i, d.Name(), t.String())
					continue
				}
				m := dd.Meta()
				fmt.Fprintf(out, "%2d  %-20s  %-26s  preamble %2d bits  payload %-14s  check %s\n",
					i, d.Name(), t.String(), len(m.Preamble), m.Payload, m.Check)
			}
			return nil
		},
	}
}
