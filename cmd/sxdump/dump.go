package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wippyai/sxscript/script"
)

func newDumpCmd(flags *globalFlags) *cobra.Command {
	var (
		sectionName string
		opName      string
	)

	cmd := &cobra.Command{
		Use:   "dump FILE",
		Short: "Write the decoded module as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := loadModule(args[0], flags)
			if err != nil {
				return err
			}

			var v any = wholeModule(m)
			switch {
			case opName != "":
				op, ok := script.OpcodeByName(opName)
				if !ok {
					return fmt.Errorf("unknown opcode %q", opName)
				}
				v = filterByOpcode(m.Instructions, op)
			case sectionName != "":
				if v, err = section(m, sectionName); err != nil {
					return err
				}
			}

			out, err := renderJSON(v)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}

	cmd.Flags().StringVarP(&sectionName, "section", "s", "", "Only dump this section")
	cmd.Flags().StringVar(&opName, "op", "", "Only dump instructions with this opcode name")
	return cmd
}
