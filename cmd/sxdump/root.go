package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/wippyai/sxscript/script"
)

type globalFlags struct {
	verbose bool
	strict  bool
	magic   uint32
}

func newRootCmd() *cobra.Command {
	var (
		flags globalFlags
		log   *zap.Logger
	)

	cmd := &cobra.Command{
		Use:   "sxdump",
		Short: "Inspect compiled script bytecode modules",
		Long: `sxdump decodes compiled script modules (.sx) and shows their header,
instruction stream and record tables.

Examples:
  sxdump info cloth.sx                        Header and section summary
  sxdump dump cloth.sx                        Whole module as JSON
  sxdump dump cloth.sx --section functions    One section as JSON
  sxdump dump cloth.sx --op Call              Only Call instructions
  sxdump browse cloth.sx                      Interactive section browser`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !flags.verbose {
				return nil
			}
			l, err := zap.NewDevelopment()
			if err != nil {
				return fmt.Errorf("create logger: %w", err)
			}
			log = l
			script.SetLogger(log)
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if log != nil {
				_ = log.Sync()
			}
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Log decoder progress to stderr")
	cmd.PersistentFlags().BoolVar(&flags.strict, "strict", false, "Fail when declared section offsets disagree with the layout")
	cmd.PersistentFlags().Uint32Var(&flags.magic, "magic", 0, "Require this header magic value")

	cmd.AddCommand(
		newInfoCmd(&flags),
		newDumpCmd(&flags),
		newBrowseCmd(&flags),
	)
	return cmd
}

func (f *globalFlags) options() script.Options {
	opts := script.DefaultOptions()
	opts.StrictLayout = f.strict
	opts.Magic = f.magic
	return opts
}

func loadModule(path string, flags *globalFlags) (*script.Module, error) {
	m, err := script.ReadFile(path, flags.options())
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return m, nil
}
