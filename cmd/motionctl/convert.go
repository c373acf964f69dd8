package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joshuapare/motionkit/internal/durable"
	"github.com/joshuapare/motionkit/motion"
	"github.com/joshuapare/motionkit/motion/transaction"
	"github.com/joshuapare/motionkit/plans"
)

var (
	convertEncoding string
	convertSync     string
)

func init() {
	cmd := newConvertCmd()
	cmd.Flags().StringVar(&convertEncoding, "encoding", "", "Input encoding (UTF-8, UTF-16LE, UTF-16BE, WINDOWS-1252)")
	cmd.Flags().StringVar(&convertSync, "sync", "auto", "Durability of the output write (auto, none, full)")
	rootCmd.AddCommand(cmd)
}

func newConvertCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "convert <in.json> <out.json>",
		Short: "Rewrite a patch as canonical UTF-8 JSON",
		Long: `The convert command parses a patch in any supported encoding and writes
it back as indented UTF-8 JSON. The output replaces <out.json> atomically.

Example:
  motionctl convert legacy.json clean.json --encoding UTF-16LE
  motionctl convert in.json out.json --sync full`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(cmd.Context(), args)
		},
	}
}

func runConvert(ctx context.Context, args []string) error {
	if ctx == nil {
		ctx = context.Background()
	}
	in, out := args[0], args[1]

	mode, err := durable.ParseMode(convertSync)
	if err != nil {
		return err
	}

	targets := motion.NewTargetSet()
	txn, err := transaction.ReadPatchFile(in, plans.Registry(), targets,
		transaction.ParseOptions{InputEncoding: convertEncoding})
	if err != nil {
		return fmt.Errorf("failed to parse %s: %w", in, err)
	}

	printVerbose("Writing %d ops to %s (sync=%s)\n", txn.Len(), out, mode)

	if err := transaction.WritePatchFile(ctx, out, txn, mode); err != nil {
		return fmt.Errorf("failed to write %s: %w", out, err)
	}

	if jsonOut {
		return printJSON(map[string]interface{}{
			"input":   in,
			"output":  out,
			"ops":     txn.Len(),
			"success": true,
		})
	}

	printInfo("%s %s → %s (%d ops)\n", checkMark(), in, out, txn.Len())
	return nil
}
