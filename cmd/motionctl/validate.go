package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joshuapare/motionkit/motion"
	"github.com/joshuapare/motionkit/motion/transaction"
	"github.com/joshuapare/motionkit/plans"
)

var validateEncoding string

func init() {
	cmd := newValidateCmd()
	cmd.Flags().StringVar(&validateEncoding, "encoding", "", "Patch input encoding (UTF-8, UTF-16LE, UTF-16BE, WINDOWS-1252)")
	rootCmd.AddCommand(cmd)
}

func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <patch.json>...",
		Short: "Check that transaction patches parse",
		Long: `The validate command parses each patch against the built-in plan
registry and reports its operation counts without committing anything.

Example:
  motionctl validate fade.json
  motionctl validate legacy.json --encoding WINDOWS-1252`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(args)
		},
	}
}

// patchSummary counts operations by type.
type patchSummary struct {
	Path        string `json:"path"`
	Ops         int    `json:"ops"`
	Add         int    `json:"add"`
	AddNamed    int    `json:"add_named"`
	RemoveNamed int    `json:"remove_named"`
	Targets     int    `json:"targets"`
}

func summarize(path string, txn *transaction.Transaction, targets *motion.TargetSet) patchSummary {
	s := patchSummary{Path: path, Ops: txn.Len(), Targets: targets.Len()}
	for _, op := range txn.Ops() {
		switch op.Type {
		case transaction.OpAdd:
			s.Add++
		case transaction.OpAddNamed:
			s.AddNamed++
		case transaction.OpRemoveNamed:
			s.RemoveNamed++
		}
	}
	return s
}

func runValidate(args []string) error {
	reg := plans.Registry()
	summaries := make([]patchSummary, 0, len(args))

	for _, path := range args {
		targets := motion.NewTargetSet()
		txn, err := transaction.ReadPatchFile(path, reg, targets,
			transaction.ParseOptions{InputEncoding: validateEncoding})
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		summaries = append(summaries, summarize(path, txn, targets))
	}

	if jsonOut {
		return printJSON(summaries)
	}

	for _, s := range summaries {
		printInfo("%s %s: %d ops (add=%d, add_named=%d, remove_named=%d) on %d target(s)\n",
			checkMark(), s.Path, s.Ops, s.Add, s.AddNamed, s.RemoveNamed, s.Targets)
	}
	return nil
}
