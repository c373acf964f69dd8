package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joshuapare/motionkit/internal/logger"
	"github.com/joshuapare/motionkit/motion/scheduler"
	"github.com/joshuapare/motionkit/motion/transaction"
	"github.com/joshuapare/motionkit/plans"
)

var (
	commitEncoding      string
	commitTargets       []string
	commitDefaultTarget string
	commitNoCopy        bool
)

func init() {
	cmd := newCommitCmd()
	cmd.Flags().StringVar(&commitEncoding, "encoding", "", "Patch input encoding (UTF-8, UTF-16LE, UTF-16BE, WINDOWS-1252)")
	cmd.Flags().StringArrayVarP(&commitTargets, "target", "t", nil, "Bind a target ID to a value kind (id=text|counter|none)")
	cmd.Flags().StringVar(&commitDefaultTarget, "default-target", targetText, "Value kind for unbound target IDs")
	cmd.Flags().BoolVar(&commitNoCopy, "no-copy", false, "Hand plans to performers without copying them")
	rootCmd.AddCommand(cmd)
}

func newCommitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "commit <patch.json>...",
		Short: "Commit one or more transaction patches to a scheduler",
		Long: `The commit command parses each patch into a transaction and commits it
to a single scheduler, in argument order. Named plans registered by an
earlier patch can be replaced or removed by a later one.

Example:
  motionctl commit fade.json
  motionctl commit setup.json teardown.json --target view=text --target knob=counter`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCommit(cmd.Context(), args)
		},
	}
	return cmd
}

func runCommit(ctx context.Context, args []string) error {
	if ctx == nil {
		ctx = context.Background()
	}

	targets, err := buildTargetSet(commitTargets, commitDefaultTarget)
	if err != nil {
		return err
	}

	opt := scheduler.DefaultOptions()
	opt.CopyPlans = !commitNoCopy
	opt.Logger = logger.L
	sched := scheduler.New(opt)
	reg := plans.Registry()

	var total scheduler.Applied
	for _, path := range args {
		printVerbose("%s\n", mutedStyle.Render("Reading "+path))

		txn, err := transaction.ReadPatchFile(path, reg, targets,
			transaction.ParseOptions{InputEncoding: commitEncoding})
		if err != nil {
			return fmt.Errorf("failed to parse %s: %w", path, err)
		}

		applied, err := sched.Commit(ctx, txn)
		if err != nil {
			return fmt.Errorf("failed to commit %s: %w", path, err)
		}
		total.Add(applied)

		printVerbose("  %d ops, %d performers created\n", txn.Len(), applied.PerformersCreated)
	}

	// Output as JSON if requested
	if jsonOut {
		states := make(map[string]any, targets.Len())
		for _, t := range targets.Targets() {
			states[t.ID()] = t.Value()
		}
		return printJSON(map[string]interface{}{
			"patches": args,
			"applied": total,
			"targets": states,
		})
	}

	printInfo("%s\n", headerStyle.Render(fmt.Sprintf("Committed %d patch(es)", len(args))))
	printInfo("  Plans added:         %d\n", total.PlansAdded)
	printInfo("  Named plans added:   %d\n", total.NamedPlansAdded)
	printInfo("  Named plans removed: %d\n", total.NamedPlansRemoved)
	printInfo("  Performers created:  %d\n", total.PerformersCreated)
	printInfo("\n%s\n", headerStyle.Render("Targets:"))
	for _, t := range targets.Targets() {
		printInfo("  %s: %s\n", t.ID(), describeTarget(t))
	}

	return nil
}
