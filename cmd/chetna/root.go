package main

import (
	"context"
	"io"

	"github.com/spf13/cobra"
)

// Execute builds the command tree and runs it against args, writing results to out
func Execute(ctx context.Context, args []string, out io.Writer) error {
	root := newRoot(out)
	root.SetArgs(args)
	return root.ExecuteContext(ctx)
}

func newRoot(out io.Writer) *cobra.Command {
	var format string
	root := &cobra.Command{
		Use:           "chetna",
		Short:         "Sidereal chart engine: divisional charts, dignity and Vimsottari dasha",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(out)
	root.PersistentFlags().StringVarP(&format, "output", "o", "yaml", "output format (json|yaml)")

	r := renderer{out: out, format: &format}
	root.AddCommand(
		dashaCmd(r),
		vargaCmd(r),
		dignityCmd(r),
		readingCmd(r),
		versionCmd(r),
	)
	return root
}
