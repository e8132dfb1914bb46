package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/iw2rmb/quill"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the quill version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), quill.VersionTag())
		},
	}
}
