package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/syssam/erd/internal/version"
)

func registerVersionCmd(parent *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version.Info())
		},
	}

	parent.AddCommand(cmd)
}
