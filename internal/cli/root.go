// Package cli defines the ontrack command tree.
package cli

import (
	"github.com/spf13/cobra"
)

// NewRootCmd creates the top-level "ontrack" command and registers all
// subcommands.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "ontrack",
		Short: "Career-guidance survey backend",
	}

	root.AddCommand(
		newServeCmd(),
		newDatasetsCmd(),
	)

	return root
}
