package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ontrackhk/ontrack/internal/config"
	"github.com/ontrackhk/ontrack/internal/dataset"
)

func newDatasetsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "datasets",
		Short: "Inspect the survey lookup tables",
	}
	cmd.AddCommand(newDatasetsValidateCmd())
	return cmd
}

func newDatasetsValidateCmd() *cobra.Command {
	var dataDir string

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Load and validate the question pool, industry mapping and JUPAS catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := dataDir
			if dir == "" {
				cfg, err := config.Load()
				if err != nil {
					return err
				}
				dir = cfg.DataDir
			}

			store, err := dataset.Load(dir)
			if err != nil {
				return err
			}

			programs := 0
			for _, list := range store.Catalog() {
				programs += len(list)
			}
			fmt.Fprintf(cmd.OutOrStdout(),
				"ok: %d questions, %d industry mappings, %d industries with %d programmes\n",
				store.PoolSize(), len(store.Mapping()), len(store.Catalog()), programs)
			return nil
		},
	}

	cmd.Flags().StringVar(&dataDir, "data-dir", "", "dataset directory (overrides ONTRACK_DATA_DIR)")
	return cmd
}
