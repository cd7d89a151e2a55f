package vita

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vitacli/vita/internal/app"
	"github.com/vitacli/vita/internal/store"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize local vita database",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := resolveDBPath()
		if err != nil {
			return err
		}
		if err := app.EnsureDBDir(path); err != nil {
			return err
		}

		s, err := store.Open(path)
		if err != nil {
			return err
		}
		defer s.Close()

		fmt.Fprintf(cmd.OutOrStdout(), "Initialized vita database at %s\n", path)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
