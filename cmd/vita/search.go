package vita

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/vitacli/vita/internal/nutrition"
	"github.com/vitacli/vita/internal/store"
)

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search nutrition data for a food",
	Long:  "Search the USDA food database for nutrition facts. Without an API key, or when the lookup fails, a built-in local table is searched instead.",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		query := strings.Join(args, " ")
		return withStore(func(s *store.Store) error {
			log := zerolog.New(cmd.ErrOrStderr()).With().Timestamp().Logger()
			svc := nutrition.NewService(resolveAPIKey(s), log)

			records, err := svc.Search(cmd.Context(), query)
			if err != nil {
				return err
			}
			if len(records) == 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "No results for %q\n", query)
				return nil
			}
			for _, r := range records {
				fmt.Fprintf(cmd.OutOrStdout(), "%s: %.0f kcal | P %.1fg | C %.1fg | F %.1fg\n",
					r.Name, r.Calories, r.Protein, r.Carbs, r.Fat)
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(searchCmd)
}
