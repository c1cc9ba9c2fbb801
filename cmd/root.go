package cmd

import (
	"github.com/abhisek/explainthis/internal/store"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "explainthis [question]",
	Short: "AI-powered concept explainer",
	Long:  "ExplainThis — ask about any tech concept and get a structured, level-appropriate explanation.",
	Args:  cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return cmd.Help()
		}
		return runExplain(cmd, args)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides EXPLAINTHIS_DB env var)")
	rootCmd.PersistentFlags().StringP("level", "l", "elementary", "Explanation depth: beginner, elementary, intermediate, advanced, expert")

	rootCmd.Flags().Bool("save", false, "Save the explanation to the library")

	rootCmd.AddCommand(explainCmd)
	rootCmd.AddCommand(libraryCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(exploreCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(updateCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then EXPLAINTHIS_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}
