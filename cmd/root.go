package cmd

import (
	"github.com/spf13/cobra"

	"github.com/dkessler/mnemo/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "mnemo",
	Short: "Spaced-repetition flashcards in the terminal",
	Long:  "Mnemo — a spaced-repetition study tool for flashcard, quiz, and guided learning decks.",
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides MNEMO_DB env var)")

	rootCmd.AddCommand(studyCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then MNEMO_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}
