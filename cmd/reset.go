package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/dkessler/mnemo/internal/deck"
	"github.com/dkessler/mnemo/internal/session"
	"github.com/dkessler/mnemo/internal/srs"
	"github.com/dkessler/mnemo/internal/store"
)

var resetCmd = &cobra.Command{
	Use:   "reset <deck-file>",
	Short: "Reset a deck's scheduling state",
	Long: `Reset every item in a deck to a fresh scheduling state, as if it had
never been reviewed. Tags are kept. Any resumable session for the deck is
discarded.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]
		d, err := deck.Load(path)
		if err != nil {
			return fmt.Errorf("load deck: %w", err)
		}

		p := srs.DefaultParams()
		today := time.Now()
		for i := range d.Cards {
			d.Cards[i].Review = srs.Reset(d.Cards[i].Review, today, p)
		}
		if err := deck.Save(d, path); err != nil {
			return fmt.Errorf("save deck: %w", err)
		}

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()
		if err := st.Snapshots().Delete(cmd.Context(), session.Key{DeckID: d.ID, Mode: session.ModeReview}); err != nil {
			return fmt.Errorf("discard session: %w", err)
		}

		fmt.Printf("Reset %d item(s) in %s\n", len(d.Cards), d.ID)
		return nil
	},
}
