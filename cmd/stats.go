package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/dkessler/mnemo/internal/deck"
	"github.com/dkessler/mnemo/internal/srs"
	"github.com/dkessler/mnemo/internal/store"
)

var statsCmd = &cobra.Command{
	Use:   "stats <deck-file>...",
	Short: "Show deck statistics",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		now := time.Now()
		p := srs.DefaultParams()

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()
		events := st.Events()

		for _, path := range args {
			d, err := deck.Load(path)
			if err != nil {
				return fmt.Errorf("load deck: %w", err)
			}
			items := d.Items()

			suspended := 0
			for _, it := range items {
				if it.Suspended {
					suspended++
				}
			}

			fmt.Printf("%s (%s)\n", d.Name, d.ID)
			fmt.Printf("  items:     %d (%d suspended)\n", len(items), suspended)
			fmt.Printf("  due now:   %d\n", srs.DueCount(items, now))
			fmt.Printf("  mastery:   %.0f%%\n", 100*srs.CollectionMastery(items, now, p))

			reviews, err := events.CountByDeck(ctx, d.ID)
			if err != nil {
				return fmt.Errorf("count reviews: %w", err)
			}
			fmt.Printf("  reviews:   %d\n", reviews)

			leeches, err := events.LeechEvents(ctx, d.ID)
			if err != nil {
				return fmt.Errorf("query leeches: %w", err)
			}
			if len(leeches) > 0 {
				fmt.Printf("  leeches:   %v\n", leeches)
			}
		}
		return nil
	},
}
