package cmd

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/dkessler/mnemo/internal/deck"
	"github.com/dkessler/mnemo/internal/session"
	"github.com/dkessler/mnemo/internal/srs"
	"github.com/dkessler/mnemo/internal/store"
)

var studyCmd = &cobra.Command{
	Use:   "study <deck-file>",
	Short: "Study a deck",
	Long: `Study the due items of a deck. An interrupted review session resumes
where it left off the next time the same deck is studied.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cram, _ := cmd.Flags().GetBool("cram")
		return runStudy(cmd, args[0], cram)
	},
}

func init() {
	studyCmd.Flags().Bool("cram", false, "Study every item regardless of due date; no scheduling changes are recorded")
}

func runStudy(cmd *cobra.Command, path string, cram bool) error {
	ctx := cmd.Context()

	d, err := deck.Load(path)
	if err != nil {
		return fmt.Errorf("load deck: %w", err)
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

	mode := session.ModeReview
	if cram {
		mode = session.ModeCram
	}
	now := time.Now()

	snaps := st.Snapshots()
	var q *session.Queue
	if mode == session.ModeReview {
		snap, err := snaps.Load(ctx, session.Key{DeckID: d.ID, Mode: mode})
		if err != nil {
			return fmt.Errorf("load session snapshot: %w", err)
		}
		if snap != nil {
			q = session.BuildFromSnapshot(d, mode, snap)
			fmt.Println("Resuming previous session.")
		}
	}
	if q == nil {
		q = session.BuildQueue(d, mode, now)
	}
	if len(q.Entries) == 0 {
		fmt.Println("Nothing to study.")
		return nil
	}

	m := session.NewMachine(d, q, session.Config{
		Store: snaps,
		OnSnapshotWarn: func(err error) {
			fmt.Fprintln(os.Stderr, "warning: session snapshot not saved:", err)
		},
	})
	defer m.Close()

	loop := &studyLoop{
		machine: m,
		events:  st.Events(),
		in:      bufio.NewScanner(cmd.InOrStdin()),
		out:     cmd.OutOrStdout(),
		now:     now,
	}
	if err := loop.run(ctx); err != nil {
		return err
	}

	// Review sessions mutate item state; write the deck back.
	if mode == session.ModeReview && m.Summary().Reviewed+m.Summary().Suspended > 0 {
		if err := deck.Save(d, path); err != nil {
			return fmt.Errorf("save deck: %w", err)
		}
	}

	printSummary(loop.out, m.Summary())
	return nil
}

// studyLoop is the line-oriented prompt driving a session machine.
type studyLoop struct {
	machine *session.Machine
	events  store.ReviewEventRepo
	in      *bufio.Scanner
	out     io.Writer
	now     time.Time
}

func (l *studyLoop) run(ctx context.Context) error {
	for l.machine.State() != session.StateCompleted {
		l.render()
		line, ok := l.readLine()
		if !ok {
			return nil // EOF: abandon, resumable from the snapshot
		}
		quit, err := l.handle(ctx, line)
		if err != nil {
			fmt.Fprintln(l.out, err)
			continue
		}
		if quit {
			return nil
		}
	}
	fmt.Fprintln(l.out, "Session complete.")
	return nil
}

func (l *studyLoop) readLine() (string, bool) {
	fmt.Fprint(l.out, "> ")
	if !l.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(strings.ToLower(l.in.Text())), true
}

func (l *studyLoop) render() {
	q := l.machine.Queue()
	e := q.Displayed()
	if e == nil {
		return
	}

	fmt.Fprintf(l.out, "\n[%d/%d]", q.ItemsCompleted+1, q.TotalItems)
	if q.DisplayIndex != q.CurrentIndex {
		fmt.Fprint(l.out, " (history)")
	}
	fmt.Fprintln(l.out)

	switch e.Kind {
	case session.EntryInfo:
		fmt.Fprintln(l.out, "##", e.Info.Title)
		fmt.Fprintln(l.out, e.Info.Body)
		fmt.Fprintln(l.out, "(r: mark read, p/n: browse, q: quit)")
	default:
		if e.Card.Prompt != "" {
			fmt.Fprintln(l.out, e.Card.Prompt)
			for _, o := range e.Card.Options {
				marker := " "
				if e.Selected == o.ID {
					marker = "*"
				}
				fmt.Fprintf(l.out, " %s %s) %s\n", marker, o.ID, o.Text)
			}
			fmt.Fprintln(l.out, "(a <option>: answer, 1-4: rate, s: suspend, p/n: browse, q: quit)")
		} else {
			fmt.Fprintln(l.out, e.Card.Front)
			fmt.Fprintln(l.out, "(f: flip, 1-4: rate, s: suspend, p/n: browse, q: quit)")
		}
	}
}

func (l *studyLoop) handle(ctx context.Context, line string) (quit bool, err error) {
	q := l.machine.Queue()
	switch {
	case line == "q":
		return true, nil
	case line == "p":
		l.machine.NavigatePrevious()
	case line == "n":
		l.machine.NavigateNext()
	case line == "c":
		l.machine.ReturnToCurrent()
	case line == "f":
		if e := q.Displayed(); e != nil && e.Kind == session.EntryCard {
			fmt.Fprintln(l.out, e.Card.Back)
		}
	case line == "r":
		unlocked, err := l.machine.ReadInfoCard()
		if err != nil {
			return false, err
		}
		if len(unlocked) > 0 {
			fmt.Fprintf(l.out, "Unlocked %d question(s).\n", len(unlocked))
		}
	case line == "s":
		return false, l.machine.Suspend()
	case strings.HasPrefix(line, "a "):
		return false, l.machine.SelectAnswer(strings.TrimSpace(line[2:]))
	case line == "1" || line == "2" || line == "3" || line == "4":
		rating := srs.Rating(line[0] - '0')
		res, err := l.machine.Review(rating, l.now)
		if err != nil {
			return false, err
		}
		if res.Leech {
			if res.LeechWarning {
				fmt.Fprintln(l.out, "This item keeps lapsing; consider rewriting it.")
			} else {
				fmt.Fprintln(l.out, "Leech: item taken out of circulation.")
			}
		}
		if q.Mode == session.ModeReview {
			if err := l.events.Append(ctx, res.Record, res.Leech); err != nil {
				fmt.Fprintln(os.Stderr, "warning: review not logged:", err)
			}
		}
	case line == "":
		// ignore blank lines
	default:
		fmt.Fprintln(l.out, "unknown command:", line)
	}
	return false, nil
}

func printSummary(w io.Writer, s session.Summary) {
	fmt.Fprintf(w, "\nReviewed %d item(s)", s.Reviewed)
	if s.Reviewed > 0 {
		fmt.Fprintf(w, " (again %d, hard %d, good %d, easy %d)",
			s.ByRating[srs.Again], s.ByRating[srs.Hard], s.ByRating[srs.Good], s.ByRating[srs.Easy])
	}
	fmt.Fprintln(w)
	if s.Suspended > 0 {
		fmt.Fprintf(w, "Suspended %d item(s)\n", s.Suspended)
	}
	if s.InfoCardsRead > 0 {
		fmt.Fprintf(w, "Read %d info card(s), unlocked %d question(s)\n", s.InfoCardsRead, s.QuestionsUnlocked)
	}
	if s.Leeches > 0 {
		fmt.Fprintf(w, "Flagged %d leech(es)\n", s.Leeches)
	}
}
