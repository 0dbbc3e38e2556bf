package session

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/dkessler/mnemo/internal/deck"
	"github.com/dkessler/mnemo/internal/srs"
)

// State is the progression state of a session.
type State int

const (
	StateAwaitingAction State = iota // an entry is at the cursor
	StateCompleted                   // the queue is exhausted
)

// Config configures a Machine. Zero values produce sensible defaults: the
// standard scheduling params and leech policy, a time-seeded shuffle source,
// a fresh session id, and no persistence.
type Config struct {
	Params srs.Params
	Leech  srs.LeechConfig

	// Store, when set, receives a snapshot after every state-changing
	// transition (never in cram mode) and a delete on completion.
	Store SnapshotStore

	// OnSnapshotWarn is called from the writer goroutine when a snapshot
	// operation fails. The session itself continues; only resumability
	// after a crash is at risk until a write succeeds.
	OnSnapshotWarn func(error)

	// Rand orders simultaneously-unlocked questions. Tests inject a
	// seeded source for determinism.
	Rand *rand.Rand

	SessionID string
}

// Machine drives a session queue through learner actions. It is not safe for
// concurrent use; the engine is single-threaded by design and the only
// asynchronous boundary is snapshot persistence.
type Machine struct {
	deck      *deck.Deck
	queue     *Queue
	params    srs.Params
	leech     srs.LeechConfig
	rng       *rand.Rand
	sessionID string
	writer    *snapshotWriter
	log       []ReviewRecord
	summary   Summary
}

// NewMachine wraps a built or rehydrated queue. Cram-mode machines never
// persist snapshots even when a store is configured.
func NewMachine(d *deck.Deck, q *Queue, cfg Config) *Machine {
	params := cfg.Params
	if params == (srs.Params{}) {
		params = srs.DefaultParams()
	}
	leech := cfg.Leech
	if leech.Threshold == 0 {
		leech = srs.DefaultLeechConfig()
	}
	rng := cfg.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	sessionID := cfg.SessionID
	if sessionID == "" {
		sessionID = uuid.NewString()
	}

	m := &Machine{
		deck:      d,
		queue:     q,
		params:    params,
		leech:     leech,
		rng:       rng,
		sessionID: sessionID,
		summary:   newSummary(),
	}
	if cfg.Store != nil && q.Mode != ModeCram {
		m.writer = newSnapshotWriter(cfg.Store, q.Key(), cfg.OnSnapshotWarn)
	}
	return m
}

// State returns the progression state.
func (m *Machine) State() State {
	if m.queue.Exhausted() {
		return StateCompleted
	}
	return StateAwaitingAction
}

// Queue exposes the underlying queue for display.
func (m *Machine) Queue() *Queue { return m.queue }

// SessionID returns the session's identifier, stamped on review records.
func (m *Machine) SessionID() string { return m.sessionID }

// Log returns the review records accumulated this session, oldest first.
func (m *Machine) Log() []ReviewRecord { return m.log }

// Summary returns the session's running tallies.
func (m *Machine) Summary() Summary { return m.summary }

// Close flushes any pending snapshot writes. Call once the session ends,
// whether completed or abandoned.
func (m *Machine) Close() {
	if m.writer != nil {
		m.writer.close()
	}
}

// ReviewResult reports what a Review did.
type ReviewResult struct {
	Record ReviewRecord

	// Leech is set when this review flagged the item as a leech. Whether
	// the item was suspended, tagged, or merely warned about depends on
	// the configured leech action; LeechWarning distinguishes the
	// advisory-only case the caller should surface.
	Leech        bool
	LeechWarning bool
}

// Review rates the entry at the cursor and advances. In review mode the
// scheduler computes the item's next state and the leech policy runs on the
// result; in cram mode the queue advances with no scheduling effect at all.
func (m *Machine) Review(rating srs.Rating, today time.Time) (ReviewResult, error) {
	entry, err := m.actionableCard()
	if err != nil {
		return ReviewResult{}, err
	}

	if m.queue.Mode == ModeCram {
		if !rating.IsValid() {
			return ReviewResult{}, fmt.Errorf("%w: %d", srs.ErrInvalidRating, int(rating))
		}
		m.summary.Reviewed++
		m.summary.ByRating[rating]++
		m.advance()
		return ReviewResult{}, nil
	}

	before := entry.Card.Review
	after, err := srs.NextState(before, rating, today, m.params)
	if err != nil {
		return ReviewResult{}, err
	}
	after, leech := srs.CheckLeech(before, after, m.leech)
	entry.Card.Review = after

	rec := ReviewRecord{
		SessionID:  m.sessionID,
		DeckID:     m.queue.DeckID,
		ItemID:     entry.Card.ID,
		Before:     before,
		After:      after,
		Rating:     rating,
		ReviewedAt: srs.DayStart(today),
	}
	m.log = append(m.log, rec)

	m.summary.Reviewed++
	m.summary.ByRating[rating]++
	if leech {
		m.summary.Leeches++
	}

	m.advance()
	return ReviewResult{
		Record:       rec,
		Leech:        leech,
		LeechWarning: leech && m.leech.Action == srs.LeechWarn,
	}, nil
}

// Suspend takes the entry at the cursor out of circulation without going
// through the scheduler, then advances.
func (m *Machine) Suspend() error {
	entry, err := m.actionableCard()
	if err != nil {
		return err
	}
	entry.Card.Review.Suspended = true
	m.summary.Suspended++
	m.advance()
	return nil
}

// SelectAnswer records the learner's choice on the question at the cursor
// without advancing; a Review must follow to move on. Re-selecting after an
// answer has been recorded is rejected.
func (m *Machine) SelectAnswer(optionID string) error {
	entry, err := m.actionableCard()
	if err != nil {
		return err
	}
	if len(entry.Card.Options) == 0 {
		return fmt.Errorf("%w: entry %q has no options", ErrInvalidTransition, entry.ID())
	}
	if entry.Selected != "" {
		return fmt.Errorf("%w: entry %q", ErrAnswerLocked, entry.ID())
	}
	if entry.Card.Option(optionID) == nil {
		return fmt.Errorf("%w: %q on entry %q", ErrUnknownOption, optionID, entry.ID())
	}
	entry.Selected = optionID
	return nil
}

// ReadInfoCard marks the info card at the cursor as read, enqueues the
// questions it unlocks immediately after the cursor (shuffled among
// themselves, so they are encountered next in no significant order), and
// advances. Questions already unlocked, already queued, suspended, or no
// longer in the deck are skipped. Returns the ids actually enqueued.
func (m *Machine) ReadInfoCard() ([]string, error) {
	entry, err := m.actionable()
	if err != nil {
		return nil, err
	}
	if entry.Kind != EntryInfo {
		return nil, fmt.Errorf("%w: entry %q is not an info card", ErrInvalidTransition, entry.ID())
	}

	info := entry.Info
	m.queue.ReadInfoCards[info.ID] = true

	var unlocked []Entry
	for _, id := range info.Unlocks {
		if m.queue.UnlockedQuestions[id] {
			continue
		}
		m.queue.UnlockedQuestions[id] = true
		c := m.deck.Card(id)
		if c == nil || c.Review.Suspended || m.queue.contains(id) {
			continue
		}
		unlocked = append(unlocked, Entry{Kind: EntryCard, Card: c})
	}
	m.rng.Shuffle(len(unlocked), func(i, j int) {
		unlocked[i], unlocked[j] = unlocked[j], unlocked[i]
	})
	m.queue.insertAfterCurrent(unlocked)

	ids := make([]string, len(unlocked))
	for i := range unlocked {
		ids[i] = unlocked[i].ID()
	}
	m.summary.InfoCardsRead++
	m.summary.QuestionsUnlocked += len(unlocked)

	m.advance()
	return ids, nil
}

// NavigatePrevious moves the display back one entry, down to the start of
// the queue. Browsing history never mutates scheduling state.
func (m *Machine) NavigatePrevious() {
	if m.queue.DisplayIndex > 0 {
		m.queue.DisplayIndex--
	}
}

// NavigateNext moves the display forward, up to the cursor.
func (m *Machine) NavigateNext() {
	if m.queue.DisplayIndex < m.queue.CurrentIndex {
		m.queue.DisplayIndex++
	}
}

// ReturnToCurrent snaps the display back to the cursor.
func (m *Machine) ReturnToCurrent() {
	m.queue.DisplayIndex = m.queue.CurrentIndex
}

// actionable returns the entry at the cursor if an action may target it:
// the session is not completed and the learner is not browsing history.
func (m *Machine) actionable() (*Entry, error) {
	if m.queue.Exhausted() {
		return nil, fmt.Errorf("%w: session completed", ErrInvalidTransition)
	}
	if m.queue.DisplayIndex != m.queue.CurrentIndex {
		return nil, fmt.Errorf("%w: viewing history", ErrInvalidTransition)
	}
	return m.queue.Current(), nil
}

// actionableCard is actionable narrowed to reviewable entries.
func (m *Machine) actionableCard() (*Entry, error) {
	entry, err := m.actionable()
	if err != nil {
		return nil, err
	}
	if entry.Kind != EntryCard {
		return nil, fmt.Errorf("%w: entry %q is not reviewable", ErrInvalidTransition, entry.ID())
	}
	return entry, nil
}

// advance clears the finished entry's transient state, moves the cursor, and
// requests persistence: a fresh snapshot mid-session, deletion on normal
// completion. Cram sessions persist nothing.
func (m *Machine) advance() {
	if e := m.queue.Current(); e != nil {
		e.Selected = ""
	}
	m.queue.ItemsCompleted++
	m.queue.CurrentIndex++
	m.queue.DisplayIndex = m.queue.CurrentIndex

	if m.writer == nil {
		return
	}
	if m.queue.Exhausted() {
		m.writer.remove()
		return
	}
	m.writer.save(SnapshotFromQueue(m.queue))
}
