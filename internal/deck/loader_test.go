package deck

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dkessler/mnemo/internal/srs"
)

const flashcardJSON = `{
  "id": "es-basics",
  "name": "Spanish basics",
  "kind": "flashcards",
  "cards": [
    {
      "id": "c1",
      "front": "hola",
      "back": "hello",
      "review": {
        "interval": 3,
        "ease": 2.5,
        "due": "2025-06-18",
        "last_reviewed": "2025-06-15",
        "mastery": 0.31
      }
    },
    {"id": "c2", "front": "adios", "back": "goodbye"}
  ]
}`

const learningYAML = `
name: Photosynthesis
kind: learning
cards:
  - type: info
    id: intro
    title: What plants do
    body: Plants turn light into sugar.
    unlocks: [q1, q2]
  - type: card
    id: q1
    prompt: What do plants produce?
    options:
      - {id: a, text: Sugar}
      - {id: b, text: Salt}
    answer: a
  - type: card
    id: q2
    prompt: What powers photosynthesis?
    options:
      - {id: a, text: Light}
      - {id: b, text: Sound}
    answer: a
  - type: card
    id: q3
    prompt: Where does it happen?
    options:
      - {id: a, text: Leaves}
      - {id: b, text: Roots}
    answer: a
`

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadFlashcardJSON(t *testing.T) {
	d, err := Load(writeTemp(t, "es.json", flashcardJSON))
	require.NoError(t, err)

	require.Equal(t, "es-basics", d.ID)
	require.Equal(t, KindFlashcards, d.Kind)
	require.Len(t, d.Cards, 2)

	c1 := d.Card("c1")
	require.NotNil(t, c1)
	require.Equal(t, 3, c1.Review.Interval)
	require.Equal(t, 2.5, c1.Review.Ease)
	require.Equal(t, "2025-06-18", c1.Review.Due.Format(dateLayout))

	// Cards without review state start fresh with the default ease.
	c2 := d.Card("c2")
	require.NotNil(t, c2)
	require.Equal(t, 0, c2.Review.Interval)
	require.Equal(t, srs.DefaultParams().DefaultEase, c2.Review.Ease)
	require.True(t, c2.Review.NeverReviewed())
}

func TestLoadLearningYAML(t *testing.T) {
	d, err := Load(writeTemp(t, "photo.yaml", learningYAML))
	require.NoError(t, err)

	require.Equal(t, KindLearning, d.Kind)
	require.Len(t, d.Cards, 3)
	require.Len(t, d.InfoCards, 1)
	// ID falls back to the file name when the document has none.
	require.Equal(t, "photo", d.ID)

	info := d.InfoCard("intro")
	require.NotNil(t, info)
	require.Equal(t, []string{"q1", "q2"}, info.Unlocks)
	require.Equal(t, 0, info.Position)
	require.Equal(t, 1, d.Card("q1").Position)

	gated := d.GatedQuestionIDs()
	require.True(t, gated["q1"])
	require.True(t, gated["q2"])
	require.False(t, gated["q3"])
}

func TestLoadRejectsSchemaViolations(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"unknown kind", `{"name":"x","kind":"sudoku","cards":[]}`},
		{"missing name", `{"kind":"quiz","cards":[]}`},
		{"card without id", `{"name":"x","kind":"quiz","cards":[{"prompt":"?"}]}`},
		{"unknown field", `{"name":"x","kind":"quiz","cards":[],"theme":"dark"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeTemp(t, "bad.json", tt.doc))
			require.Error(t, err)
		})
	}
}

func TestLoadRejectsDanglingUnlock(t *testing.T) {
	doc := `{
  "name": "x", "kind": "learning",
  "cards": [{"type": "info", "id": "i1", "unlocks": ["ghost"]}]
}`
	_, err := Load(writeTemp(t, "dangling.json", doc))
	require.ErrorContains(t, err, "ghost")
}

func TestSaveRoundTrip(t *testing.T) {
	path := writeTemp(t, "photo.yaml", learningYAML)
	d, err := Load(path)
	require.NoError(t, err)

	// Mutate some scheduling state and write back.
	q1 := d.Card("q1")
	updated, err := srs.NextState(q1.Review, srs.Good, day(2025, 6, 15), srs.DefaultParams())
	require.NoError(t, err)
	q1.Review = updated

	require.NoError(t, Save(d, path))
	reloaded, err := Load(path)
	require.NoError(t, err)

	got := reloaded.Card("q1").Review
	require.Equal(t, updated.Interval, got.Interval)
	require.Equal(t, updated.Ease, got.Ease)
	require.Equal(t, updated.Due.Format(dateLayout), got.Due.Format(dateLayout))

	// Authored interleaving survives the round trip.
	require.Equal(t, 0, reloaded.InfoCard("intro").Position)
	require.Equal(t, 3, reloaded.Card("q3").Position)
}

func TestValidateDuplicateIDs(t *testing.T) {
	d := &Deck{
		Name: "dup",
		Kind: KindQuiz,
		Cards: []Card{
			{ID: "a"},
			{ID: "a"},
		},
	}
	require.ErrorContains(t, d.Validate(), "duplicate")
}
