package deck

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestDeckItems(t *testing.T) {
	d, err := Load(writeTemp(t, "es.json", flashcardJSON))
	require.NoError(t, err)

	items := d.Items()
	require.Len(t, items, 2)
	require.Equal(t, "c1", items[0].ID)
	require.Equal(t, 3, items[0].Interval)
}

func TestCardOption(t *testing.T) {
	c := Card{
		ID:      "q",
		Options: []Option{{ID: "a", Text: "yes"}, {ID: "b", Text: "no"}},
	}
	require.Equal(t, "yes", c.Option("a").Text)
	require.Nil(t, c.Option("z"))
}

func TestValidateInfoCardsOnlyInLearningDecks(t *testing.T) {
	d := &Deck{
		Name:      "bad",
		Kind:      KindQuiz,
		InfoCards: []InfoCard{{ID: "i1"}},
	}
	require.Error(t, d.Validate())
}
