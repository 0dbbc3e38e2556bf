package deck

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/dkessler/mnemo/internal/srs"
)

// dateLayout is the on-disk form of scheduling dates. Day granularity only.
const dateLayout = "2006-01-02"

// deckFile is the wire form of a deck document (JSON or YAML).
type deckFile struct {
	ID    string     `json:"id,omitempty" yaml:"id,omitempty"`
	Name  string     `json:"name" yaml:"name"`
	Kind  Kind       `json:"kind" yaml:"kind"`
	Cards []cardFile `json:"cards" yaml:"cards"`
}

// cardFile is one entry in the deck's authored card list. Learning decks mix
// questions and info cards in a single array, discriminated by Type.
type cardFile struct {
	Type string `json:"type,omitempty" yaml:"type,omitempty"` // "" or "card" or "info"
	ID   string `json:"id" yaml:"id"`

	Front string `json:"front,omitempty" yaml:"front,omitempty"`
	Back  string `json:"back,omitempty" yaml:"back,omitempty"`

	Prompt  string   `json:"prompt,omitempty" yaml:"prompt,omitempty"`
	Options []Option `json:"options,omitempty" yaml:"options,omitempty"`
	Answer  string   `json:"answer,omitempty" yaml:"answer,omitempty"`

	Title   string   `json:"title,omitempty" yaml:"title,omitempty"`
	Body    string   `json:"body,omitempty" yaml:"body,omitempty"`
	Unlocks []string `json:"unlocks,omitempty" yaml:"unlocks,omitempty"`

	Review *reviewFile `json:"review,omitempty" yaml:"review,omitempty"`
}

// reviewFile is the serialized scheduling state of a card.
type reviewFile struct {
	Interval     int      `json:"interval,omitempty" yaml:"interval,omitempty"`
	Ease         float64  `json:"ease,omitempty" yaml:"ease,omitempty"`
	Due          string   `json:"due,omitempty" yaml:"due,omitempty"`
	LastReviewed string   `json:"last_reviewed,omitempty" yaml:"last_reviewed,omitempty"`
	Lapses       int      `json:"lapses,omitempty" yaml:"lapses,omitempty"`
	Mastery      float64  `json:"mastery,omitempty" yaml:"mastery,omitempty"`
	Suspended    bool     `json:"suspended,omitempty" yaml:"suspended,omitempty"`
	Tags         []string `json:"tags,omitempty" yaml:"tags,omitempty"`
}

// Load reads, validates, and decodes a deck file. The format is chosen by
// extension: .json, or .yaml/.yml.
func Load(path string) (*Deck, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read deck: %w", err)
	}
	raw, err := normalizeToJSON(data, isYAMLPath(path))
	if err != nil {
		return nil, fmt.Errorf("deck %s: %w", path, err)
	}
	d, err := Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("deck %s: %w", path, err)
	}
	if d.ID == "" {
		// Stable fallback key for snapshot lookups.
		d.ID = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return d, nil
}

// Parse validates raw JSON against the deck schema and decodes it.
func Parse(raw []byte) (*Deck, error) {
	schema, err := compiledDeckSchema()
	if err != nil {
		return nil, err
	}
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}
	if err := schema.Validate(parsed); err != nil {
		return nil, fmt.Errorf("schema validation: %w", err)
	}

	var df deckFile
	if err := json.Unmarshal(raw, &df); err != nil {
		return nil, fmt.Errorf("decode deck: %w", err)
	}
	d, err := fromFile(df)
	if err != nil {
		return nil, err
	}
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return d, nil
}

// Save writes the deck back to path, preserving the file's format by
// extension. Called after a session so updated scheduling state persists.
func Save(d *Deck, path string) error {
	df := toFile(d)
	var (
		data []byte
		err  error
	)
	if isYAMLPath(path) {
		data, err = yaml.Marshal(df)
	} else {
		data, err = json.MarshalIndent(df, "", "  ")
		if err == nil {
			data = append(data, '\n')
		}
	}
	if err != nil {
		return fmt.Errorf("encode deck: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write deck: %w", err)
	}
	return nil
}

func isYAMLPath(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}

// normalizeToJSON converts a YAML document to canonical JSON bytes so schema
// validation and decoding run on one representation. JSON input passes
// through untouched.
func normalizeToJSON(data []byte, fromYAML bool) ([]byte, error) {
	if !fromYAML {
		return data, nil
	}
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("invalid YAML: %w", err)
	}
	raw, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("normalize YAML: %w", err)
	}
	return raw, nil
}

// fromFile converts the wire form into the domain model, assigning authored
// positions and defaulting review state for never-reviewed cards.
func fromFile(df deckFile) (*Deck, error) {
	defaults := srs.DefaultParams()
	d := &Deck{ID: df.ID, Name: df.Name, Kind: df.Kind}

	for i, cf := range df.Cards {
		if cf.Type == "info" {
			d.InfoCards = append(d.InfoCards, InfoCard{
				ID:       cf.ID,
				Position: i,
				Title:    cf.Title,
				Body:     cf.Body,
				Unlocks:  cf.Unlocks,
			})
			continue
		}
		item, err := reviewFromFile(cf.ID, cf.Review, defaults)
		if err != nil {
			return nil, fmt.Errorf("card %q: %w", cf.ID, err)
		}
		d.Cards = append(d.Cards, Card{
			ID:       cf.ID,
			Position: i,
			Front:    cf.Front,
			Back:     cf.Back,
			Prompt:   cf.Prompt,
			Options:  cf.Options,
			Answer:   cf.Answer,
			Review:   item,
		})
	}
	return d, nil
}

func reviewFromFile(id string, rf *reviewFile, p srs.Params) (srs.Item, error) {
	item := srs.NewItem(id, p)
	if rf == nil {
		return item, nil
	}
	item.Interval = rf.Interval
	if rf.Ease > 0 {
		item.Ease = rf.Ease
	}
	item.Lapses = rf.Lapses
	item.Mastery = rf.Mastery
	item.Suspended = rf.Suspended
	item.Tags = rf.Tags

	if rf.Due != "" {
		due, err := time.Parse(dateLayout, rf.Due)
		if err != nil {
			return srs.Item{}, fmt.Errorf("bad due date %q: %w", rf.Due, err)
		}
		item.Due = due
	}
	if rf.LastReviewed != "" {
		last, err := time.Parse(dateLayout, rf.LastReviewed)
		if err != nil {
			return srs.Item{}, fmt.Errorf("bad last_reviewed date %q: %w", rf.LastReviewed, err)
		}
		item.LastReviewed = last
	}
	return item, nil
}

// toFile converts the domain model back to the wire form, re-interleaving
// cards and info cards by authored position.
func toFile(d *Deck) deckFile {
	total := len(d.Cards) + len(d.InfoCards)
	cards := make([]cardFile, 0, total)

	ci, ii := 0, 0
	for len(cards) < total {
		takeCard := ii >= len(d.InfoCards) ||
			(ci < len(d.Cards) && d.Cards[ci].Position < d.InfoCards[ii].Position)
		if takeCard {
			c := &d.Cards[ci]
			cf := cardFile{
				ID:      c.ID,
				Front:   c.Front,
				Back:    c.Back,
				Prompt:  c.Prompt,
				Options: c.Options,
				Answer:  c.Answer,
				Review:  reviewToFile(c.Review),
			}
			if d.Kind == KindLearning {
				cf.Type = "card"
			}
			cards = append(cards, cf)
			ci++
			continue
		}
		info := &d.InfoCards[ii]
		cards = append(cards, cardFile{
			Type:    "info",
			ID:      info.ID,
			Title:   info.Title,
			Body:    info.Body,
			Unlocks: info.Unlocks,
		})
		ii++
	}

	return deckFile{ID: d.ID, Name: d.Name, Kind: d.Kind, Cards: cards}
}

func reviewToFile(item srs.Item) *reviewFile {
	rf := &reviewFile{
		Interval:  item.Interval,
		Ease:      item.Ease,
		Lapses:    item.Lapses,
		Mastery:   item.Mastery,
		Suspended: item.Suspended,
		Tags:      item.Tags,
	}
	if !item.Due.IsZero() {
		rf.Due = item.Due.Format(dateLayout)
	}
	if !item.LastReviewed.IsZero() {
		rf.LastReviewed = item.LastReviewed.Format(dateLayout)
	}
	return rf
}
