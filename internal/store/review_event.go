package store

import (
	"context"
	"fmt"

	"github.com/dkessler/mnemo/ent"
	"github.com/dkessler/mnemo/ent/reviewevent"
	"github.com/dkessler/mnemo/internal/session"
	"github.com/dkessler/mnemo/internal/srs"
)

// ReviewEventRepo appends to and queries the review log.
type ReviewEventRepo interface {
	// Append records one rated review. leech marks reviews that tripped
	// the leech policy.
	Append(ctx context.Context, rec session.ReviewRecord, leech bool) error

	// CountByDeck returns how many reviews a deck has accumulated.
	CountByDeck(ctx context.Context, deckID string) (int, error)

	// RatingBreakdown tallies a deck's reviews per rating.
	RatingBreakdown(ctx context.Context, deckID string) (map[srs.Rating]int, error)

	// LeechEvents returns the item ids flagged as leeches in a deck,
	// most recent first, without duplicates.
	LeechEvents(ctx context.Context, deckID string) ([]string, error)
}

type reviewEventRepo struct {
	client *ent.Client
}

func (r *reviewEventRepo) Append(ctx context.Context, rec session.ReviewRecord, leech bool) error {
	_, err := r.client.ReviewEvent.Create().
		SetSessionID(rec.SessionID).
		SetDeckID(rec.DeckID).
		SetItemID(rec.ItemID).
		SetRating(int(rec.Rating)).
		SetIntervalBefore(rec.Before.Interval).
		SetIntervalAfter(rec.After.Interval).
		SetEaseBefore(rec.Before.Ease).
		SetEaseAfter(rec.After.Ease).
		SetMasteryAfter(rec.After.Mastery).
		SetLapsesAfter(rec.After.Lapses).
		SetLeech(leech).
		SetReviewedAt(rec.ReviewedAt).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save review event: %w", err)
	}
	return nil
}

func (r *reviewEventRepo) CountByDeck(ctx context.Context, deckID string) (int, error) {
	n, err := r.client.ReviewEvent.Query().
		Where(reviewevent.DeckID(deckID)).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count reviews: %w", err)
	}
	return n, nil
}

func (r *reviewEventRepo) RatingBreakdown(ctx context.Context, deckID string) (map[srs.Rating]int, error) {
	events, err := r.client.ReviewEvent.Query().
		Where(reviewevent.DeckID(deckID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query reviews: %w", err)
	}
	breakdown := make(map[srs.Rating]int)
	for _, e := range events {
		breakdown[srs.Rating(e.Rating)]++
	}
	return breakdown, nil
}

func (r *reviewEventRepo) LeechEvents(ctx context.Context, deckID string) ([]string, error) {
	events, err := r.client.ReviewEvent.Query().
		Where(
			reviewevent.DeckID(deckID),
			reviewevent.Leech(true),
		).
		Order(ent.Desc(reviewevent.FieldReviewedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query leech events: %w", err)
	}
	seen := make(map[string]bool)
	var ids []string
	for _, e := range events {
		if seen[e.ItemID] {
			continue
		}
		seen[e.ItemID] = true
		ids = append(ids, e.ItemID)
	}
	return ids, nil
}
