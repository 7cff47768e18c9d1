// Package prune bridges between opaque item identifiers and the
// retention core. Collaborators that walk directories or list snapshots
// hand over (identifier, time code) pairs; Partition returns which
// identifiers to keep and which to discard. All I/O — traversal, trash
// moves, deletion — stays with the caller.
package prune

import (
	"sort"

	"github.com/samalone/Hasami/errors"
	"github.com/samalone/Hasami/logger"
	"github.com/samalone/Hasami/retention"
	"github.com/samalone/Hasami/timecode"
)

// Item pairs an opaque identifier with its time code. Input order is
// irrelevant; time codes must be unique across items.
type Item struct {
	ID       string
	TimeCode timecode.TimeCode
}

// Config carries the retention parameters.
type Config struct {
	// Base is the positional base the thinning recursion buckets by.
	Base int
	// Retain is the number of items to keep.
	Retain int
}

// Validate fails fast on configuration that the retention core would
// reject.
func (c Config) Validate() error {
	if c.Base <= 1 {
		return errors.Wrapf(errors.ErrInvalidBase, "base %d", c.Base)
	}
	if c.Retain <= 0 {
		return errors.Wrapf(errors.ErrInvalidRetainCount, "retain %d", c.Retain)
	}
	return nil
}

// Plan is the partition of the input identifiers. Keep and Discard are
// each ordered most-recent-first and together cover the input exactly.
type Plan struct {
	Keep    []string
	Discard []string
}

// Partition decides which items survive pruning under cfg. Exactly
// min(cfg.Retain, len(items)) identifiers land in Keep, always including
// the most recent item; the rest land in Discard.
func Partition(items []Item, cfg Config) (Plan, error) {
	if err := cfg.Validate(); err != nil {
		return Plan{}, err
	}

	byCode := make(map[timecode.TimeCode]string, len(items))
	codes := make([]timecode.TimeCode, 0, len(items))
	for _, item := range items {
		if prior, dup := byCode[item.TimeCode]; dup {
			return Plan{}, errors.Wrapf(errors.ErrDuplicateTimeCode,
				"time code %d shared by %q and %q", int64(item.TimeCode), prior, item.ID)
		}
		byCode[item.TimeCode] = item.ID
		codes = append(codes, item.TimeCode)
	}

	all := retention.NewSet(codes...)
	kept, err := all.Retain(cfg.Base, cfg.Retain)
	if err != nil {
		return Plan{}, err
	}
	discarded := all.Subtracting(kept)

	plan := Plan{
		Keep:    identifiers(kept, byCode),
		Discard: identifiers(discarded, byCode),
	}
	logger.Debugw("partition computed",
		"items", len(items),
		"base", cfg.Base,
		"retain", cfg.Retain,
		"kept", len(plan.Keep),
		"discarded", len(plan.Discard))
	return plan, nil
}

// identifiers maps a set back to its identifiers, most recent first.
func identifiers(s retention.Set, byCode map[timecode.TimeCode]string) []string {
	codes := s.Codes()
	sort.Slice(codes, func(i, j int) bool { return codes[i] > codes[j] })
	ids := make([]string, len(codes))
	for i, c := range codes {
		ids[i] = byCode[c]
	}
	return ids
}
