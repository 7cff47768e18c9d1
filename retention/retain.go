package retention

import (
	"sort"

	"github.com/samalone/Hasami/errors"
	"github.com/samalone/Hasami/timecode"
)

// Retain selects which members survive a pruning pass, returning exactly
// min(count, Len()) members. The most recent member is always kept; the
// remaining slots are spread across digit buckets, weighted so that
// older buckets receive proportionally more representation once the
// guaranteed recent slot is spent. The selection is deterministic and
// independent of input order.
//
// Bucket boundaries are absolute digit prefixes, anchored at the most
// recent member's top digit position, never at the set's incidental
// minimum. A pruned subset therefore decomposes along the same
// boundaries as the set it came from, which is what makes retaining
// incrementally consistent: if every member of a later batch B is newer
// than every member of A, retaining A first and then retaining the kept
// members together with B gives the same result as retaining A ∪ B from
// scratch.
func (s Set) Retain(base, count int) (Set, error) {
	if base <= 1 {
		return Set{}, errors.Wrapf(errors.ErrInvalidBase, "base %d", base)
	}
	if count <= 0 {
		return Set{}, errors.Wrapf(errors.ErrInvalidRetainCount, "count %d", count)
	}
	if len(s.codes) == 0 {
		return Set{}, nil
	}
	if s.codes[0] < 0 {
		return Set{}, errors.Wrapf(errors.ErrNegativeTimeCode, "oldest member %d", int64(s.codes[0]))
	}

	top := digitCountOf(s.codes[len(s.codes)-1], base) - 1
	kept := retainAt(s.codes, count, top, base)
	sort.Slice(kept, func(i, j int) bool { return kept[i] < kept[j] })
	return Set{codes: kept}, nil
}

// WouldRetain reports whether x would survive Retain(base, count).
func (s Set) WouldRetain(x timecode.TimeCode, base, count int) (bool, error) {
	kept, err := s.Retain(base, count)
	if err != nil {
		return false, err
	}
	return kept.Contains(x), nil
}

// retainAt works on an ascending slice of unique non-negative codes that
// all share their digits above position pos. Base and sign were
// validated at the entry point. Returns exactly min(count, len(codes))
// members for count >= 1.
//
// Two distinct codes sharing every digit above position 0 must differ at
// position 0, so buckets there are singletons and the recursion bottoms
// out before pos can go negative.
func retainAt(codes []timecode.TimeCode, count, pos, base int) []timecode.TimeCode {
	if len(codes) == 0 {
		return nil
	}
	// A singleton always survives, whatever the count.
	if len(codes) == 1 {
		return []timecode.TimeCode{codes[0]}
	}

	// The most recent member is unconditionally retained.
	recent := codes[len(codes)-1]
	kept := []timecode.TimeCode{recent}
	if count == 1 {
		return kept
	}

	buckets := bucketize(codes[:len(codes)-1], pos, base)
	allocate(buckets, count-1, base)

	remaining := count - 1
	for i := len(buckets) - 1; i >= 0; i-- {
		b := buckets[i]
		if b.alloc == 0 {
			continue
		}
		sub := retainAt(b.codes, b.alloc, pos-1, base)
		kept = append(kept, sub...)
		remaining -= len(sub)
		if remaining <= 0 {
			break
		}
	}
	return kept
}

// bucket is a contiguous run of codes sharing the digit at the partition
// position, plus the slot allocation it receives.
type bucket struct {
	digit int
	codes []timecode.TimeCode
	alloc int
}

// bucketize groups an ascending slice by its digit at position pos.
// Because all codes share the digits above pos, the digit at pos is
// non-decreasing along the slice and each bucket is a contiguous run.
// Buckets come back in ascending digit order, occupied digits only.
func bucketize(codes []timecode.TimeCode, pos, base int) []bucket {
	var buckets []bucket
	start := 0
	current := digitAt(codes[0], pos, base)
	for i := 1; i < len(codes); i++ {
		d := digitAt(codes[i], pos, base)
		if d != current {
			buckets = append(buckets, bucket{digit: current, codes: codes[start:i]})
			start = i
			current = d
		}
	}
	return append(buckets, bucket{digit: current, codes: codes[start:]})
}

// allocate distributes amount slots across the occupied buckets in two
// passes. Weights favor buckets far from the most recent member: digit d
// weighs base-d out of base*(base+1)/2, so the oldest band gets the
// largest share and the band the retained recent member already
// represents gets the smallest.
//
// Pass 1 rounds each share half away from zero, clamped to the bucket's
// size. Pass 2 walks off the rounding surplus deterministically: excess
// slots go to buckets newest-first (skipping full ones), deficits are
// taken back oldest-first (skipping empty allocations). The allocations
// then sum to min(amount, total capacity) exactly.
func allocate(buckets []bucket, amount, base int) {
	totalWeight := base * (base + 1) / 2

	allocated := 0
	for i := range buckets {
		share := roundedShare(amount, base-buckets[i].digit, totalWeight)
		if share > len(buckets[i].codes) {
			share = len(buckets[i].codes)
		}
		buckets[i].alloc = share
		allocated += share
	}

	surplus := amount - allocated
	for surplus > 0 {
		gave := false
		for i := len(buckets) - 1; i >= 0 && surplus > 0; i-- {
			if buckets[i].alloc < len(buckets[i].codes) {
				buckets[i].alloc++
				surplus--
				gave = true
			}
		}
		// Every bucket is full: amount exceeds the member count and the
		// min() in the contract absorbs the difference.
		if !gave {
			break
		}
	}
	for surplus < 0 {
		for i := 0; i < len(buckets) && surplus < 0; i++ {
			if buckets[i].alloc > 0 {
				buckets[i].alloc--
				surplus++
			}
		}
	}
}

// roundedShare computes round(amount * weight / totalWeight) with halves
// rounded away from zero, in exact integer arithmetic.
func roundedShare(amount, weight, totalWeight int) int {
	return (2*amount*weight + totalWeight) / (2 * totalWeight)
}

// Unchecked digit views: base and sign were validated at the Retain
// entry point, so the error paths are impossible here.

func digitAt(c timecode.TimeCode, position, base int) int {
	d, _ := c.Digit(position, base)
	return d
}

func digitCountOf(c timecode.TimeCode, base int) int {
	n, _ := c.DigitCount(base)
	return n
}
