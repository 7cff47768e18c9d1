package prune_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samalone/Hasami/errors"
	"github.com/samalone/Hasami/prune"
	"github.com/samalone/Hasami/timecode"
)

func TestPartition(t *testing.T) {
	items := []prune.Item{
		{ID: "snap-c", TimeCode: 3},
		{ID: "snap-a", TimeCode: 1},
		{ID: "snap-b", TimeCode: 2},
	}

	plan, err := prune.Partition(items, prune.Config{Base: 2, Retain: 2})
	require.NoError(t, err)

	assert.Equal(t, []string{"snap-c", "snap-a"}, plan.Keep)
	assert.Equal(t, []string{"snap-b"}, plan.Discard)
}

func TestPartitionOrderIrrelevant(t *testing.T) {
	cfg := prune.Config{Base: 10, Retain: 3}
	forward := make([]prune.Item, 0, 10)
	backward := make([]prune.Item, 0, 10)
	for i := 1; i <= 10; i++ {
		forward = append(forward, prune.Item{ID: string(rune('a'+i-1)), TimeCode: timecode.TimeCode(i * 10)})
	}
	for i := 10; i >= 1; i-- {
		backward = append(backward, prune.Item{ID: string(rune('a'+i-1)), TimeCode: timecode.TimeCode(i * 10)})
	}

	a, err := prune.Partition(forward, cfg)
	require.NoError(t, err)
	b, err := prune.Partition(backward, cfg)
	require.NoError(t, err)

	assert.Equal(t, a, b)
	assert.Len(t, a.Keep, 3)
	assert.Equal(t, "j", a.Keep[0], "most recent item leads the keep list")
}

func TestPartitionKeepsEverythingWhenRetainExceedsInput(t *testing.T) {
	items := []prune.Item{
		{ID: "x", TimeCode: 5},
		{ID: "y", TimeCode: 7},
	}
	plan, err := prune.Partition(items, prune.Config{Base: 2, Retain: 10})
	require.NoError(t, err)
	assert.Equal(t, []string{"y", "x"}, plan.Keep)
	assert.Empty(t, plan.Discard)
}

func TestPartitionEmptyInput(t *testing.T) {
	plan, err := prune.Partition(nil, prune.Config{Base: 2, Retain: 3})
	require.NoError(t, err)
	assert.Empty(t, plan.Keep)
	assert.Empty(t, plan.Discard)
}

func TestPartitionDuplicateTimeCode(t *testing.T) {
	items := []prune.Item{
		{ID: "first", TimeCode: 42},
		{ID: "second", TimeCode: 42},
	}
	_, err := prune.Partition(items, prune.Config{Base: 2, Retain: 1})
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrDuplicateTimeCode))
	assert.Contains(t, err.Error(), "first")
	assert.Contains(t, err.Error(), "second")
}

func TestConfigValidate(t *testing.T) {
	assert.NoError(t, prune.Config{Base: 2, Retain: 1}.Validate())

	err := prune.Config{Base: 1, Retain: 1}.Validate()
	assert.True(t, errors.Is(err, errors.ErrInvalidBase))

	err = prune.Config{Base: 2, Retain: 0}.Validate()
	assert.True(t, errors.Is(err, errors.ErrInvalidRetainCount))

	_, err = prune.Partition(nil, prune.Config{Base: 0, Retain: 5})
	assert.True(t, errors.Is(err, errors.ErrInvalidBase))
}
