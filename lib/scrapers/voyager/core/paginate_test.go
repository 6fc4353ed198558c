package core

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

// fetches pages of `pageSize` items until `pages` pages have been
// served, then returns empty pages forever
func servePages(pageSize, pages int, calls *int) func(ctx context.Context, offset int) ([]int, error) {
	return func(ctx context.Context, offset int) ([]int, error) {
		*calls++
		if offset >= pageSize*pages {
			return nil, nil
		}
		items := make([]int, pageSize)
		for i := range items {
			items[i] = offset + i
		}
		return items, nil
	}
}

func TestCollectPagesNaturalEnd(t *testing.T) {
	calls := 0
	results, err := CollectPages(context.Background(), 10, 0, servePages(10, 3, &calls))
	require.NoError(t, err)
	require.Len(t, results, 30)
	// the empty fourth page is observed, a fifth fetch never happens
	require.Equal(t, 4, calls)
}

func TestCollectPagesLimit(t *testing.T) {
	calls := 0
	results, err := CollectPages(context.Background(), 10, 25, servePages(10, 3, &calls))
	require.NoError(t, err)
	require.Len(t, results, 25)
	require.Equal(t, 3, calls)
}

func TestCollectPagesSafetyCeiling(t *testing.T) {
	calls := 0
	endless := func(ctx context.Context, offset int) ([]int, error) {
		calls++
		return make([]int, 10), nil
	}
	results, err := CollectPages(context.Background(), 10, 0, endless)
	require.NoError(t, err)
	require.Len(t, results, 10*maxRepeatedRequests)
	require.Equal(t, maxRepeatedRequests, calls)
}

func TestCollectPagesFetchError(t *testing.T) {
	boom := errors.New("boom")
	calls := 0
	failing := func(ctx context.Context, offset int) ([]int, error) {
		calls++
		if offset > 0 {
			return nil, boom
		}
		return make([]int, 10), nil
	}
	_, err := CollectPages(context.Background(), 10, 0, failing)
	require.ErrorIs(t, err, boom)
	require.Equal(t, 2, calls)
}
