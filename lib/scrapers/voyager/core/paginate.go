package core

import "context"

// hard ceiling on the number of page fetches one collection may issue,
// bounding request volume against an upstream that never signals
// completion
const maxRepeatedRequests = 200

// CollectPages drives fetch across offsets until the upstream returns
// an empty page, the limit is reached, or the request ceiling trips.
// limit <= 0 collects without a target; appended pages are truncated
// so the running total never exceeds a set limit. A failed page aborts
// the collection immediately; pages are never re-issued.
func CollectPages[T any](
	ctx context.Context,
	pageSize int,
	limit int,
	fetch func(ctx context.Context, offset int) ([]T, error),
) ([]T, error) {
	var results []T
	offset := 0
	for {
		items, err := fetch(ctx, offset)
		if err != nil {
			return nil, err
		}
		if len(items) == 0 {
			return results, nil
		}

		if limit > 0 && len(results)+len(items) > limit {
			items = items[:limit-len(results)]
		}
		results = append(results, items...)

		if limit > 0 && len(results) >= limit {
			return results, nil
		}
		if len(results)/pageSize >= maxRepeatedRequests {
			return results, nil
		}

		offset += pageSize
	}
}
