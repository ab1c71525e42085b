package readstore

import (
	"math"

	"room-reservation/internal/usecase/queries"
)

func pageBounds(page queries.Page) (offset, limit int32) {
	return clampInt32(page.Skip), clampInt32(page.Limit)
}

func clampInt32(v int) int32 {
	if v < 0 {
		return 0
	}
	if v > math.MaxInt32 {
		return math.MaxInt32
	}
	return int32(v) // #nosec G115 -- bounded above
}
