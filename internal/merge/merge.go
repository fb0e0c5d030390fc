package merge

import (
	"slices"

	"github.com/MichalMitros/ecom-reconciler/internal/platform/models"
)

// Merge concatenates both legs and sorts records by timestamp.
// Records with equal timestamps keep their order, records of a come first. Nothing is de-duplicated.
func Merge[T models.Record](a, b []T) []T {
	merged := make([]T, 0, len(a)+len(b))
	merged = append(merged, a...)
	merged = append(merged, b...)

	slices.SortStableFunc(merged, func(x, y T) int {
		return x.Timestamp().Compare(y.Timestamp())
	})

	return merged
}

// Columns returns the columns of a without the excluded one, followed by columns only b has.
func Columns(a, b models.Layout, exclude string) models.Layout {
	columns := make(models.Layout, 0, len(a)+len(b))
	for _, c := range a {
		if c != exclude {
			columns = append(columns, c)
		}
	}

	for _, c := range b {
		if !columns.Has(c) {
			columns = append(columns, c)
		}
	}

	return columns
}
