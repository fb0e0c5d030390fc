//go:build property

package merge_test

import (
	"testing"
	"time"

	"github.com/MichalMitros/ecom-reconciler/internal/merge"
	"github.com/MichalMitros/ecom-reconciler/internal/platform/models"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/samber/lo"
)

// record remembers its leg and position so stability can be checked.
type record struct {
	time time.Time
	leg  int
	pos  int
}

func (r record) Timestamp() time.Time {
	return r.time
}

func (r record) Value(string) string {
	return ""
}

func records(leg int, minutes []int) []record {
	return lo.Map(minutes, func(m int, ix int) record {
		return record{time: t0.Add(time.Duration(m) * time.Minute), leg: leg, pos: ix}
	})
}

func TestPropertyMerge(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 500
	properties := gopter.NewProperties(parameters)

	minutes := gen.SliceOf(gen.IntRange(0, 30))

	properties.Property("length is the sum of both legs", prop.ForAll(
		func(a, b []int) bool {
			return len(merge.Merge(records(0, a), records(1, b))) == len(a)+len(b)
		},
		minutes, minutes,
	))

	properties.Property("output is sorted and stable", prop.ForAll(
		func(a, b []int) bool {
			merged := merge.Merge(records(0, a), records(1, b))
			for ix := 1; ix < len(merged); ix++ {
				prev, cur := merged[ix-1], merged[ix]
				if cur.time.Before(prev.time) {
					return false
				}
				if cur.time.Equal(prev.time) && (cur.leg < prev.leg || cur.leg == prev.leg && cur.pos < prev.pos) {
					return false
				}
			}
			return true
		},
		minutes, minutes,
	))

	properties.TestingRun(t)
}

func TestPropertyColumns(t *testing.T) {
	properties := gopter.NewProperties(nil)

	layouts := []models.Layout{
		models.LayoutStock1C, models.LayoutStockStandard, models.LayoutStockYandex, models.LayoutStockClient,
		models.LayoutPrice1C, models.LayoutPriceAsnaru, models.LayoutPriceOzon,
		models.LayoutStore1C, models.LayoutStoreStandard, models.LayoutStoreYandex,
	}
	layout := gen.IntRange(0, len(layouts)-1)

	properties.Property("union keeps every column once and ends with the link", prop.ForAll(
		func(x, y int) bool {
			columns := merge.Columns(layouts[x], layouts[y], models.ColumnLink)
			if len(columns) != len(lo.Uniq(columns)) || columns[len(columns)-1] != models.ColumnLink {
				return false
			}
			return lo.EveryBy(layouts[y], func(c string) bool { return columns.Has(c) })
		},
		layout, layout,
	))

	properties.TestingRun(t)
}
