package stats

import (
	"sort"
	"strconv"

	"github.com/pable/go-lol-metrics/internal/model"
)

// ItemNamer resolves item identifiers to display names. Implementations
// report false for identifiers they do not know.
type ItemNamer interface {
	Name(id int) (string, bool)
}

// ItemCount is how often one item appeared across a champion's slots.
type ItemCount struct {
	ItemID int
	// Label is the display name when the item resolved, otherwise the
	// decimal identifier.
	Label    string
	Resolved bool
	Count    int
}

// ItemResult is an item frequency table, most frequent first.
type ItemResult struct {
	Status   Status
	Champion string
	Games    int
	Items    []ItemCount
}

// ItemFrequency counts every non-empty equipment slot across the rows of
// champion in d. When namer is nil the labels are raw identifiers.
func ItemFrequency(d *model.Dataset, champion string, namer ItemNamer) (ItemResult, error) {
	res := ItemResult{Champion: champion}
	if err := d.Require("items", append([]model.Column{model.ColChampion}, model.ItemColumns...)...); err != nil {
		return res, err
	}

	rows := ByChampion(d, champion)
	res.Games = rows.Len()
	if rows.Len() == 0 {
		res.Status = StatusNotFound
		return res, nil
	}

	counts := make(map[int]int)
	for i := range rows.Rows {
		for _, id := range rows.Rows[i].Items {
			counts[id]++
		}
	}
	delete(counts, model.NoItem)

	res.Items = make([]ItemCount, 0, len(counts))
	for id, n := range counts {
		res.Items = append(res.Items, ItemCount{ItemID: id, Label: strconv.Itoa(id), Count: n})
	}
	sort.Slice(res.Items, func(i, j int) bool {
		if res.Items[i].Count != res.Items[j].Count {
			return res.Items[i].Count > res.Items[j].Count
		}
		return res.Items[i].ItemID < res.Items[j].ItemID
	})
	NameItems(res.Items, namer)
	return res, nil
}

// NameItems relabels items in place with names from namer. It is a no-op
// when namer is nil; identifiers the namer does not know keep their numeric
// label. Entries that resolve to the same name are not merged.
func NameItems(items []ItemCount, namer ItemNamer) {
	if namer == nil {
		return
	}
	for i := range items {
		if name, ok := namer.Name(items[i].ItemID); ok {
			items[i].Label = name
			items[i].Resolved = true
		}
	}
}
