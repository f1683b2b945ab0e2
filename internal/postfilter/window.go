package postfilter

import "encoding/json"

// PageWindowItem is either a page index or a gap marker in the pagination strip.
type PageWindowItem struct {
	Page     int
	Ellipsis bool
}

// PageItem returns a window entry for page index i.
func PageItem(i int) PageWindowItem { return PageWindowItem{Page: i} }

// EllipsisItem returns a gap marker.
func EllipsisItem() PageWindowItem { return PageWindowItem{Page: -1, Ellipsis: true} }

func (w PageWindowItem) MarshalJSON() ([]byte, error) {
	if w.Ellipsis {
		return json.Marshal(struct {
			Ellipsis bool `json:"ellipsis"`
		}{true})
	}
	return json.Marshal(struct {
		Page int `json:"page"`
	}{w.Page})
}

func (w *PageWindowItem) UnmarshalJSON(data []byte) error {
	var raw struct {
		Page     *int `json:"page"`
		Ellipsis bool `json:"ellipsis"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw.Ellipsis || raw.Page == nil {
		*w = EllipsisItem()
		return nil
	}
	*w = PageItem(*raw.Page)
	return nil
}

// BuildPageWindow produces the compact page strip: the first and last pages, the pages
// adjacent to the current one, and a single ellipsis standing in for each hidden run.
// The leading ellipsis sits at index 1 and only appears once current > 2; the trailing
// one sits at totalPages-2 and only appears while current < totalPages-3.
func BuildPageWindow(currentPage, totalPages int) []PageWindowItem {
	if totalPages <= 0 {
		return []PageWindowItem{}
	}
	current := ClampPage(currentPage, totalPages)

	window := make([]PageWindowItem, 0, 7)
	for idx := 0; idx < totalPages; idx++ {
		if (idx == 1 && current > 2) || (idx == totalPages-2 && current < totalPages-3) {
			window = append(window, EllipsisItem())
			continue
		}
		if idx == 0 || idx == totalPages-1 || abs(idx-current) <= 1 {
			window = append(window, PageItem(idx))
		}
	}
	return window
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
