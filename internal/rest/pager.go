package rest

import (
	"strconv"

	"github.com/ojlab/discussions/internal/rest/response"
)

// pagerWindow is how many numbered pages show on each side of the current one.
const pagerWindow = 2

// buildPagerItems renders the moderation queue's pager widget: a prev arrow,
// a window of numbered pages around the current one, and a next arrow.
func buildPagerItems(page, pageSize int, total int64) []response.PageItem {
	lastPage := int((total + int64(pageSize) - 1) / int64(pageSize))
	if lastPage < 1 {
		lastPage = 1
	}
	if page > lastPage {
		page = lastPage
	}

	items := make([]response.PageItem, 0, 2*pagerWindow+3)

	prev := response.PageItem{Label: "«", Page: page - 1}
	if page == 1 {
		prev.Class = "disabled"
		prev.Page = 1
	}
	items = append(items, prev)

	first := page - pagerWindow
	if first < 1 {
		first = 1
	}
	last := page + pagerWindow
	if last > lastPage {
		last = lastPage
	}
	for p := first; p <= last; p++ {
		item := response.PageItem{Label: strconv.Itoa(p), Page: p}
		if p == page {
			item.Class = "active"
		}
		items = append(items, item)
	}

	next := response.PageItem{Label: "»", Page: page + 1}
	if page == lastPage {
		next.Class = "disabled"
		next.Page = lastPage
	}
	items = append(items, next)

	return items
}
