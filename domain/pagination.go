package domain

// DefaultPageSize is the page size used by the HTML list pages.
const DefaultPageSize = 3

// Pagination is a normalized skip/perPage pair: Skip >= 0 and PerPage >= 1.
type Pagination struct {
	Skip    int
	PerPage int
}

func NewPagination(skip, perPage int) Pagination {
	if skip < 0 {
		skip = 0
	}
	if perPage < 1 {
		perPage = 1
	}
	return Pagination{Skip: skip, PerPage: perPage}
}

type PageInfo struct {
	Page       int   `json:"page"`
	MaxPage    int   `json:"max_page"`
	PerPage    int   `json:"per_page"`
	StartIndex int   `json:"start_index"`
	Total      int64 `json:"total"`
}

// NewPageInfo clamps the requested page into [0, maxPage] where
// maxPage = ceil(total/perPage) - 1, floored at 0.
func NewPageInfo(total int64, perPage, requested int) PageInfo {
	if perPage < 1 {
		perPage = 1
	}
	maxPage := int((total+int64(perPage)-1)/int64(perPage)) - 1
	if maxPage < 0 {
		maxPage = 0
	}
	page := requested
	if page < 0 {
		page = 0
	}
	if page > maxPage {
		page = maxPage
	}
	return PageInfo{
		Page:       page,
		MaxPage:    maxPage,
		PerPage:    perPage,
		StartIndex: page * perPage,
		Total:      total,
	}
}

func (p PageInfo) Pagination() Pagination {
	return NewPagination(p.StartIndex, p.PerPage)
}

func (p PageInfo) HasPrev() bool { return p.Page > 0 }
func (p PageInfo) HasNext() bool { return p.Page < p.MaxPage }
func (p PageInfo) PrevPage() int { return p.Page - 1 }
func (p PageInfo) NextPage() int { return p.Page + 1 }
