// Package pagination holds the shared offset/limit query shape.
package pagination

const (
	DefaultLimit = 20
	MaxLimit     = 100
)

// Pagination binds page/limit query parameters.
type Pagination struct {
	Page  int `form:"page" json:"page"`
	Limit int `form:"limit" json:"limit"`
}

// Normalize clamps page and limit into their valid ranges.
func (p Pagination) Normalize() Pagination {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Limit <= 0 {
		p.Limit = DefaultLimit
	}
	if p.Limit > MaxLimit {
		p.Limit = MaxLimit
	}
	return p
}

// Offset returns the slice offset for the normalized page.
func (p Pagination) Offset() int {
	n := p.Normalize()
	return (n.Page - 1) * n.Limit
}

// Slice applies offset/limit to a total count and returns slice bounds.
func Slice(total, page, limit int) (start, end int) {
	p := Pagination{Page: page, Limit: limit}.Normalize()
	start = p.Offset()
	if start > total {
		start = total
	}
	end = start + p.Limit
	if end > total {
		end = total
	}
	return start, end
}
