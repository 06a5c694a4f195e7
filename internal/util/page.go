package util //nolint:revive // package name util hosts small shared helpers

const (
	// DefaultPageSize is used when page_size is absent or invalid.
	DefaultPageSize = 20
	// MaxPageSize caps page_size.
	MaxPageSize = 100
)

// Page is a normalised 1-based page request.
type Page struct {
	Number int `json:"page"`
	Size   int `json:"page_size"`
}

// NewPage clamps page to >= 1 and size to 1..MaxPageSize, defaulting size when <= 0.
func NewPage(page, size int) Page {
	if page < 1 {
		page = 1
	}
	switch {
	case size <= 0:
		size = DefaultPageSize
	case size > MaxPageSize:
		size = MaxPageSize
	}
	return Page{Number: page, Size: size}
}

// Limit returns the SQL LIMIT.
func (p Page) Limit() int { return p.Size }

// Offset returns the SQL OFFSET.
func (p Page) Offset() int { return (p.Number - 1) * p.Size }

// TotalPages returns how many pages total items span; at least 1.
func (p Page) TotalPages(total int) int {
	if total <= 0 || p.Size <= 0 {
		return 1
	}
	return (total + p.Size - 1) / p.Size
}
