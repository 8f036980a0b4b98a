package domain

// Paging decides the page size from the viewport width.
type Paging struct {
	Breakpoint int // widths below this use Narrow
	Narrow     int
	Wide       int
}

// DefaultPaging returns page sizes tuned for terminal columns.
func DefaultPaging() Paging {
	return Paging{Breakpoint: 100, Narrow: 6, Wide: 10}
}

// SizeFor returns the page size for a viewport width.
func (p Paging) SizeFor(width int) int {
	if width < p.Breakpoint {
		return p.Narrow
	}
	return p.Wide
}

// Pager reveals a filtered list one page at a time.
type Pager struct {
	page int
	size int
}

// NewPager returns a pager on page 1.
func NewPager(size int) Pager {
	if size < 1 {
		size = 1
	}
	return Pager{page: 1, size: size}
}

// Page returns the 1-based number of revealed pages.
func (p *Pager) Page() int { return p.page }

// Size returns the page size.
func (p *Pager) Size() int { return p.size }

// Reset goes back to page 1.
func (p *Pager) Reset() { p.page = 1 }

// Next reveals one more page.
func (p *Pager) Next() { p.page++ }

// Resize changes the page size and goes back to page 1.
func (p *Pager) Resize(size int) {
	if size < 1 {
		size = 1
	}
	p.size = size
	p.page = 1
}

// Limit returns the number of rows revealed.
func (p *Pager) Limit() int {
	return p.page * p.size
}

// Reveal returns the revealed prefix of issues.
func (p *Pager) Reveal(issues []Issue) []Issue {
	if n := p.Limit(); n < len(issues) {
		return issues[:n]
	}
	return issues
}

// HasMore reports whether rows remain hidden.
func (p *Pager) HasMore(total int) bool {
	return p.Limit() < total
}
