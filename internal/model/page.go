package model

// PageInfo is the pagination metadata reported by the directory
type PageInfo struct {
	HasNext    bool
	HasPrev    bool
	TotalPages int
	TotalCount int
}

// PageResult is one page of characters plus server-reported pagination.
// Each fetch replaces the previous result wholesale.
type PageResult struct {
	Characters []Character
	Info       PageInfo
}

// EmptyPage returns the result used when a query matches nothing
func EmptyPage() PageResult {
	return PageResult{Characters: []Character{}}
}

// IsEmpty reports whether the page holds no characters
func (p PageResult) IsEmpty() bool {
	return len(p.Characters) == 0
}

// Filter returns the characters for which keep returns true, preserving order
func (p PageResult) Filter(keep func(CharacterID) bool) []Character {
	out := make([]Character, 0, len(p.Characters))
	for _, c := range p.Characters {
		if keep(c.ID) {
			out = append(out, c)
		}
	}
	return out
}
