package logic

// FilterState is the browsing filter owned by one session. Search and
// category selection are mutually exclusive by convention: setting one clears
// the other. FilterAndSort itself tolerates both being set.
type FilterState struct {
	Query    string
	Category string
	Sort     SortKey
}

// SetQuery sets the free-text search and clears the category.
func (f *FilterState) SetQuery(q string) {
	f.Query = q
	f.Category = ""
}

// SetCategory selects a category and clears the search.
func (f *FilterState) SetCategory(c string) {
	f.Category = c
	f.Query = ""
}

// SetSort parses and applies a sort key name. On error the state is unchanged.
func (f *FilterState) SetSort(name string) error {
	key, err := ParseSortKey(name)
	if err != nil {
		return err
	}
	f.Sort = key
	return nil
}

// Reset clears query and category, keeping the sort order.
func (f *FilterState) Reset() {
	f.Query = ""
	f.Category = ""
}

// IsFiltered reports whether any narrowing filter is active.
func (f FilterState) IsFiltered() bool {
	return f.Query != "" || f.Category != ""
}
