package catalog

// SearchQuery narrows the category list. Empty fields do not filter.
type SearchQuery struct {
	Category string
	Query    string
}
