package domain

// Post is a single blog entry. Date is kept as written (YYYY-MM-DD) and never parsed.
type Post struct {
	ID      int
	Title   string
	Content string
	Author  string
	Date    string
	Excerpt string
}
