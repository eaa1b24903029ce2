package domain

// SiteInfo is the site-wide metadata shared by every view.
type SiteInfo struct {
	Title       string
	Description string
	Author      string
}
