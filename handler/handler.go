package handler

import "blog/content"

// Handler serves the blog pages from a read-only content store.
type Handler struct {
	Store *content.Store
}
