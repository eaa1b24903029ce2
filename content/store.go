// Package content holds the read-only post fixture served by the blog.
package content

import (
	"blog/domain"
	"errors"
	"fmt"
	"strconv"
)

var ErrPostNotFound = errors.New("post not found")

// Store is built once at startup and never mutated afterwards, so it is safe
// to share between concurrent requests.
type Store struct {
	posts []domain.Post
	site  domain.SiteInfo
}

// New copies posts into a new Store. Posts keep the given order, which is the
// display order of the home page. It panics on non-positive or duplicate ids.
func New(site domain.SiteInfo, posts ...domain.Post) *Store {
	seen := make(map[int]struct{}, len(posts))
	for _, p := range posts {
		if p.ID <= 0 {
			panic(fmt.Sprintf("content: invalid post id %d", p.ID))
		}
		if _, ok := seen[p.ID]; ok {
			panic(fmt.Sprintf("content: duplicate post id %d", p.ID))
		}
		seen[p.ID] = struct{}{}
	}

	return &Store{
		posts: append([]domain.Post(nil), posts...),
		site:  site,
	}
}

// Posts returns every post in display order. The slice is a copy.
func (s *Store) Posts() []domain.Post {
	return append([]domain.Post(nil), s.posts...)
}

func (s *Store) SiteInfo() domain.SiteInfo {
	return s.site
}

func (s *Store) FindPostByID(id int) (domain.Post, error) {
	for _, p := range s.posts {
		if p.ID == id {
			return p, nil
		}
	}
	return domain.Post{}, ErrPostNotFound
}

// LookupPost resolves a raw path segment. Anything that is not a base 10
// integer cannot match a post and reports ErrPostNotFound.
func (s *Store) LookupPost(raw string) (domain.Post, error) {
	id, ok := ParsePostID(raw)
	if !ok {
		return domain.Post{}, ErrPostNotFound
	}
	return s.FindPostByID(id)
}

func ParsePostID(raw string) (int, bool) {
	id, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return id, true
}
