package domain

// Page is a zero-based windowed result set over a server-side collection.
// The console never caches content across pages; every window is fetched
// fresh from the remote API.
type Page[T any] struct {
	Content       []T   `json:"content"`
	TotalPages    int   `json:"totalPages"`
	TotalElements int64 `json:"totalElements"`
	Number        int   `json:"number"`
	Size          int   `json:"size"`
	First         bool  `json:"first"`
	Last          bool  `json:"last"`
}

// HasPrev reports whether a previous window exists.
func (p Page[T]) HasPrev() bool { return p.Number > 0 }

// HasNext reports whether a following window exists.
func (p Page[T]) HasNext() bool { return p.Number+1 < p.TotalPages }
