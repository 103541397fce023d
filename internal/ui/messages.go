package ui

import "github.com/sebastiantruijens/moviesearch/internal/omdb"

// Custom message types

// startSearchMsg asks the container to run a search, as if submitted.
type startSearchMsg struct {
	query string
}

type searchResultMsg struct {
	query string
	items []omdb.Item
	err   error
}

// detailResultMsg carries the overlay sequence number it was issued for.
type detailResultMsg struct {
	id     string
	seq    int
	detail *omdb.Detail
	err    error
}

type posterProbeMsg struct {
	broken []string
}

type openBrowserMsg struct {
	err error
}
