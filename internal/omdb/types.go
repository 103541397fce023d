package omdb

import "strings"

// NotAvailable is what OMDb returns for any field it has no value for.
const NotAvailable = "N/A"

// Item is a single entry of a search response.
type Item struct {
	ImdbID string `json:"imdbID"`
	Title  string `json:"Title"`
	Year   string `json:"Year"`
	Poster string `json:"Poster"`
	Type   string `json:"Type"`
}

// Detail is the full record returned by a lookup by IMDb ID.
type Detail struct {
	ImdbID     string `json:"imdbID"`
	Title      string `json:"Title"`
	Year       string `json:"Year"`
	Poster     string `json:"Poster"`
	Type       string `json:"Type"`
	Rated      string `json:"Rated"`
	Released   string `json:"Released"`
	Runtime    string `json:"Runtime"`
	Genre      string `json:"Genre"`
	Director   string `json:"Director"`
	Writer     string `json:"Writer"`
	Actors     string `json:"Actors"`
	Plot       string `json:"Plot"`
	Language   string `json:"Language"`
	Country    string `json:"Country"`
	Awards     string `json:"Awards"`
	ImdbRating string `json:"imdbRating"`
	ImdbVotes  string `json:"imdbVotes"`
	BoxOffice  string `json:"BoxOffice,omitempty"`
}

// Kind classifies an OMDb type tag.
type Kind int

const (
	KindOther Kind = iota
	KindMovie
	KindSeries
	KindEpisode
)

// KindOf maps a type tag to a Kind, ignoring case.
func KindOf(tag string) Kind {
	switch strings.ToLower(tag) {
	case "movie":
		return KindMovie
	case "series":
		return KindSeries
	case "episode":
		return KindEpisode
	default:
		return KindOther
	}
}

// searchResponse is the envelope of ?s= requests.
type searchResponse struct {
	Response     string `json:"Response"`
	Error        string `json:"Error"`
	Search       []Item `json:"Search"`
	TotalResults string `json:"totalResults"`
}

// detailResponse is the envelope of ?i= requests. The record fields sit at
// the top level next to Response and Error.
type detailResponse struct {
	Response string `json:"Response"`
	Error    string `json:"Error"`
	Detail
}
