package api

// Page is the DRF pagination envelope. List endpoints answer either with a
// bare array or with a Page, depending on server settings.
type Page[T any] struct {
	Count    int     `json:"count"`
	Next     *string `json:"next"`
	Previous *string `json:"previous"`
	Results  []T     `json:"results"`
}
