// Package tvshowv1 defines the TV show catalog RPC contract.
//
// The TV show service carries the read half of the catalog contract only:
// there is no create operation and no event emission behind it.
package tvshowv1

// TVShow is one fixed-dataset catalog record.
type TVShow struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// GetTVShowRequest asks for one show by id.
type GetTVShowRequest struct {
	TVShowID string `json:"tv_show_id"`
}

// GetTVShowResponse carries the requested show.
type GetTVShowResponse struct {
	TVShow *TVShow `json:"tv_show,omitempty"`
}

// SearchTVShowsRequest filters the dataset. An empty query matches everything.
type SearchTVShowsRequest struct {
	Query string `json:"query,omitempty"`
}

// SearchTVShowsResponse carries matching shows in dataset order.
type SearchTVShowsResponse struct {
	TVShows []*TVShow `json:"tv_shows"`
}
