package api

// RankedResponse is the ranked leaderboard payload returned for a name
// filter query
type RankedResponse struct {
	Count int           `json:"count"`
	Data  []RankedEntry `json:"data"`
}

// RankedEntry is one player's standing on the ranked leaderboard
type RankedEntry struct {
	Rank      int    `json:"rank"`
	Name      string `json:"name"`
	League    string `json:"league"`
	RankScore int    `json:"rankScore"`
	Change    int    `json:"change"`
	ClubTag   string `json:"clubTag,omitempty"`
}

// WorldTourResponse is the world tour leaderboard payload
type WorldTourResponse struct {
	Count int              `json:"count"`
	Data  []WorldTourEntry `json:"data"`
}

// WorldTourEntry is one player's world tour cashout standing
type WorldTourEntry struct {
	Rank     int    `json:"rank"`
	Name     string `json:"name"`
	Cashouts int    `json:"cashouts"`
	ClubTag  string `json:"clubTag,omitempty"`
}
