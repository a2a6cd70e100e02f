package programs

import (
	progs "codeberg.org/path2prevention/server/path2prevention/programs"
)

// wraps a program list with the filter that produced it
type ProgramListResponse struct {
	Programs []progs.ProgramRecord `json:"programs"`
	Count    int                   `json:"count"`
	Filter   FilterEcho            `json:"filter"`
}

// echoes the search filter back to the caller. Radius is a legacy
// parameter: it is accepted and echoed but not applied to narrow results
// geographically.
type FilterEcho struct {
	ZipCode string `json:"zip_code,omitempty"`
	State   string `json:"state,omitempty"`
	City    string `json:"city,omitempty"`
	Radius  int    `json:"radius"`
}

// wraps a name-search result list
type NameSearchResponse struct {
	Programs []progs.ProgramRecord `json:"programs"`
	Count    int                   `json:"count"`
	Query    string                `json:"query"`
}
