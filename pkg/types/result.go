package types

// MoveResult holds the outcome of a move attempt for a single file
type MoveResult struct {
	Source      string `json:"source"`
	Destination string `json:"destination"`
	Category    string `json:"category"`
	Renamed     bool   `json:"renamed"`
	Moved       bool   `json:"moved"`
	Error       error  `json:"error,omitempty"`
}

// RunSummary aggregates the outcome of a single organizing pass
type RunSummary struct {
	Results []MoveResult `json:"results"`
	Moved   int          `json:"moved"`
	Failed  int          `json:"failed"`
	DryRun  bool         `json:"dry_run"`
}
