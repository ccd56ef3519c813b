package model

// Lookup is one audit row per reporter run.
type Lookup struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	Status    int    `json:"status"`
	Printed   int    `json:"printed"`
	Skipped   int    `json:"skipped"`
	Error     string `json:"error,omitempty"`
	FetchedAt string `json:"fetched_at"`
}
