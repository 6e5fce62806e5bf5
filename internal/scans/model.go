package scans

import "time"

// Scan is one body-scan snapshot for a user.
type Scan struct {
	ID             string      `json:"id"`
	UserID         string      `json:"userId"`
	CoherenceScore int         `json:"coherenceScore"`
	Issues         []Issue     `json:"issues"`
	Components     []Component `json:"components"`
	CreatedAt      time.Time   `json:"createdAt"`
}

// Issue is a named finding surfaced by a scan. Load is the sole severity
// signal, 0-100. The scan process creates issues; this service only reads
// them.
type Issue struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Description     string   `json:"description"`
	Load            int      `json:"load"`
	Recommendations []string `json:"recommendations,omitempty"`
}

// Component is one raw scanner measurement feeding the system-load
// aggregate.
type Component struct {
	ID       string `json:"id"`
	Category string `json:"category"`
	Name     string `json:"name"`
	Level    int    `json:"level"`
}
