// Package api defines the wire types shared by the server and the
// terminal client, and the HTTP client the TUI talks through.
package api

// Puzzle is the payload served for a daily game.
type Puzzle struct {
	ID            string `json:"id"`
	Date          string `json:"date"` // YYYY-MM-DD, UTC
	EncryptedText string `json:"ciphertext"`
	Author        string `json:"author"`
	Category      string `json:"category"`
	Difficulty    int    `json:"difficulty"`
	Hints         []Hint `json:"hints"`
}

// Hint is a revealed cipher→plain letter pair.
type Hint struct {
	CipherLetter string `json:"cipherLetter"`
	PlainLetter  string `json:"plainLetter"`
}

// CheckRequest submits a candidate solution. ClaimCode and CompletionTime
// are optional; when both are present and the solution is correct the
// completion is recorded against the player.
type CheckRequest struct {
	Solution       string `json:"solution"`
	ClaimCode      string `json:"claim_code,omitempty"`
	CompletionTime int    `json:"completion_time,omitempty"`
}

// CheckResult reports a solution check. AlreadyRecorded is set when the
// player had previously recorded this game; the earlier time stands.
type CheckResult struct {
	Correct         bool `json:"correct"`
	AlreadyRecorded bool `json:"already_recorded,omitempty"`
}

// RegisterResult carries a freshly minted claim code.
type RegisterResult struct {
	ClaimCode string `json:"claim_code"`
}

// PlayerStats aggregates a player's solve history.
type PlayerStats struct {
	Solved        int   `json:"solved"`
	MedianSeconds int   `json:"median_seconds"`
	CurrentStreak int   `json:"current_streak"`
	RecentTimes   []int `json:"recent_times,omitempty"`
}

// Health mirrors /health/ready.
type Health struct {
	Status   string         `json:"status"`
	Database DatabaseHealth `json:"database"`
}

// DatabaseHealth is the store portion of the readiness probe.
type DatabaseHealth struct {
	Status string `json:"status"` // connected | error | unconfigured
	Error  string `json:"error,omitempty"`
}

// ErrorBody is the JSON error envelope.
type ErrorBody struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}
