package api

const (
	PathChat   = "/api/chat"
	PathSearch = "/api/search"
	PathHealth = "/api/health"

	StatusSuccess = "success"
	StatusHealthy = "healthy"

	DefaultCategory   = "all"
	DefaultMaxResults = 10

	unknownErrorMessage = "Unknown error occurred"
)

// ChatRequest carries the caller's session token; a nil SessionID is sent
// as null and the backend starts a new session.
type ChatRequest struct {
	Message   string  `json:"message"`
	SessionID *string `json:"session_id"`
}

type ChatResponse struct {
	Response  string
	SessionID string
}

type SearchRequest struct {
	Query      string `json:"query"`
	Category   string `json:"category"`
	MaxResults int    `json:"max_results"`
}

type Paper struct {
	Title     string
	Authors   []string
	Abstract  string
	Published string
	ArxivID   string
	PDFURL    string
	WebURL    string
}

type SearchResponse struct {
	Query   string
	Message string
	Papers  []Paper
}

type HealthResponse struct {
	Status  string
	Service string
	Version string
}

// SessionRef returns a request session reference, nil for an empty token.
func SessionRef(sessionID string) *string {
	if sessionID == "" {
		return nil
	}
	return &sessionID
}
