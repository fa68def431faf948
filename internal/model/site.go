package model

// TeamMember is keyed by an id derived from a member slug; POST /team
// upserts by that id.
type TeamMember struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Title string `json:"title"`
	Photo string `json:"photo,omitempty"`
}

// ContentEntry is the value stored per content location. Last write wins,
// no history.
type ContentEntry struct {
	Type    string `json:"type"`
	Content string `json:"content"`
}

// ContentUpdateRequest is the body of POST /content.
type ContentUpdateRequest struct {
	Location string `json:"location"`
	Type     string `json:"type"`
	Content  string `json:"content"`
}
