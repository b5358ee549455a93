package models

// Event is a campus event as rendered on the home feed. The client consumes
// events read-only; joining is the only mutation and it requires a session.
type Event struct {
	ID             string `json:"id"`
	Title          string `json:"title"`
	Description    string `json:"description,omitempty"`
	Category       string `json:"category,omitempty"`
	Date           string `json:"date,omitempty"`
	Time           string `json:"time,omitempty"`
	Location       string `json:"location,omitempty"`
	Organizer      string `json:"organizer,omitempty"`
	Attendees      int    `json:"attendees"`
	AvailableSpots int    `json:"available_spots"`
}

// PostAuthor is the embedded author summary on a feed post.
type PostAuthor struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Avatar string `json:"avatar,omitempty"`
	Role   string `json:"role,omitempty"`
}

// Post is a community feed post.
type Post struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Category    string     `json:"category,omitempty"`
	Author      PostAuthor `json:"author"`
	Likes       int        `json:"likes"`
	Comments    int        `json:"comments"`
	Timestamp   string     `json:"timestamp,omitempty"`
}
