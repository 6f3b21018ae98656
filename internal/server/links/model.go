package links

import "time"

// Link is a single entry on a user's page. SortOrder defines the relative
// display rank among one owner's links; absolute values and contiguity carry
// no meaning, only the ordering does.
type Link struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Title     string    `json:"title"`
	URL       string    `json:"url"`
	SortOrder int       `json:"order"`
	Visible   bool      `json:"visible"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
