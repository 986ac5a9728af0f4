package models

// Comment is owned exclusively by its parent Post. Comments are append-only
// and identified by position within the post; replies are plain strings.
type Comment struct {
	Text    string   `json:"text"`
	Date    string   `json:"date"`
	Likes   int      `json:"likes"`
	Replies []string `json:"replies"`

	// LikedBy tracks session emails that already liked the comment. Only
	// populated under the "once" like policy.
	LikedBy []string `json:"likedBy,omitempty"`
}
