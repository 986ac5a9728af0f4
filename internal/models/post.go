package models

// Post status values
const (
	StatusPublished = "Published"
	StatusDraft     = "Draft"
)

// ValidStatuses defines allowed post statuses
var ValidStatuses = map[string]bool{
	StatusPublished: true,
	StatusDraft:     true,
}

// Post is a blog post document. Posts carry their comments inline; the whole
// collection is serialized as one JSON array under the ledger's "posts" (or
// "archivedPosts") key.
type Post struct {
	ID       string    `json:"id"`
	Title    string    `json:"title"`
	Excerpt  string    `json:"excerpt"`
	Content  string    `json:"content"`
	Likes    int       `json:"likes"`
	Comments []Comment `json:"comments"`
	Status   string    `json:"status"`
	Date     string    `json:"date"`
	Time     string    `json:"time"`
	Author   string    `json:"author"`

	// LikedBy tracks session emails that already liked the post. Only
	// populated under the "once" like policy.
	LikedBy []string `json:"likedBy,omitempty"`
}

// PostInput carries the caller-supplied fields for creating or updating a
// post; everything else is stamped by the service.
type PostInput struct {
	Title   string `json:"title"`
	Excerpt string `json:"excerpt"`
	Content string `json:"content"`
}

// Stats aggregates the dashboard overview numbers.
type Stats struct {
	TotalPosts    int `json:"total_posts"`
	Published     int `json:"published"`
	Drafts        int `json:"drafts"`
	Archived      int `json:"archived"`
	TotalLikes    int `json:"total_likes"`
	TotalComments int `json:"total_comments"`
}
