package schema

// SocialLikeTable represents the 'social.like' table
type SocialLikeTable struct {
	Table     string
	ID        string
	PostID    string
	UserID    string
	CreatedAt string
}

// SocialLike is the schema definition for social.like
var SocialLike = SocialLikeTable{
	Table:     "social.post_like",
	ID:        "id",
	PostID:    "postid",
	UserID:    "userid",
	CreatedAt: "createdat",
}

// Columns returns all standard column names
func (t SocialLikeTable) Columns() []string {
	return []string{t.ID, t.PostID, t.UserID, t.CreatedAt}
}
