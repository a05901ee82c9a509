package schema

// SocialFavouriteTable represents the 'social.favourite' table
type SocialFavouriteTable struct {
	Table     string
	ID        string
	UserID    string
	PostID    string
	CreatedAt string
}

// SocialFavourite is the schema definition for social.favourite
var SocialFavourite = SocialFavouriteTable{
	Table:     "social.favourite",
	ID:        "id",
	UserID:    "userid",
	PostID:    "postid",
	CreatedAt: "createdat",
}

// Columns returns all standard column names
func (t SocialFavouriteTable) Columns() []string {
	return []string{t.ID, t.UserID, t.PostID, t.CreatedAt}
}
