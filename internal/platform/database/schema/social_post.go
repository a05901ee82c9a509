package schema

// SocialPostTable represents the 'social.post' table
type SocialPostTable struct {
	Table       string
	ID          string
	OwnerID     string
	Title       string
	Description string
	IsPublic    string
	LikeCount   string
	CreatedAt   string
	UpdatedAt   string
}

// SocialPost is the schema definition for social.post
var SocialPost = SocialPostTable{
	Table:       "social.post",
	ID:          "id",
	OwnerID:     "ownerid",
	Title:       "title",
	Description: "description",
	IsPublic:    "ispublic",
	LikeCount:   "likecount",
	CreatedAt:   "createdat",
	UpdatedAt:   "updatedat",
}

// Columns returns all standard column names
func (t SocialPostTable) Columns() []string {
	return []string{
		t.ID, t.OwnerID, t.Title, t.Description, t.IsPublic,
		t.LikeCount, t.CreatedAt, t.UpdatedAt,
	}
}
