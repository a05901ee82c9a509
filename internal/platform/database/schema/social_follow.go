package schema

// SocialFollowTable represents the 'social.follow' table
type SocialFollowTable struct {
	Table       string
	ID          string
	FollowerID  string
	FollowingID string
	CreatedAt   string
}

// SocialFollow is the schema definition for social.follow
var SocialFollow = SocialFollowTable{
	Table:       "social.follow",
	ID:          "id",
	FollowerID:  "followerid",
	FollowingID: "followingid",
	CreatedAt:   "createdat",
}

// Columns returns all standard column names
func (t SocialFollowTable) Columns() []string {
	return []string{t.ID, t.FollowerID, t.FollowingID, t.CreatedAt}
}
