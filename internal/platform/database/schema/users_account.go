package schema

// UserAccountTable represents the 'users.account' table
type UserAccountTable struct {
	Table       string
	ID          string
	Username    string
	Email       string
	Password    string
	Role        string
	DisplayName string
	AvatarURL   string
	Bio         string
	SavedPosts  string
	CreatedAt   string
	UpdatedAt   string
}

// UserAccount is the schema definition for users.account
var UserAccount = UserAccountTable{
	Table:       "users.account",
	ID:          "id",
	Username:    "username",
	Email:       "email",
	Password:    "passwordhash",
	Role:        "role",
	DisplayName: "displayname",
	AvatarURL:   "avatarurl",
	Bio:         "bio",
	SavedPosts:  "saved_posts",
	CreatedAt:   "createdat",
	UpdatedAt:   "updatedat",
}

// Columns returns all standard column names in physical table order.
// Scan target lists in the repositories follow this order exactly.
func (t UserAccountTable) Columns() []string {
	return []string{
		t.ID, t.Username, t.Email, t.Password, t.DisplayName, t.AvatarURL,
		t.Bio, t.Role, t.SavedPosts, t.CreatedAt, t.UpdatedAt,
	}
}
