package schema

// RefUsersTable represents the 'users' table
type RefUsersTable struct {
	Table     string
	Username  string
	Name      string
	AvatarURL string
}

// RefUsers is the schema definition for users
var RefUsers = RefUsersTable{
	Table:     "users",
	Username:  "username",
	Name:      "name",
	AvatarURL: "avatar_url",
}

func (t RefUsersTable) Columns() []string {
	return []string{t.Username, t.Name, t.AvatarURL}
}
