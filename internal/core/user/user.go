package user

// User is a registered account that may author articles and comments.
// Accounts are provisioned externally; this API only reads them.
type User struct {
	Username  string `json:"username"`
	Name      string `json:"name"`
	AvatarURL string `json:"avatar_url"`
}
