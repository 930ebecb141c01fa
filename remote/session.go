package remote

// Session carries the server endpoint and the acting user's identity.
// Credential issuing and refresh are a collaborator concern; the SDK
// only transports what it is given.
type Session struct {
	Server   string
	Username string
	Password string
	UserID   int64
}
