package globals

// Context keys
type ContextKey string

const (
	RoleKey     ContextKey = "role"
	UsernameKey ContextKey = "username"
)

// AdminRole is the role carried by tokens issued to site administrators.
const AdminRole = "admin"
