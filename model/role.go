package model

// Role names carried in session tokens.
const (
	RolePatient = "patient"
	RoleAdmin   = "admin"
)

// The admin account lives outside the Users collection.
const (
	AdminID       = "2"
	AdminPassword = "2"
	AdminName     = "Admin"
)

// IsAdminCredential reports whether the pair is the reserved admin login.
func IsAdminCredential(id, password string) bool {
	return id == AdminID && password == AdminPassword
}
