package models

// Role is the closed set of user roles. Stored values use the display
// casing the frontend expects.
type Role string

const (
	RoleTourist   Role = "Tourist"
	RoleTourGuide Role = "Tour Guide"
	RoleAdmin     Role = "Admin"
)
