package models

// User is an organization member.
type User struct {
	ID             string `json:"id"`
	OrganizationID string `json:"organization_id"`
	Email          string `json:"email"`
	Password       string `json:"password,omitempty"`
	Name           string `json:"name"`
	CreatedAt      int64  `json:"created_at"`
}
