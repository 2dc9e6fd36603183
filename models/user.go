package models

// User roles as resolved by the identity provider.
const (
	RoleOwner  = "owner"
	RoleRenter = "renter"
)

// User is the identity attached to a request: a stable account id and a
// role flag. Account management lives outside this service.
type User struct {
	ID   string `bson:"id" json:"id"`
	Role string `bson:"role" json:"role"`
}
