// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

// User is a customer account. Login, Email and NationalID are unique across all users.
type User struct {
	ID          string // Prefixed unique identifier, e.g. "user_<uuid>".
	Login       string // Unique handle chosen at signup.
	Name        string // Display name; also the lookup key of the customer login form.
	Email       string // Unique contact email.
	NationalID  string // CPF. Optional, unique when present.
	Address     string // Street address line.
	PostalCode  string // CEP.
	HouseNumber string
	Phone       string
	Password    string // Stored credential as produced by the configured PasswordHasher.
}

// Clone returns a copy safe to hand out of a repository.
func (u *User) Clone() *User {
	if u == nil {
		return nil
	}
	cloned := *u

	return &cloned
}

// Admin is a back-office account. Login is unique among admins.
type Admin struct {
	ID       string
	Login    string
	Password string
}
