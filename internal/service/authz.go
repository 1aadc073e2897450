// Package service implements the business rules on top of the repositories.
package service

// owns is the single authorization policy applied before every mutating
// operation on an owned resource: the acting principal must be the owner.
func owns(principal, ownerID uint) bool {
	return principal != 0 && principal == ownerID
}
