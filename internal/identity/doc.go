// Package identity turns a reconstruction outcome into stable identities
// for the newest generation: linked symbols inherit the identity found
// along their trail, everything else gets a fresh one from a Supplier.
package identity
