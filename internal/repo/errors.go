package repo

import "errors"

// ErrNotFound is returned when a lookup or owner-scoped delete matches no row.
var ErrNotFound = errors.New("not found")

// ErrEmailTaken is returned by UserRepo.Create when the email already exists.
// It is derived from the unique index on users.email, so concurrent signups
// with the same email cannot both succeed.
var ErrEmailTaken = errors.New("email already registered")
