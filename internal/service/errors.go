package service

import "errors"

// ErrNotFound is returned when an entity does not exist or is not owned by
// the requesting user. The two cases are deliberately indistinguishable so a
// caller cannot probe other users' records.
var ErrNotFound = errors.New("not found")
