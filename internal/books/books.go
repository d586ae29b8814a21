// Package books holds the domain collection managers. Each book owns one
// record collection: it loads the collection from the record store on
// construction, applies mutations to copy-on-write snapshots, and writes
// the updated snapshot back synchronously after every mutation.
//
// A failed persist is reported to the caller but the in-memory snapshot
// is kept, so user data is never dropped silently on a storage error.
package books

import "errors"

// ErrNotFound is returned by status mutations that name an absent record.
// Removals are idempotent and do not use it.
var ErrNotFound = errors.New("record not found")
