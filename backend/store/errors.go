package store

import "errors"

var (
	ErrNotFound = errors.New("record not found")

	// ErrUpgradeRequired marks entitlement denials: the caller must surface
	// an upgrade prompt, never swallow it.
	ErrUpgradeRequired = errors.New("upgrade required")

	ErrDuplicateEmail = errors.New("email already registered")

	// ErrDefaultTier guards the fallback tier against deletion.
	ErrDefaultTier = errors.New("default tier cannot be deleted")
)
