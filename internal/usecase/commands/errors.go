package commands

import (
	"room-reservation/internal/infra"
)

// notFoundAs replaces a repository not-found error with the domain sentinel.
func notFoundAs(err error, sentinel error) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return sentinel
	}
	return err
}

// duplicateAs replaces a unique violation raced past the pre-check.
func duplicateAs(err error, sentinel error) error {
	if infra.IsKind(err, infra.KindDuplicateKey) {
		return sentinel
	}
	return err
}
