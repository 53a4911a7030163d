package service

import (
	"relay/internal/domain/entity"
)

// ShoutComparator orders shouts for the best-shout listing. Implementations
// must be deterministic so repeated listings agree.
type ShoutComparator interface {
	// Less reports whether a ranks strictly better than b.
	Less(a, b *entity.Shout) bool
}

// RecencyComparator ranks newer shouts above older ones. Shouts created at
// the same instant are not ordered against each other, so a bounded insert
// keeps them in scan order.
type RecencyComparator struct{}

// NewRecencyComparator returns the default comparator.
func NewRecencyComparator() *RecencyComparator {
	return &RecencyComparator{}
}

// Less implements ShoutComparator.
func (c *RecencyComparator) Less(a, b *entity.Shout) bool {
	return a.CreatedAt.After(b.CreatedAt)
}
