package specification

import "gorm.io/gorm"

// Specification defines the interface for query specifications
type Specification interface {
	Apply(db *gorm.DB) *gorm.DB
}

// HasOrdering reports whether specs already carry an explicit ORDER BY.
func HasOrdering(specs []Specification) bool {
	for _, spec := range specs {
		if _, ok := spec.(OrderBy); ok {
			return true
		}
	}
	return false
}
