package application

import "funknotes/internal/domain"

// IsIndexSpec reports whether s is a list or range of item indices
func IsIndexSpec(s string) bool {
	return domain.IsIndexSpec(s)
}
