package domain

import "errors"

var (
	errEmptyResolution   = errors.New("resolution is required")
	errNoCategories      = errors.New("at least one category is required")
	errNoSubCategories   = errors.New("at least one sub category is required")
	errOrphanSubCategory = errors.New("sub category does not belong to a selected category")
)
