package domain

// Category is a masterlist entry scoped to a channel.
type Category struct {
	ID          int
	ChannelID   int
	Description string
}

// SubCategory is a masterlist entry owned by a category.
type SubCategory struct {
	ID          int
	CategoryID  int
	Description string
}

// Technician is an assignable masterlist entry.
type Technician struct {
	ID   int
	Name string
}

// Channel routes concerns to an issue-handling group.
type Channel struct {
	ID   int
	Name string
}
