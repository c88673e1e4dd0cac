package domain

// ListItem is the common interface for items displayed in lists.
// Exercise and BlogPost implement it directly.
type ListItem interface {
	// GetID returns the unique identifier for this item
	GetID() string

	// GetTitle returns the display title
	GetTitle() string

	// GetDescription returns secondary info for display (e.g. "Nefes · 5 dk")
	GetDescription() string
}
