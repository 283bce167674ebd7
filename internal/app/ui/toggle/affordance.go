// Package toggle derives the visible state of the screen's menu toggles from
// the boolean state the collaborator reports. Everything here is pure.
package toggle

// Menu glyphs
const (
	GlyphFavorite           = "☆"
	GlyphUnfavorite         = "★"
	GlyphNotificationActive = "🔔"
	GlyphNotificationMuted  = "🔕"
)

// FavoriteAffordance tells which of the two mutually exclusive watchlist actions is shown
type FavoriteAffordance struct {
	ShowFavorite   bool
	ShowUnfavorite bool
}

// Favorite returns the affordance for a favorite flag: exactly one action is visible
func Favorite(isFavorite bool) FavoriteAffordance {
	return FavoriteAffordance{
		ShowFavorite:   !isFavorite,
		ShowUnfavorite: isFavorite,
	}
}

// Glyph returns the glyph of the visible action
func (a FavoriteAffordance) Glyph() string {
	if a.ShowUnfavorite {
		return GlyphUnfavorite
	}

	return GlyphFavorite
}

// IconVariant is the icon of the notification action
type IconVariant int

const (
	IconInactive IconVariant = iota
	IconActive
)

// String returns the string representation of the icon variant
func (v IconVariant) String() string {
	switch v {
	case IconActive:
		return "active"
	case IconInactive:
		return "inactive"
	default:
		return "unknown"
	}
}

// NotificationAffordance is the visibility and icon of the notification action
type NotificationAffordance struct {
	Visible bool
	Icon    IconVariant
}

// Notification returns the affordance for the eligibility and subscription flags.
// Icon is meaningless while hidden; read it through Glyph.
func Notification(eligible, active bool) NotificationAffordance {
	icon := IconInactive
	if active {
		icon = IconActive
	}

	return NotificationAffordance{
		Visible: eligible,
		Icon:    icon,
	}
}

// Glyph returns the icon glyph, or "" when the action is hidden
func (a NotificationAffordance) Glyph() string {
	if !a.Visible {
		return ""
	}

	if a.Icon == IconActive {
		return GlyphNotificationActive
	}

	return GlyphNotificationMuted
}
