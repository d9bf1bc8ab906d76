package models

import "strings"

type Theme string

const (
	ThemeDark  Theme = "dark"
	ThemeLight Theme = "light"
)

// ParseTheme is case-insensitive; unknown names fall back to ThemeDark.
func ParseTheme(s string) Theme {
	switch Theme(strings.ToLower(strings.TrimSpace(s))) {
	case ThemeLight:
		return ThemeLight
	default:
		return ThemeDark
	}
}

type Settings struct {
	Notifications bool  `json:"notifications"`
	Theme         Theme `json:"theme"`
}
