// Package impl contains the application-specific business rules implementations.
package impl

import (
	"strings"
	"time"

	"bitefeed/internal/domain/entity"
)

// Happening-now keeps restaurants whose next happy-hour slot starts within
// this many minutes, or started no longer than the session length ago.
const (
	happeningLeadMinutes    = 15
	happeningSessionMinutes = 120
)

// brunchThemeKeywords maps a brunch theme chip to the description keywords
// that qualify a restaurant for it.
var brunchThemeKeywords = map[string][]string{
	"Bottomless Mimosas": {"mimosa", "bottomless"},
	"Rooftop":            {"rooftop", "roof"},
	"Bottomless Brunch":  {"bottomless"},
	"Trendy":             {"trendy", "modern", "hip"},
}

// ThemeMatcher decides whether a restaurant belongs under a theme chip.
// Unknown themes match everything, so a new client chip degrades to an
// unfiltered feed instead of an empty one.
type ThemeMatcher struct {
	now func() time.Time
}

// NewThemeMatcher creates a theme matcher. A nil clock uses time.Now.
func NewThemeMatcher(now func() time.Time) *ThemeMatcher {
	if now == nil {
		now = time.Now
	}

	return &ThemeMatcher{now: now}
}

// Matches reports whether the restaurant qualifies for the theme under the
// given vibe. The empty theme and "All" never filter.
func (m *ThemeMatcher) Matches(restaurant *entity.Restaurant, vibe entity.Vibe, theme string) bool {
	if theme == "" || theme == entity.ThemeAll {
		return true
	}

	switch vibe {
	case entity.VibeBrunch:
		return m.matchesBrunchTheme(restaurant, theme)
	case entity.VibeHappyHour:
		return m.matchesHappyHourTheme(restaurant, theme)
	}

	return true
}

func (m *ThemeMatcher) matchesBrunchTheme(restaurant *entity.Restaurant, theme string) bool {
	keywords, ok := brunchThemeKeywords[theme]
	if !ok {
		return true
	}

	description := restaurant.Description
	if details, ok := restaurant.DetailsFor(entity.VibeBrunch); ok && details.Description != "" {
		description = details.Description
	}
	description = strings.ToLower(description)

	for _, keyword := range keywords {
		if strings.Contains(description, keyword) {
			return true
		}
	}

	return false
}

func (m *ThemeMatcher) matchesHappyHourTheme(restaurant *entity.Restaurant, theme string) bool {
	switch theme {
	case "Popular":
		return restaurant.IsPopular || restaurant.Rating >= 4.5
	case "Happening Now":
		return m.happeningNow(restaurant)
	case "Near Me":
		// Proximity is a ranking concern; the chip never hides anything.
		return true
	}

	return true
}

// happeningNow reports whether any happy-hour slot is about to start or is
// still running relative to the matcher's clock.
func (m *ThemeMatcher) happeningNow(restaurant *entity.Restaurant) bool {
	slots := restaurant.TimeSlots
	if details, ok := restaurant.DetailsFor(entity.VibeHappyHour); ok && len(details.TimeSlots) > 0 {
		slots = details.TimeSlots
	}
	if len(slots) == 0 {
		return false
	}

	now := m.now()
	nowMinutes := now.Hour()*60 + now.Minute()

	for _, slot := range slots {
		start, err := parseClockMinutes(slot)
		if err != nil {
			continue
		}
		if nowMinutes >= start-happeningLeadMinutes && nowMinutes <= start+happeningSessionMinutes {
			return true
		}
	}

	return false
}

// parseClockMinutes converts a "15:04" clock string to minutes past midnight.
func parseClockMinutes(s string) (int, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, err
	}

	return t.Hour()*60 + t.Minute(), nil
}
