// Package view holds presentation formatting shared by the page handlers and
// templates: prices, dates, and label lookups for the editorial vocabularies.
// All output is fixed en-US.
package view

import (
	"fmt"
	"strings"
	"time"

	"github.com/emberandoak/website/internal/content"
)

// FormatPrice renders a price as a fixed two-decimal currency string.
func FormatPrice(price float64) string {
	return fmt.Sprintf("$%.2f", price)
}

var sizeAbbrevs = map[string]string{
	content.SizeSmall:  "S",
	content.SizeMedium: "M",
	content.SizeLarge:  "L",
}

// FormatVariants renders size variants as "S: $3.50 / M: $4.25 / L: $5.00".
// Unknown sizes keep their raw value as the label. Returns "" when there are
// no variants.
func FormatVariants(variants []content.PriceVariant) string {
	if len(variants) == 0 {
		return ""
	}
	parts := make([]string, 0, len(variants))
	for _, v := range variants {
		label, ok := sizeAbbrevs[v.Size]
		if !ok {
			label = v.Size
		}
		parts = append(parts, label+": "+FormatPrice(v.Price))
	}
	return strings.Join(parts, " / ")
}

// PriceLine renders the price column for a menu item: the variant breakdown
// when sizes exist, otherwise the single base price.
func PriceLine(item content.MenuItem) string {
	if len(item.Variants) > 0 {
		return FormatVariants(item.Variants)
	}
	return FormatPrice(item.Price)
}

// Date formatting. The site renders a small fixed set of en-US combinations.

// Weekday renders "Monday".
func Weekday(t time.Time) string { return t.Format("Monday") }

// Month renders "Jan".
func Month(t time.Time) string { return t.Format("Jan") }

// MonthDay renders "Jan 2".
func MonthDay(t time.Time) string { return t.Format("Jan 2") }

// TimeOfDay renders "7:00 PM" with no leading zero on the hour.
func TimeOfDay(t time.Time) string { return t.Format("3:04 PM") }

// LongDate renders "January 2, 2026".
func LongDate(t time.Time) string { return t.Format("January 2, 2006") }

var tagLabels = map[string]string{
	"vegan":       "Vegan",
	"gluten-free": "Gluten-Free",
	"dairy-free":  "Dairy-Free",
	"seasonal":    "Seasonal",
	"staff-pick":  "Staff Pick",
	"new":         "New",
}

// TagLabel maps an editorial tag value to its display label. Values outside
// the vocabulary render as-is rather than disappearing.
func TagLabel(tag string) string {
	if label, ok := tagLabels[tag]; ok {
		return label
	}
	return tag
}

var featureLabels = map[string]string{
	"wifi":          "Free WiFi",
	"outdoor":       "Outdoor Seating",
	"accessible":    "Wheelchair Accessible",
	"dog-friendly":  "Dog Friendly Patio",
	"drive-through": "Drive-Through",
	"meeting-room":  "Meeting Room",
}

// FeatureLabel maps a location feature value to its display label.
func FeatureLabel(feature string) string {
	if label, ok := featureLabels[feature]; ok {
		return label
	}
	return feature
}

var recurrenceLabels = map[string]string{
	content.RecurringWeekly:  "Every Week",
	content.RecurringMonthly: "Monthly",
}

// RecurrenceLabel renders the badge text for a recurring event. One-time
// events ("none" or empty) get no badge.
func RecurrenceLabel(recurring string) string {
	if recurring == "" || recurring == content.RecurringNone {
		return ""
	}
	if label, ok := recurrenceLabels[recurring]; ok {
		return label
	}
	return recurring
}

// ObjectPosition derives the CSS object-position for an image's crop hotspot.
func ObjectPosition(img *content.Image) string {
	if img == nil || img.Hotspot == nil {
		return "center"
	}
	return fmt.Sprintf("%.0f%% %.0f%%", img.Hotspot.X*100, img.Hotspot.Y*100)
}

// ShortAddress renders "street, city, state" for inline display.
func ShortAddress(addr *content.Address) string {
	if addr == nil {
		return ""
	}
	parts := make([]string, 0, 3)
	for _, p := range []string{addr.Street, addr.City, addr.State} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, ", ")
}

// FullAddress renders "street, city, state zip" for map lookups.
func FullAddress(addr *content.Address) string {
	if addr == nil {
		return ""
	}
	s := ShortAddress(addr)
	if addr.Zip != "" && s != "" {
		s += " " + addr.Zip
	}
	return s
}

// LatLng renders coordinates as "lat,lng".
func LatLng(c *content.Coordinates) string {
	if c == nil {
		return ""
	}
	return fmt.Sprintf("%v,%v", c.Lat, c.Lng)
}

// DigitsOnly strips everything but digits, for tel: links.
func DigitsOnly(s string) string {
	var sb strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}
