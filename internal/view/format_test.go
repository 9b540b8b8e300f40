package view

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/emberandoak/website/internal/content"
)

func TestFormatPrice_TwoDecimals(t *testing.T) {
	assert.Equal(t, "$3.50", FormatPrice(3.5))
	assert.Equal(t, "$10.00", FormatPrice(10))
	assert.Equal(t, "$4.25", FormatPrice(4.25))
}

func TestFormatVariants_OneSegmentPerVariant(t *testing.T) {
	variants := []content.PriceVariant{
		{Size: content.SizeSmall, Price: 3.5},
		{Size: content.SizeMedium, Price: 4.25},
		{Size: content.SizeLarge, Price: 5},
	}

	assert.Equal(t, "S: $3.50 / M: $4.25 / L: $5.00", FormatVariants(variants))
}

func TestFormatVariants_UnknownSizeKeepsRawValue(t *testing.T) {
	variants := []content.PriceVariant{{Size: "bucket", Price: 12}}

	assert.Equal(t, "bucket: $12.00", FormatVariants(variants))
}

func TestFormatVariants_Empty(t *testing.T) {
	assert.Empty(t, FormatVariants(nil))
}

func TestPriceLine(t *testing.T) {
	withVariants := content.MenuItem{
		Price: 3.5,
		Variants: []content.PriceVariant{
			{Size: content.SizeSmall, Price: 3.5},
			{Size: content.SizeLarge, Price: 5},
		},
	}
	assert.Equal(t, "S: $3.50 / L: $5.00", PriceLine(withVariants))

	single := content.MenuItem{Price: 4.5}
	assert.Equal(t, "$4.50", PriceLine(single))
}

func TestDateFormats(t *testing.T) {
	ts := time.Date(2026, 1, 18, 19, 0, 0, 0, time.UTC)

	assert.Equal(t, "Sunday", Weekday(ts))
	assert.Equal(t, "Jan", Month(ts))
	assert.Equal(t, "Jan 18", MonthDay(ts))
	assert.Equal(t, "7:00 PM", TimeOfDay(ts))
	assert.Equal(t, "January 18, 2026", LongDate(ts))
}

func TestTimeOfDay_NoLeadingZero(t *testing.T) {
	ts := time.Date(2026, 2, 1, 9, 5, 0, 0, time.UTC)
	assert.Equal(t, "9:05 AM", TimeOfDay(ts))
}

func TestTagLabel(t *testing.T) {
	assert.Equal(t, "Staff Pick", TagLabel("staff-pick"))
	assert.Equal(t, "Gluten-Free", TagLabel("gluten-free"))
	assert.Equal(t, "limited-run", TagLabel("limited-run"))
}

func TestFeatureLabel(t *testing.T) {
	assert.Equal(t, "Free WiFi", FeatureLabel("wifi"))
	assert.Equal(t, "Dog Friendly Patio", FeatureLabel("dog-friendly"))
	assert.Equal(t, "rooftop", FeatureLabel("rooftop"))
}

func TestRecurrenceLabel(t *testing.T) {
	assert.Empty(t, RecurrenceLabel(""))
	assert.Empty(t, RecurrenceLabel(content.RecurringNone))
	assert.Equal(t, "Every Week", RecurrenceLabel(content.RecurringWeekly))
	assert.Equal(t, "Monthly", RecurrenceLabel(content.RecurringMonthly))
	assert.Equal(t, "biannual", RecurrenceLabel("biannual"))
}

func TestObjectPosition(t *testing.T) {
	assert.Equal(t, "center", ObjectPosition(nil))
	assert.Equal(t, "center", ObjectPosition(&content.Image{}))
	assert.Equal(t, "25% 75%", ObjectPosition(&content.Image{
		Hotspot: &content.Hotspot{X: 0.25, Y: 0.75},
	}))
}

func TestShortAddress(t *testing.T) {
	assert.Empty(t, ShortAddress(nil))
	assert.Equal(t, "3847 SE Division Street, Portland, OR", ShortAddress(&content.Address{
		Street: "3847 SE Division Street", City: "Portland", State: "OR", Zip: "97202",
	}))
}

func TestFullAddress(t *testing.T) {
	assert.Empty(t, FullAddress(nil))
	assert.Equal(t, "3847 SE Division Street, Portland, OR 97202", FullAddress(&content.Address{
		Street: "3847 SE Division Street", City: "Portland", State: "OR", Zip: "97202",
	}))
	assert.Equal(t, "Portland, OR", FullAddress(&content.Address{City: "Portland", State: "OR"}))
}

func TestLatLng(t *testing.T) {
	assert.Empty(t, LatLng(nil))
	assert.Equal(t, "45.5048,-122.6148", LatLng(&content.Coordinates{Lat: 45.5048, Lng: -122.6148}))
}

func TestDigitsOnly(t *testing.T) {
	assert.Equal(t, "5035550147", DigitsOnly("(503) 555-0147"))
}
