// Package content defines the document model served by the content store and
// the read interface the page handlers consume. All documents are owned by the
// external store; this process only holds request-scoped copies.
package content

import "time"

// Slug is a URL-safe identifier maintained by the editorial tool.
type Slug struct {
	Current string `json:"current"`
}

// Reference points at another document by ID.
type Reference struct {
	Ref  string `json:"_ref"`
	Type string `json:"_type,omitempty"`
}

// Hotspot is the fractional focal point used to bias image cropping.
type Hotspot struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Image is an image field with an asset reference and optional crop hotspot.
type Image struct {
	Type    string    `json:"_type,omitempty"`
	Asset   Reference `json:"asset"`
	Hotspot *Hotspot  `json:"hotspot,omitempty"`
}

// Span is one run of text inside a rich-text block.
type Span struct {
	Key   string   `json:"_key,omitempty"`
	Type  string   `json:"_type,omitempty"`
	Text  string   `json:"text"`
	Marks []string `json:"marks,omitempty"`
}

// MarkDef carries the payload for an annotated mark, currently only links.
type MarkDef struct {
	Key  string `json:"_key"`
	Type string `json:"_type"`
	Href string `json:"href,omitempty"`
}

// Block is one paragraph-level unit of portable rich text.
type Block struct {
	Key      string    `json:"_key,omitempty"`
	Type     string    `json:"_type,omitempty"`
	Style    string    `json:"style,omitempty"`
	Children []Span    `json:"children,omitempty"`
	MarkDefs []MarkDef `json:"markDefs,omitempty"`
	// Markdown carries locally-authored rich text; remote documents never set it.
	Markdown string `json:"markdown,omitempty"`
}

// Size names for menu item price variants.
const (
	SizeSmall  = "small"
	SizeMedium = "medium"
	SizeLarge  = "large"
)

// PriceVariant is one size/price pair for an item offered in multiple sizes.
type PriceVariant struct {
	Key   string  `json:"_key,omitempty"`
	Size  string  `json:"size"`
	Price float64 `json:"price"`
}

// Category groups menu items and drives menu ordering.
type Category struct {
	ID          string `json:"_id,omitempty"`
	Type        string `json:"_type,omitempty"`
	Name        string `json:"name"`
	Slug        Slug   `json:"slug"`
	Description string `json:"description,omitempty"`
	Order       int    `json:"order,omitempty"`
	Icon        string `json:"icon,omitempty"`
}

// CategorySummary is the expanded category reference carried on a menu item.
// Raw documents hold only Ref; the read side joins in ID, Name and Slug.
type CategorySummary struct {
	Ref  string `json:"_ref,omitempty"`
	ID   string `json:"_id,omitempty"`
	Name string `json:"name,omitempty"`
	Slug Slug   `json:"slug,omitempty"`
}

// MenuItem is one orderable item. Exactly one category per item; variants, when
// present, are non-empty with positive prices per size.
type MenuItem struct {
	ID          string           `json:"_id,omitempty"`
	Type        string           `json:"_type,omitempty"`
	Name        string           `json:"name"`
	Slug        *Slug            `json:"slug,omitempty"`
	Description string           `json:"description,omitempty"`
	Price       float64          `json:"price"`
	Variants    []PriceVariant   `json:"variants,omitempty"`
	Image       *Image           `json:"image,omitempty"`
	Tags        []string         `json:"tags,omitempty"`
	Available   bool             `json:"available"`
	Featured    bool             `json:"featured,omitempty"`
	Category    *CategorySummary `json:"category,omitempty"`
}

// Address is a structured street address.
type Address struct {
	Street string `json:"street,omitempty"`
	City   string `json:"city,omitempty"`
	State  string `json:"state,omitempty"`
	Zip    string `json:"zip,omitempty"`
}

// Coordinates is an optional lat/lng pair.
type Coordinates struct {
	Lat float64 `json:"lat,omitempty"`
	Lng float64 `json:"lng,omitempty"`
}

// HoursBlock is a free-text day-range/hour-range pair; no time format is enforced.
type HoursBlock struct {
	Key   string `json:"_key,omitempty"`
	Days  string `json:"days,omitempty"`
	Hours string `json:"hours,omitempty"`
}

// Location is one shop. At most one location carries IsPrimary by editorial
// convention; nothing here enforces it.
type Location struct {
	ID          string       `json:"_id,omitempty"`
	Type        string       `json:"_type,omitempty"`
	Name        string       `json:"name"`
	Slug        *Slug        `json:"slug,omitempty"`
	Address     *Address     `json:"address,omitempty"`
	Coordinates *Coordinates `json:"coordinates,omitempty"`
	Hours       []HoursBlock `json:"hours,omitempty"`
	Phone       string       `json:"phone,omitempty"`
	Email       string       `json:"email,omitempty"`
	Image       *Image       `json:"image,omitempty"`
	Description string       `json:"description,omitempty"`
	Features    []string     `json:"features,omitempty"`
	IsPrimary   bool         `json:"isPrimary,omitempty"`
}

// LocationSummary is the expanded location reference carried on an event.
type LocationSummary struct {
	Ref     string   `json:"_ref,omitempty"`
	Name    string   `json:"name,omitempty"`
	Address *Address `json:"address,omitempty"`
}

// Recurrence values for events.
const (
	RecurringNone    = "none"
	RecurringWeekly  = "weekly"
	RecurringMonthly = "monthly"
)

// Event is a scheduled happening. Date is required; list reads exclude events
// whose date is strictly before now.
type Event struct {
	ID               string           `json:"_id,omitempty"`
	Type             string           `json:"_type,omitempty"`
	Title            string           `json:"title"`
	Slug             *Slug            `json:"slug,omitempty"`
	Description      []Block          `json:"description,omitempty"`
	ShortDescription string           `json:"shortDescription,omitempty"`
	Date             time.Time        `json:"date"`
	EndDate          *time.Time       `json:"endDate,omitempty"`
	Recurring        string           `json:"recurring,omitempty"`
	Image            *Image           `json:"image,omitempty"`
	Featured         bool             `json:"featured,omitempty"`
	Location         *LocationSummary `json:"location,omitempty"`
}

// StaffMember is one team member on the about page.
type StaffMember struct {
	ID            string `json:"_id,omitempty"`
	Type          string `json:"_type,omitempty"`
	Name          string `json:"name"`
	Role          string `json:"role"`
	Bio           string `json:"bio,omitempty"`
	Photo         *Image `json:"photo,omitempty"`
	FavoriteOrder string `json:"favoriteOrder,omitempty"`
	FunFact       string `json:"funFact,omitempty"`
	Order         int    `json:"order,omitempty"`
}

// SocialLinks holds the shop's social profiles.
type SocialLinks struct {
	Instagram string `json:"instagram,omitempty"`
	Facebook  string `json:"facebook,omitempty"`
	Twitter   string `json:"twitter,omitempty"`
}

// SEO carries default metadata for pages without their own.
type SEO struct {
	MetaTitle       string `json:"metaTitle,omitempty"`
	MetaDescription string `json:"metaDescription,omitempty"`
	OGImage         *Image `json:"ogImage,omitempty"`
}

// SiteSettings is the site-wide singleton.
type SiteSettings struct {
	ID          string       `json:"_id,omitempty"`
	Type        string       `json:"_type,omitempty"`
	ShopName    string       `json:"shopName,omitempty"`
	Tagline     string       `json:"tagline,omitempty"`
	Logo        *Image       `json:"logo,omitempty"`
	SocialLinks *SocialLinks `json:"socialLinks,omitempty"`
	FooterText  string       `json:"footerText,omitempty"`
	SEO         *SEO         `json:"seo,omitempty"`
}

// Hero is the home page hero section.
type Hero struct {
	Headline        string `json:"headline,omitempty"`
	Subheadline     string `json:"subheadline,omitempty"`
	BackgroundImage *Image `json:"backgroundImage,omitempty"`
	CTAText         string `json:"ctaText,omitempty"`
	CTALink         string `json:"ctaLink,omitempty"`
}

// FeaturedSection titles the featured-items strip on the home page.
type FeaturedSection struct {
	Title    string `json:"title,omitempty"`
	Subtitle string `json:"subtitle,omitempty"`
}

// StoryPreview teases the about-page story on the home page.
type StoryPreview struct {
	Heading string `json:"heading,omitempty"`
	Excerpt string `json:"excerpt,omitempty"`
	Image   *Image `json:"image,omitempty"`
}

// Announcement is the optional site-wide banner.
type Announcement struct {
	Enabled bool   `json:"enabled,omitempty"`
	Text    string `json:"text,omitempty"`
	Link    string `json:"link,omitempty"`
}

// HomePage is the home page singleton. Every field is optional; the renderer
// substitutes fixed fallback copy for anything absent.
type HomePage struct {
	ID              string           `json:"_id,omitempty"`
	Type            string           `json:"_type,omitempty"`
	Hero            *Hero            `json:"hero,omitempty"`
	FeaturedSection *FeaturedSection `json:"featuredSection,omitempty"`
	StoryPreview    *StoryPreview    `json:"storyPreview,omitempty"`
	Announcement    *Announcement    `json:"announcement,omitempty"`
}

// Value is one entry in the about page values grid.
type Value struct {
	Key         string `json:"_key,omitempty"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
}

// Milestone is one entry in the about page timeline.
type Milestone struct {
	Key         string `json:"_key,omitempty"`
	Year        string `json:"year"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
}

// AboutPage is the about page singleton.
type AboutPage struct {
	ID        string      `json:"_id,omitempty"`
	Type      string      `json:"_type,omitempty"`
	Headline  string      `json:"headline,omitempty"`
	Story     []Block     `json:"story,omitempty"`
	HeroImage *Image      `json:"heroImage,omitempty"`
	Values    []Value     `json:"values,omitempty"`
	Timeline  []Milestone `json:"timeline,omitempty"`
}

// Document type names as stored in the content store.
const (
	TypeCategory     = "category"
	TypeMenuItem     = "menuItem"
	TypeLocation     = "location"
	TypeEvent        = "event"
	TypeStaffMember  = "staffMember"
	TypeSiteSettings = "siteSettings"
	TypeHomePage     = "homePage"
	TypeAboutPage    = "aboutPage"
)
