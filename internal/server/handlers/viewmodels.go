package handlers

import (
	"time"

	"github.com/emberandoak/website/internal/content"
	"github.com/emberandoak/website/internal/view"
)

// BasePage carries the header and footer state shared by every page.
type BasePage struct {
	Title        string
	Description  string
	ShopName     string
	Tagline      string
	FooterText   string
	Social       *content.SocialLinks
	Announcement *content.Announcement
	Active       string
	Year         int
}

// basePage builds the shared page state from site settings, falling back to
// the fixed shop identity when the singleton is absent.
func (h *Handlers) basePage(settings *content.SiteSettings, title, description, active string) BasePage {
	base := BasePage{
		ShopName:    fallbackShopName,
		Tagline:     fallbackTagline,
		FooterText:  fallbackFooterText,
		Description: description,
		Active:      active,
		Year:        time.Now().Year(),
	}
	if settings != nil {
		if settings.ShopName != "" {
			base.ShopName = settings.ShopName
		}
		if settings.Tagline != "" {
			base.Tagline = settings.Tagline
		}
		if settings.FooterText != "" {
			base.FooterText = settings.FooterText
		}
		base.Social = settings.SocialLinks
		if base.Description == "" && settings.SEO != nil {
			base.Description = settings.SEO.MetaDescription
		}
	}
	if base.Description == "" {
		base.Description = fallbackSiteDescription
	}
	if title == "" {
		base.Title = base.ShopName + " | Portland, Oregon"
	} else {
		base.Title = title + " | " + base.ShopName
	}
	return base
}

// ItemCard is one menu item ready for display.
type ItemCard struct {
	Name           string
	Description    string
	PriceLine      string
	Tags           []string
	ImageURL       string
	PlaceholderURL string
	Position       string
}

func (h *Handlers) itemCard(item content.MenuItem) ItemCard {
	card := ItemCard{
		Name:        item.Name,
		Description: item.Description,
		PriceLine:   view.PriceLine(item),
		Tags:        item.Tags,
		Position:    view.ObjectPosition(item.Image),
	}
	if item.Image != nil {
		card.ImageURL = h.images.Image(item.Image).Width(600).Quality(80).AutoFormat().String()
		card.PlaceholderURL = h.images.Image(item.Image).Placeholder()
	}
	if card.ImageURL == "" {
		card.ImageURL = fallbackItemImage
		card.PlaceholderURL = ""
	}
	return card
}

func (h *Handlers) itemCards(items []content.MenuItem) []ItemCard {
	cards := make([]ItemCard, 0, len(items))
	for _, item := range items {
		cards = append(cards, h.itemCard(item))
	}
	return cards
}

// EventCard is one event ready for display, dates preformatted.
type EventCard struct {
	Title            string
	Month            string
	Day              string
	Weekday          string
	Time             string
	ShortDescription string
	LocationName     string
	Recurrence       string
	ImageURL         string
	Featured         bool
}

func (h *Handlers) eventCard(ev content.Event) EventCard {
	card := EventCard{
		Title:            ev.Title,
		Month:            view.Month(ev.Date),
		Day:              ev.Date.Format("2"),
		Weekday:          view.Weekday(ev.Date),
		Time:             view.TimeOfDay(ev.Date),
		ShortDescription: ev.ShortDescription,
		Recurrence:       view.RecurrenceLabel(ev.Recurring),
		Featured:         ev.Featured,
	}
	if ev.Location != nil {
		card.LocationName = ev.Location.Name
	}
	if ev.Image != nil {
		card.ImageURL = h.images.Image(ev.Image).Width(600).Quality(80).AutoFormat().String()
	}
	return card
}

func (h *Handlers) eventCards(events []content.Event) []EventCard {
	cards := make([]EventCard, 0, len(events))
	for _, ev := range events {
		cards = append(cards, h.eventCard(ev))
	}
	return cards
}
