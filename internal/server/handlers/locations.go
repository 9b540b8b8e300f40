package handlers

import (
	"net/http"
	"net/url"

	"golang.org/x/sync/errgroup"

	"github.com/emberandoak/website/internal/content"
	"github.com/emberandoak/website/internal/view"
)

// LocationCard is one shop ready for display.
type LocationCard struct {
	Name         string
	IsPrimary    bool
	Description  string
	ShortAddress string
	MapsURL      string
	Phone        string
	PhoneDigits  string
	Email        string
	Hours        []content.HoursBlock
	Features     []string
	ImageURL     string
}

// LocationsData feeds the locations template.
type LocationsData struct {
	BasePage
	Locations []LocationCard
}

// Locations renders every shop, primary first.
func (h *Handlers) Locations(w http.ResponseWriter, r *http.Request) {
	var (
		settings  *content.SiteSettings
		locations []content.Location
	)
	g, ctx := errgroup.WithContext(r.Context())
	g.Go(func() error { settings = fetchOne(ctx, h, "siteSettings", h.store.SiteSettings); return nil })
	g.Go(func() error { locations = fetchList(ctx, h, "locations", h.store.Locations); return nil })
	_ = g.Wait() // reads fold their own errors into empty results

	data := LocationsData{
		BasePage:  h.basePage(settings, "Locations", "", "locations"),
		Locations: h.locationCards(locations),
	}
	h.render(w, http.StatusOK, "locations", data)
}

func (h *Handlers) locationCards(locations []content.Location) []LocationCard {
	cards := make([]LocationCard, 0, len(locations))
	for _, loc := range locations {
		card := LocationCard{
			Name:         loc.Name,
			IsPrimary:    loc.IsPrimary,
			Description:  loc.Description,
			ShortAddress: view.ShortAddress(loc.Address),
			MapsURL:      mapsURL(loc),
			Phone:        loc.Phone,
			PhoneDigits:  view.DigitsOnly(loc.Phone),
			Email:        loc.Email,
			Hours:        loc.Hours,
			Features:     loc.Features,
		}
		if loc.Image != nil {
			card.ImageURL = h.images.Image(loc.Image).Width(800).Quality(80).AutoFormat().String()
		}
		if card.ImageURL == "" {
			card.ImageURL = fallbackShopImage
		}
		cards = append(cards, card)
	}
	return cards
}

// mapsURL links a location to an external map, preferring exact coordinates
// over a free-text address search.
func mapsURL(loc content.Location) string {
	if c := loc.Coordinates; c != nil && (c.Lat != 0 || c.Lng != 0) {
		return "https://www.google.com/maps/search/?api=1&query=" +
			url.QueryEscape(view.LatLng(c))
	}
	if addr := view.FullAddress(loc.Address); addr != "" {
		return "https://www.google.com/maps/search/?api=1&query=" + url.QueryEscape(addr)
	}
	return ""
}
