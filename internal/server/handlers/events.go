package handlers

import (
	"net/http"

	"golang.org/x/sync/errgroup"

	"github.com/emberandoak/website/internal/content"
)

// EventsData feeds the events template. Featured events render as larger
// cards; the rest fill a denser list.
type EventsData struct {
	BasePage
	Featured []EventCard
	Upcoming []EventCard
	Empty    bool
}

// Events renders all upcoming events partitioned by the featured flag.
func (h *Handlers) Events(w http.ResponseWriter, r *http.Request) {
	var (
		settings *content.SiteSettings
		events   []content.Event
	)
	g, ctx := errgroup.WithContext(r.Context())
	g.Go(func() error { settings = fetchOne(ctx, h, "siteSettings", h.store.SiteSettings); return nil })
	g.Go(func() error { events = fetchList(ctx, h, "events", h.store.Events); return nil })
	_ = g.Wait() // reads fold their own errors into empty results

	data := EventsData{
		BasePage: h.basePage(settings, "Events", "", "events"),
		Empty:    len(events) == 0,
	}
	for _, ev := range events {
		card := h.eventCard(ev)
		if ev.Featured {
			data.Featured = append(data.Featured, card)
		} else {
			data.Upcoming = append(data.Upcoming, card)
		}
	}

	h.render(w, http.StatusOK, "events", data)
}
