package handlers

import (
	"net/http"

	"golang.org/x/sync/errgroup"

	"github.com/emberandoak/website/internal/content"
)

// MenuSection is one category and its items.
type MenuSection struct {
	Name        string
	Slug        string
	Description string
	Items       []ItemCard
}

// MenuData feeds the menu template.
type MenuData struct {
	BasePage
	Sections []MenuSection
}

// Menu renders the full menu grouped by category in category display order.
// Items arrive pre-sorted by category order then name; grouping preserves
// that order, and categories with no available items are dropped.
func (h *Handlers) Menu(w http.ResponseWriter, r *http.Request) {
	var (
		settings   *content.SiteSettings
		categories []content.Category
		items      []content.MenuItem
	)
	g, ctx := errgroup.WithContext(r.Context())
	g.Go(func() error { settings = fetchOne(ctx, h, "siteSettings", h.store.SiteSettings); return nil })
	g.Go(func() error { categories = fetchList(ctx, h, "categories", h.store.Categories); return nil })
	g.Go(func() error { items = fetchList(ctx, h, "menuItems", h.store.MenuItems); return nil })
	_ = g.Wait() // reads fold their own errors into empty results

	data := MenuData{
		BasePage: h.basePage(settings, "Menu", "", "menu"),
		Sections: h.menuSections(categories, items),
	}
	h.render(w, http.StatusOK, "menu", data)
}

func (h *Handlers) menuSections(categories []content.Category, items []content.MenuItem) []MenuSection {
	byCategory := make(map[string][]ItemCard, len(categories))
	for _, item := range items {
		if item.Category == nil {
			continue
		}
		id := item.Category.ID
		byCategory[id] = append(byCategory[id], h.itemCard(item))
	}

	sections := make([]MenuSection, 0, len(categories))
	for _, cat := range categories {
		cards := byCategory[cat.ID]
		if len(cards) == 0 {
			continue
		}
		sections = append(sections, MenuSection{
			Name:        cat.Name,
			Slug:        cat.Slug.Current,
			Description: cat.Description,
			Items:       cards,
		})
	}
	return sections
}
