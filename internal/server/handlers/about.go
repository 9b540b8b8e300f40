package handlers

import (
	"html/template"
	"net/http"
	"strings"
	"unicode/utf8"

	"golang.org/x/sync/errgroup"

	"github.com/emberandoak/website/internal/blockcontent"
	"github.com/emberandoak/website/internal/content"
)

// StaffCard is one team member ready for display.
type StaffCard struct {
	Name          string
	Role          string
	Bio           string
	FavoriteOrder string
	FunFact       string
	PhotoURL      string
	Initial       string
}

// AboutData feeds the about template.
type AboutData struct {
	BasePage
	Headline     string
	HeroImageURL string
	StoryHTML    template.HTML
	Values       []content.Value
	Timeline     []content.Milestone
	Staff        []StaffCard
}

// About renders the story page: headline, rich-text story, values grid,
// timeline and staff.
func (h *Handlers) About(w http.ResponseWriter, r *http.Request) {
	var (
		settings *content.SiteSettings
		about    *content.AboutPage
		staff    []content.StaffMember
	)
	g, ctx := errgroup.WithContext(r.Context())
	g.Go(func() error { settings = fetchOne(ctx, h, "siteSettings", h.store.SiteSettings); return nil })
	g.Go(func() error { about = fetchOne(ctx, h, "aboutPage", h.store.AboutPage); return nil })
	g.Go(func() error { staff = fetchList(ctx, h, "staff", h.store.Staff); return nil })
	_ = g.Wait() // reads fold their own errors into empty results

	data := AboutData{
		BasePage: h.basePage(settings, "About", "", "about"),
		Headline: fallbackAboutHeadline,
		Staff:    h.staffCards(staff),
	}
	if about != nil {
		if about.Headline != "" {
			data.Headline = about.Headline
		}
		data.HeroImageURL = h.images.Image(about.HeroImage).Width(1600).Quality(80).AutoFormat().String()
		data.Values = about.Values
		data.Timeline = about.Timeline
	}
	data.StoryHTML = h.storyHTML(about)

	h.render(w, http.StatusOK, "about", data)
}

// storyHTML renders the rich-text story, substituting the fixed fallback
// paragraphs when the document or its story field is absent or malformed.
func (h *Handlers) storyHTML(about *content.AboutPage) template.HTML {
	if about != nil && len(about.Story) > 0 {
		html, err := blockcontent.Render(about.Story)
		if err == nil {
			return html
		}
		h.logger.Warn("Story rendering failed", "error", err)
	}
	var sb strings.Builder
	for _, p := range fallbackAboutStory {
		sb.WriteString("<p>")
		sb.WriteString(p)
		sb.WriteString("</p>\n")
	}
	return template.HTML(sb.String())
}

func (h *Handlers) staffCards(staff []content.StaffMember) []StaffCard {
	cards := make([]StaffCard, 0, len(staff))
	for _, person := range staff {
		card := StaffCard{
			Name:          person.Name,
			Role:          person.Role,
			Bio:           person.Bio,
			FavoriteOrder: person.FavoriteOrder,
			FunFact:       person.FunFact,
			Initial:       firstRune(person.Name),
		}
		if person.Photo != nil {
			card.PhotoURL = h.images.Image(person.Photo).Width(400).Height(400).Quality(80).AutoFormat().String()
		}
		cards = append(cards, card)
	}
	return cards
}

func firstRune(s string) string {
	if s == "" {
		return "?"
	}
	r, _ := utf8.DecodeRuneInString(s)
	return string(r)
}
