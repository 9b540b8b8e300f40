package handlers

import (
	"net/http"

	"golang.org/x/sync/errgroup"

	"github.com/emberandoak/website/internal/content"
	"github.com/emberandoak/website/internal/view"
)

// HeroView is the home hero with every field resolved.
type HeroView struct {
	Headline    string
	Subheadline string
	CTAText     string
	CTALink     string
	ImageURL    string
}

// StoryView teases the about page story.
type StoryView struct {
	Heading  string
	Excerpt  string
	ImageURL string
}

// VisitView is the primary location strip on the home page.
type VisitView struct {
	Address string
	Hours   string
}

// HomeData feeds the home template.
type HomeData struct {
	BasePage
	Hero             HeroView
	FeaturedTitle    string
	FeaturedSubtitle string
	FeaturedItems    []ItemCard
	Story            StoryView
	Primary          *VisitView
	UpcomingEvents   []EventCard
}

// Home renders the landing page. Its four reads run concurrently and each
// degrades independently.
func (h *Handlers) Home(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		h.NotFound(w, r)
		return
	}

	var (
		settings *content.SiteSettings
		home     *content.HomePage
		featured []content.MenuItem
		events   []content.Event
		primary  *content.Location
	)
	g, ctx := errgroup.WithContext(r.Context())
	g.Go(func() error { settings = fetchOne(ctx, h, "siteSettings", h.store.SiteSettings); return nil })
	g.Go(func() error { home = fetchOne(ctx, h, "homePage", h.store.HomePage); return nil })
	g.Go(func() error { featured = fetchList(ctx, h, "featuredItems", h.store.FeaturedItems); return nil })
	g.Go(func() error { events = fetchList(ctx, h, "upcomingEvents", h.store.UpcomingEvents); return nil })
	g.Go(func() error { primary = fetchOne(ctx, h, "primaryLocation", h.store.PrimaryLocation); return nil })
	_ = g.Wait() // reads fold their own errors into empty results

	data := HomeData{
		BasePage:         h.basePage(settings, "", "", "home"),
		Hero:             h.heroView(home),
		FeaturedTitle:    fallbackFeaturedTitle,
		FeaturedSubtitle: fallbackFeaturedSubtitle,
		FeaturedItems:    h.itemCards(featured),
		Story:            h.storyView(home),
		Primary:          visitView(primary),
		UpcomingEvents:   h.eventCards(events),
	}
	if home != nil && home.FeaturedSection != nil {
		if home.FeaturedSection.Title != "" {
			data.FeaturedTitle = home.FeaturedSection.Title
		}
		if home.FeaturedSection.Subtitle != "" {
			data.FeaturedSubtitle = home.FeaturedSection.Subtitle
		}
	}
	if home != nil && home.Announcement != nil && home.Announcement.Enabled && home.Announcement.Text != "" {
		data.Announcement = home.Announcement
	}

	h.render(w, http.StatusOK, "home", data)
}

func (h *Handlers) heroView(home *content.HomePage) HeroView {
	hero := HeroView{
		Headline:    fallbackHeroHeadline,
		Subheadline: fallbackHeroSubheadline,
		CTAText:     fallbackHeroCTAText,
		CTALink:     fallbackHeroCTALink,
		ImageURL:    fallbackHeroImage,
	}
	if home == nil || home.Hero == nil {
		return hero
	}
	if home.Hero.Headline != "" {
		hero.Headline = home.Hero.Headline
	}
	if home.Hero.Subheadline != "" {
		hero.Subheadline = home.Hero.Subheadline
	}
	if home.Hero.CTAText != "" {
		hero.CTAText = home.Hero.CTAText
	}
	if home.Hero.CTALink != "" {
		hero.CTALink = home.Hero.CTALink
	}
	if url := h.images.Image(home.Hero.BackgroundImage).Width(1920).Quality(80).AutoFormat().String(); url != "" {
		hero.ImageURL = url
	}
	return hero
}

func (h *Handlers) storyView(home *content.HomePage) StoryView {
	story := StoryView{
		Heading:  fallbackStoryHeading,
		Excerpt:  fallbackStoryExcerpt,
		ImageURL: fallbackStoryImage,
	}
	if home == nil || home.StoryPreview == nil {
		return story
	}
	if home.StoryPreview.Heading != "" {
		story.Heading = home.StoryPreview.Heading
	}
	if home.StoryPreview.Excerpt != "" {
		story.Excerpt = home.StoryPreview.Excerpt
	}
	if url := h.images.Image(home.StoryPreview.Image).Width(800).Quality(80).AutoFormat().String(); url != "" {
		story.ImageURL = url
	}
	return story
}

func visitView(primary *content.Location) *VisitView {
	visit := &VisitView{
		Address: fallbackVisitAddress,
		Hours:   fallbackVisitHours,
	}
	if primary == nil {
		return visit
	}
	if addr := view.ShortAddress(primary.Address); addr != "" {
		visit.Address = addr
	}
	if len(primary.Hours) > 0 && primary.Hours[0].Hours != "" {
		visit.Hours = primary.Hours[0].Hours
	}
	return visit
}
