package handlers

// Fallback copy. Every optional content field has a hardcoded default so the
// site renders complete even against an empty content store.
const (
	fallbackShopName   = "Ember & Oak Coffee"
	fallbackTagline    = "Good coffee takes time."
	fallbackFooterText = "Neighborhood coffee, roasted in-house. Portland, Oregon since 2018."

	fallbackSiteDescription = "Neighborhood coffee shop in Portland, Oregon. House-roasted beans, local ingredients, and a space to slow down."

	fallbackHeroHeadline    = "Good Coffee Takes Time"
	fallbackHeroSubheadline = "House-roasted beans, local ingredients, and a space to slow down."
	fallbackHeroCTAText     = "View Menu"
	fallbackHeroCTALink     = "/menu"

	fallbackFeaturedTitle    = "What We're Pouring"
	fallbackFeaturedSubtitle = "A few favorites from our menu. Everything's made to order, nothing sits on a warmer."

	fallbackStoryHeading = "Started in a Garage"
	fallbackStoryExcerpt = "In 2018, Maya Chen left her job as a food scientist at a major coffee company. " +
		"She found a former auto repair shop on Division Street with good bones and terrible plumbing. " +
		"Eight months later, Ember & Oak opened its doors."

	fallbackVisitAddress = "3847 SE Division Street, Portland, OR"
	fallbackVisitHours   = "Mon-Fri: 6:30am - 6pm"

	fallbackAboutHeadline = "Good Coffee Takes Time. So Do Good Things."

	fallbackContactEmail = "hello@emberandoak.coffee"
	fallbackContactPhone = "(503) 555-0147"
)

// fallbackAboutStory backs the about page when no story document exists.
var fallbackAboutStory = []string{
	"In 2018, Maya Chen left her job as a food scientist at a major coffee company. Not because she didn't love coffee, but because she loved it too much.",
	"She found a former auto repair shop on Division Street with good bones and terrible plumbing. Eight months later, Ember & Oak opened its doors.",
}

// Stock photography used when a document has no image of its own.
const (
	fallbackItemImage  = "https://images.unsplash.com/photo-1514432324607-a09d9b4aefdd?w=600&q=80"
	fallbackHeroImage  = "https://images.unsplash.com/photo-1495474472287-4d71bcdd2085?w=1920&q=80"
	fallbackStoryImage = "https://images.unsplash.com/photo-1442512595331-e89e73853f31?w=800&q=80"
	fallbackShopImage  = "https://images.unsplash.com/photo-1554118811-1e0d58224f24?w=800&q=80"
)
