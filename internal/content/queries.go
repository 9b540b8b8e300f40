package content

// GROQ read queries, one per page-level data need. Filters, sort keys and
// limits live here so handlers stay declarative about what they consume.
const (
	siteSettingsQuery = `*[_type == "siteSettings"][0] {
  shopName, tagline, logo, socialLinks, footerText, seo
}`

	homePageQuery = `*[_type == "homePage"][0] {
  hero, featuredSection, storyPreview, announcement
}`

	aboutPageQuery = `*[_type == "aboutPage"][0] {
  headline, story, heroImage, values, timeline
}`

	categoriesQuery = `*[_type == "category"] | order(order asc) {
  _id, name, slug, description, order, icon
}`

	menuItemsQuery = `*[_type == "menuItem" && available == true] | order(category->order asc, name asc) {
  _id, name, slug, description, price, variants, image, tags, available, featured,
  category->{_id, name, slug}
}`

	featuredItemsQuery = `*[_type == "menuItem" && featured == true && available == true] | order(name asc) [0...6] {
  _id, name, slug, description, price, variants, image, tags, available, featured,
  category->{name}
}`

	staffQuery = `*[_type == "staffMember"] | order(order asc) {
  _id, name, role, bio, photo, favoriteOrder, funFact, order
}`

	locationsQuery = `*[_type == "location"] | order(isPrimary desc, name asc) {
  _id, name, slug, address, coordinates, hours, phone, email, image, description, features, isPrimary
}`

	primaryLocationQuery = `*[_type == "location" && isPrimary == true][0] {
  name, address, phone, email, hours
}`

	eventsQuery = `*[_type == "event" && date >= now()] | order(date asc) {
  _id, title, slug, shortDescription, date, endDate, recurring, image, featured,
  location->{name}
}`

	upcomingEventsQuery = `*[_type == "event" && date >= now()] | order(date asc) [0...3] {
  _id, title, slug, shortDescription, date, image,
  location->{name}
}`
)

// Limits applied by the sliced queries above. The local store evaluator applies
// the same values.
const (
	FeaturedItemsLimit  = 6
	UpcomingEventsLimit = 3
)
