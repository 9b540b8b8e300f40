// Package seed loads the Ember & Oak editorial dataset into a content store.
// It is a one-off bootstrap for new datasets and local development; the
// serving path never writes.
package seed

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/emberandoak/website/internal/content"
)

// Run writes every seed document through the mutator. Documents use fixed IDs
// so reruns replace rather than duplicate.
func Run(ctx context.Context, m content.Mutator, logger *slog.Logger) error {
	docs := Documents()
	for _, doc := range docs {
		if err := m.CreateOrReplace(ctx, doc); err != nil {
			return fmt.Errorf("seeding: %w", err)
		}
	}
	logger.Info("Seed complete", slog.Int("documents", len(docs)))
	return nil
}

// Documents returns the full dataset: singletons, categories, menu items,
// staff, locations and events.
func Documents() []any {
	docs := []any{siteSettings(), homePage(), aboutPage()}
	for _, c := range categories() {
		docs = append(docs, c)
	}
	for _, m := range menuItems() {
		docs = append(docs, m)
	}
	for _, s := range staff() {
		docs = append(docs, s)
	}
	for _, l := range locations() {
		docs = append(docs, l)
	}
	for _, e := range events() {
		docs = append(docs, e)
	}
	return docs
}

func siteSettings() content.SiteSettings {
	return content.SiteSettings{
		ID:         "siteSettings",
		Type:       content.TypeSiteSettings,
		ShopName:   "Ember & Oak Coffee",
		Tagline:    "Good coffee takes time.",
		FooterText: "Neighborhood coffee, roasted in-house. Portland, Oregon since 2018.",
		SocialLinks: &content.SocialLinks{
			Instagram: "https://instagram.com/emberandoak",
			Facebook:  "https://facebook.com/emberandoak",
		},
		SEO: &content.SEO{
			MetaTitle:       "Ember & Oak Coffee | Portland, Oregon",
			MetaDescription: "Neighborhood coffee shop in Portland, Oregon. House-roasted beans, local ingredients, and a space to slow down.",
		},
	}
}

func homePage() content.HomePage {
	return content.HomePage{
		ID:   "homePage",
		Type: content.TypeHomePage,
		Hero: &content.Hero{
			Headline:    "Good Coffee Takes Time",
			Subheadline: "House-roasted beans, local ingredients, and a space to slow down.",
			CTAText:     "View Menu",
			CTALink:     "/menu",
		},
		FeaturedSection: &content.FeaturedSection{
			Title:    "What We're Pouring",
			Subtitle: "A few favorites from our menu. Everything's made to order, nothing sits on a warmer.",
		},
		StoryPreview: &content.StoryPreview{
			Heading: "Started in a Garage",
			Excerpt: "In 2018, Maya Chen left her job as a food scientist at a major coffee company. She found a former auto repair shop on Division Street with good bones and terrible plumbing. Eight months later, Ember & Oak opened its doors.",
		},
		Announcement: &content.Announcement{Enabled: false},
	}
}

func storyBlock(key, text string) content.Block {
	return content.Block{
		Key:   key,
		Type:  "block",
		Style: "normal",
		Children: []content.Span{
			{Key: key + "-span", Type: "span", Text: text},
		},
	}
}

func aboutPage() content.AboutPage {
	return content.AboutPage{
		ID:       "aboutPage",
		Type:     content.TypeAboutPage,
		Headline: "Good Coffee Takes Time. So Do Good Things.",
		Story: []content.Block{
			storyBlock("block1", "In 2018, Maya Chen left her job as a food scientist at a major coffee company. Not because she didn't love coffee, but because she loved it too much. She was tired of watching beans get roasted to anonymity and milk alternatives treated as afterthoughts."),
			storyBlock("block2", "She found a former auto repair shop on Division Street with good bones and terrible plumbing. Her brother Daniel, a contractor with more optimism than sense, said he could have it ready in three months. It took eight."),
			storyBlock("block3", "The first year was brutal. Maya burned through savings, learned to fix an espresso machine at 5 AM, and discovered that \"regulars\" are made, not found. But slowly, Ember & Oak became what she'd imagined: a place where coffee is a craft, not a commodity."),
			storyBlock("block4", "Today, we roast our own beans in small batches, source oat milk from a farm in Willamette Valley, and make pastries that Maya's grandmother would recognize, if not entirely approve of. (She still thinks American coffee is too weak.)"),
			storyBlock("block5", "We're not trying to change the world. We're just trying to make your morning a little better."),
		},
		Values: []content.Value{
			{Key: "value1", Title: "Quality Over Quantity", Description: "We roast in small batches, brew fresh every 30 minutes, and would rather run out than serve something that's been sitting."},
			{Key: "value2", Title: "Know Your Farmer", Description: "Direct relationships with growers in Guatemala, Ethiopia, and Colombia. We visit when we can, video call when we can't."},
			{Key: "value3", Title: "Local First", Description: "Oat milk from Willamette Valley. Pastries from Pine Street Bakery. Chocolate from Woodblock. If someone nearby makes it better, we buy from them."},
			{Key: "value4", Title: "No Shortcuts", Description: "House-made syrups. 18-hour cold brew. Chai spiced fresh. The extra effort shows up in the cup."},
		},
		Timeline: []content.Milestone{
			{Key: "tl1", Year: "2018", Title: "Division Street Opens", Description: "After eight months of renovation (three months over schedule), we opened our doors in a former auto repair shop."},
			{Key: "tl2", Year: "2019", Title: "Started Roasting", Description: "Installed our first roaster, a 12kg Probat, and started roasting all our espresso in-house."},
			{Key: "tl3", Year: "2021", Title: "Survived the Pandemic", Description: "Switched to takeout-only, launched delivery, and somehow made it through. Our regulars kept us alive."},
			{Key: "tl4", Year: "2023", Title: "Alberta Opens", Description: "Our second location in the Alberta Arts District. Smaller, cozier, surrounded by galleries."},
			{Key: "tl5", Year: "2024", Title: "Still Here", Description: "Six years in. Same espresso machine. Same mission. A few more gray hairs on Maya's head."},
		},
	}
}

func categories() []content.Category {
	return []content.Category{
		{ID: "category-espresso", Type: content.TypeCategory, Name: "Espresso", Slug: content.Slug{Current: "espresso"}, Icon: "coffee", Order: 1},
		{ID: "category-drip", Type: content.TypeCategory, Name: "Drip & Cold", Slug: content.Slug{Current: "drip-cold"}, Icon: "coffee", Order: 2},
		{ID: "category-notcoffee", Type: content.TypeCategory, Name: "Not Coffee", Slug: content.Slug{Current: "not-coffee"}, Icon: "leaf", Order: 3},
		{ID: "category-food", Type: content.TypeCategory, Name: "Pastries & Food", Slug: content.Slug{Current: "food"}, Icon: "pastry", Order: 4},
	}
}

func variants(prices ...float64) []content.PriceVariant {
	keys := []string{"sm", "md", "lg"}
	sizes := []string{content.SizeSmall, content.SizeMedium, content.SizeLarge}
	vs := make([]content.PriceVariant, 0, len(prices))
	for i, p := range prices {
		vs = append(vs, content.PriceVariant{Key: keys[i], Size: sizes[i], Price: p})
	}
	return vs
}

func menuItem(id, name, slug, categoryID, description string, price float64) content.MenuItem {
	return content.MenuItem{
		ID:          id,
		Type:        content.TypeMenuItem,
		Name:        name,
		Slug:        &content.Slug{Current: slug},
		Category:    &content.CategorySummary{Ref: categoryID},
		Description: description,
		Price:       price,
		Available:   true,
	}
}

func menuItems() []content.MenuItem {
	division := menuItem("menu-division", "The Division", "the-division", "category-espresso",
		"Our signature blend of Guatemala and Ethiopia, roasted in-house. Notes of dark chocolate, cherry, and just enough brightness to wake you up without shouting.", 3.50)
	division.Variants = variants(3.50, 4.25, 5.00)
	division.Tags = []string{"staff-pick"}
	division.Featured = true

	cortado := menuItem("menu-cortado", "Cortado", "cortado", "category-espresso",
		"Equal parts espresso and steamed milk. Simple. Perfect. No customizations because it doesn't need them.", 4.50)

	oatLatte := menuItem("menu-oat-latte", "Oat Milk Latte", "oat-milk-latte", "category-espresso",
		"Made with Misty Morning oat milk from the Willamette Valley. Creamy without being cloying.", 5.00)
	oatLatte.Variants = variants(5.00, 5.75, 6.50)
	oatLatte.Tags = []string{"vegan", "dairy-free"}
	oatLatte.Featured = true

	lavender := menuItem("menu-lavender-latte", "Lavender Honey Latte", "lavender-honey-latte", "category-espresso",
		"Local wildflower honey and house-made lavender syrup. Sweet, floral, a little unexpected. Maya's answer to 'can you make it less bitter?'", 5.50)
	lavender.Variants = variants(5.50, 6.25, 7.00)
	lavender.Tags = []string{"seasonal"}
	lavender.Featured = true

	redEye := menuItem("menu-redeye", "Red Eye", "red-eye", "category-espresso",
		"Drip coffee with a shot of espresso. For days when one caffeine delivery system isn't enough.", 4.75)

	drip := menuItem("menu-drip", "House Drip", "house-drip", "category-drip",
		"Rotating single-origin, brewed fresh every 30 minutes. Ask your barista what's on; they're excited to tell you.", 2.75)
	drip.Variants = variants(2.75, 3.25, 3.75)
	drip.Tags = []string{"vegan"}

	coldBrew := menuItem("menu-coldbrew", "Cold Brew", "cold-brew", "category-drip",
		"Steeped 18 hours, served over ice. Strong enough to be dangerous, smooth enough to forget that.", 4.50)
	coldBrew.Tags = []string{"vegan"}
	coldBrew.Featured = true

	nitro := menuItem("menu-nitro", "Nitro Cold Brew", "nitro-cold-brew", "category-drip",
		"Cold brew on tap, infused with nitrogen. Creamy, cascading, caffeinated.", 5.50)
	nitro.Tags = []string{"vegan", "staff-pick"}

	icedAmericano := menuItem("menu-iced-americano", "Iced Americano", "iced-americano", "category-drip",
		"Espresso, water, ice. The 'I want coffee but it's 90 degrees' drink.", 3.75)
	icedAmericano.Variants = variants(3.75, 4.50)
	icedAmericano.Tags = []string{"vegan"}

	matcha := menuItem("menu-matcha", "Matcha Latte", "matcha-latte", "category-notcoffee",
		"Ceremonial-grade matcha from Uji, Japan. Earthy, grassy, nothing like the stuff from a powder.", 5.25)
	matcha.Variants = variants(5.25, 6.00)
	matcha.Tags = []string{"vegan"}

	londonFog := menuItem("menu-london-fog", "London Fog", "london-fog", "category-notcoffee",
		"Earl Grey, vanilla, steamed milk. Named after a city with terrible weather and excellent tea.", 4.50)
	londonFog.Variants = variants(4.50, 5.25)

	hotChocolate := menuItem("menu-hot-chocolate", "Hot Chocolate", "hot-chocolate", "category-notcoffee",
		"Made with Woodblock chocolate and whole milk. Rich enough to count as dessert.", 4.25)
	hotChocolate.Variants = variants(4.25, 5.00)

	chai := menuItem("menu-chai", "Chai Latte", "chai-latte", "category-notcoffee",
		"House-spiced chai: cardamom, ginger, black pepper, cinnamon. Made fresh, not from a box.", 4.75)
	chai.Variants = variants(4.75, 5.50)

	muffin := menuItem("menu-muffin", "Morning Glory Muffin", "morning-glory-muffin", "category-food",
		"Carrots, apple, coconut, walnuts. Somehow both virtuous and delicious.", 4.25)
	muffin.Tags = []string{"vegan"}

	croissant := menuItem("menu-croissant", "Almond Croissant", "almond-croissant", "category-food",
		"From Pine Street Bakery. Flaky, frangipane-filled, probably too good for a Monday.", 5.50)

	bagel := menuItem("menu-bagel", "Everything Bagel", "everything-bagel", "category-food",
		"Housemade cream cheese, capers, pickled onion, cucumber. A proper bagel situation.", 7.50)

	avoToast := menuItem("menu-avo-toast", "Avocado Toast", "avocado-toast", "category-food",
		"Sourdough, smashed avo, chili flake, flaky salt, pepitas. Yes, that avocado toast.", 9.00)
	avoToast.Tags = []string{"vegan"}

	granola := menuItem("menu-granola", "Granola Bowl", "granola-bowl", "category-food",
		"House granola, Greek yogurt, seasonal fruit, honey. Changes with whatever's good at the market.", 8.50)
	granola.Tags = []string{"gluten-free"}

	sandwich := menuItem("menu-sandwich", "Breakfast Sandwich", "breakfast-sandwich", "category-food",
		"Scrambled eggs, aged cheddar, bacon or tempeh, greens, sriracha aioli on a brioche bun.", 10.50)
	sandwich.Tags = []string{"staff-pick"}
	sandwich.Featured = true

	return []content.MenuItem{
		division, cortado, oatLatte, lavender, redEye,
		drip, coldBrew, nitro, icedAmericano,
		matcha, londonFog, hotChocolate, chai,
		muffin, croissant, bagel, avoToast, granola, sandwich,
	}
}

func staff() []content.StaffMember {
	return []content.StaffMember{
		{
			ID: "staff-maya", Type: content.TypeStaffMember, Name: "Maya Chen", Role: "Founder & Head Roaster",
			Bio:           "Former food scientist turned reluctant business owner. Still gets excited about bean density.",
			FavoriteOrder: "Cortado, no variations",
			FunFact:       "Once blind-tested 47 oat milks to find the right one",
			Order:         1,
		},
		{
			ID: "staff-daniel", Type: content.TypeStaffMember, Name: "Daniel Chen", Role: "Operations Manager",
			Bio:           "Maya's brother. Fixed up the original space and never left. Handles everything that isn't coffee.",
			FavoriteOrder: "Red Eye with oat milk",
			FunFact:       "Built all the furniture from reclaimed oak beams",
			Order:         2,
		},
		{
			ID: "staff-jess", Type: content.TypeStaffMember, Name: "Jess Okonkwo", Role: "Lead Barista",
			Bio:           "6 years in specialty coffee, latte art champion (regional, 2022). Strong opinions about tamping pressure.",
			FavoriteOrder: "Iced oat milk latte, light ice",
			FunFact:       "Has a tattoo of a portafilter",
			Order:         3,
		},
		{
			ID: "staff-sam", Type: content.TypeStaffMember, Name: "Sam Reeves", Role: "Barista",
			Bio:           "Former music teacher, current caffeine artist. Knows everyone's regular order within two visits.",
			FavoriteOrder: "Chai latte, extra spicy",
			FunFact:       "Plays in a folk band called 'The Pour Overs'",
			Order:         4,
		},
	}
}

func locations() []content.Location {
	return []content.Location{
		{
			ID: "location-division", Type: content.TypeLocation, Name: "Division Street",
			Slug: &content.Slug{Current: "division"},
			Address: &content.Address{
				Street: "3847 SE Division Street", City: "Portland", State: "OR", Zip: "97202",
			},
			Coordinates: &content.Coordinates{Lat: 45.5045, Lng: -122.6187},
			Phone:       "(503) 555-0147",
			Email:       "hello@emberandoak.coffee",
			Description: "Our original location in a converted auto shop. High ceilings, lots of light, and the espresso machine that started it all.",
			Hours: []content.HoursBlock{
				{Key: "h1", Days: "Monday - Friday", Hours: "6:30 AM - 6:00 PM"},
				{Key: "h2", Days: "Saturday", Hours: "7:00 AM - 6:00 PM"},
				{Key: "h3", Days: "Sunday", Hours: "7:30 AM - 4:00 PM"},
			},
			Features:  []string{"wifi", "outdoor", "accessible", "dog-friendly"},
			IsPrimary: true,
		},
		{
			ID: "location-alberta", Type: content.TypeLocation, Name: "Alberta Arts",
			Slug: &content.Slug{Current: "alberta"},
			Address: &content.Address{
				Street: "2215 NE Alberta Street", City: "Portland", State: "OR", Zip: "97211",
			},
			Coordinates: &content.Coordinates{Lat: 45.5589, Lng: -122.6456},
			Phone:       "(503) 555-0283",
			Email:       "alberta@emberandoak.coffee",
			Description: "Our Alberta outpost. Smaller, cozier, surrounded by galleries. Perfect for a quiet morning with a book.",
			Hours: []content.HoursBlock{
				{Key: "h1", Days: "Monday - Friday", Hours: "7:00 AM - 5:00 PM"},
				{Key: "h2", Days: "Saturday - Sunday", Hours: "8:00 AM - 5:00 PM"},
			},
			Features: []string{"wifi", "outdoor", "accessible"},
		},
	}
}

func event(id, title, slug, short, locationID, recurring string, date time.Time, featured bool) content.Event {
	return content.Event{
		ID:               id,
		Type:             content.TypeEvent,
		Title:            title,
		Slug:             &content.Slug{Current: slug},
		ShortDescription: short,
		Date:             date,
		Recurring:        recurring,
		Location:         &content.LocationSummary{Ref: locationID},
		Featured:         featured,
	}
}

func events() []content.Event {
	return []content.Event{
		event("event-cupping", "Cupping Session: Ethiopia Yirgacheffe", "cupping-ethiopia",
			"Join Maya for a guided tasting of our new single-origin Ethiopian. Learn about processing methods, flavor profiles, and why we're so excited about this coffee. Limited to 12 people.",
			"location-division", content.RecurringNone,
			time.Date(2026, 1, 15, 10, 0, 0, 0, time.UTC), true),
		event("event-music", "Live Music: The Pour Overs", "live-music-pour-overs",
			"Our own Sam Reeves and his folk band play their monthly set. Original songs about coffee, rain, and questionable life choices. No cover, just good music and late-night espresso.",
			"location-division", content.RecurringMonthly,
			time.Date(2026, 1, 18, 19, 0, 0, 0, time.UTC), true),
		event("event-throwdown", "Latte Art Throwdown", "latte-art-throwdown",
			"Local baristas compete for glory (and a $100 bar tab). Come watch, vote, and drink the evidence. Open to all skill levels; sign up at the bar.",
			"location-division", content.RecurringNone,
			time.Date(2026, 1, 25, 16, 0, 0, 0, time.UTC), false),
		event("event-poetry", "Poetry Open Mic", "poetry-open-mic",
			"Hosted by Portland Poets Collective. Sign-up starts at 6:30. Five-minute sets. Be brave.",
			"location-alberta", content.RecurringWeekly,
			time.Date(2026, 1, 21, 19, 0, 0, 0, time.UTC), false),
		event("event-workshop", "Brewing 101: Pour Over Workshop", "pour-over-workshop",
			"Learn to make coffee shop quality pour-overs at home. We'll cover grind size, water temperature, timing, and technique. You'll leave with a bag of beans and newfound confidence.",
			"location-division", content.RecurringNone,
			time.Date(2026, 2, 1, 11, 0, 0, 0, time.UTC), false),
		event("event-vinyl", "Coffee & Vinyl Night", "coffee-vinyl-night",
			"Bring your favorite records, we'll spin them on our vintage setup. Themed drink specials based on what's playing. Last month someone brought a Fleetwood Mac album and we all cried a little.",
			"location-alberta", content.RecurringMonthly,
			time.Date(2026, 2, 8, 18, 0, 0, 0, time.UTC), false),
	}
}
