package schema

// Controlled vocabularies shared between fields.
var (
	tagOptions = []Option{
		{Title: "Vegan", Value: "vegan"},
		{Title: "Gluten-Free", Value: "gluten-free"},
		{Title: "Dairy-Free", Value: "dairy-free"},
		{Title: "Seasonal", Value: "seasonal"},
		{Title: "Staff Pick", Value: "staff-pick"},
		{Title: "New", Value: "new"},
	}

	featureOptions = []Option{
		{Title: "Free WiFi", Value: "wifi"},
		{Title: "Outdoor Seating", Value: "outdoor"},
		{Title: "Drive-Through", Value: "drive-through"},
		{Title: "Meeting Room", Value: "meeting-room"},
		{Title: "Wheelchair Accessible", Value: "accessible"},
		{Title: "Dog Friendly Patio", Value: "dog-friendly"},
	}

	sizeOptions = []Option{
		{Title: "Small (8oz)", Value: "small"},
		{Title: "Medium (12oz)", Value: "medium"},
		{Title: "Large (16oz)", Value: "large"},
	}

	recurrenceOptions = []Option{
		{Title: "One-time", Value: "none"},
		{Title: "Weekly", Value: "weekly"},
		{Title: "Monthly", Value: "monthly"},
	}

	iconOptions = []Option{
		{Title: "Coffee Cup", Value: "coffee"},
		{Title: "Leaf (Tea)", Value: "leaf"},
		{Title: "Croissant", Value: "pastry"},
		{Title: "Sandwich", Value: "food"},
		{Title: "Bottle", Value: "bottle"},
	}
)

var required = &Validation{Required: true}

func slugField(source string) Field {
	return Field{
		Name:    "slug",
		Title:   "Slug",
		Type:    "slug",
		Options: &Options{Source: source, MaxLength: 96},
	}
}

func imageField(name, title string) Field {
	return Field{Name: name, Title: title, Type: "image", Options: &Options{Hotspot: true}}
}

// Types returns every type definition: shared objects first, documents, then
// the page singletons.
func Types() []Type {
	return []Type{
		blockContentType(),
		priceVariantType(),
		hoursBlockType(),
		categoryType(),
		menuItemType(),
		staffMemberType(),
		locationType(),
		eventType(),
		siteSettingsType(),
		homePageType(),
		aboutPageType(),
	}
}

// Singletons lists the document IDs pinned to a single instance in the
// studio.
func Singletons() []string {
	return []string{"siteSettings", "homePage", "aboutPage"}
}

func blockContentType() Type {
	return Type{
		Name:  "blockContent",
		Title: "Block Content",
		Kind:  "array",
		Fields: []Field{
			{
				Name: "block",
				Type: "block",
				Options: &Options{
					List: []Option{
						{Title: "Normal", Value: "normal"},
						{Title: "Heading 2", Value: "h2"},
						{Title: "Heading 3", Value: "h3"},
						{Title: "Quote", Value: "blockquote"},
					},
				},
			},
		},
	}
}

func priceVariantType() Type {
	return Type{
		Name:  "priceVariant",
		Title: "Price Variant",
		Kind:  KindObject,
		Fields: []Field{
			{Name: "size", Title: "Size", Type: "string", Options: &Options{List: sizeOptions}},
			{Name: "price", Title: "Price", Type: "number", Validation: &Validation{Positive: true}},
		},
		Preview: &Preview{Title: "size", Subtitle: "price"},
	}
}

func hoursBlockType() Type {
	return Type{
		Name:  "hoursBlock",
		Title: "Hours Block",
		Kind:  KindObject,
		Fields: []Field{
			{Name: "days", Title: "Days", Type: "string", Description: `e.g., "Monday - Friday" or "Saturday"`},
			{Name: "hours", Title: "Hours", Type: "string", Description: `e.g., "7:00 AM - 6:00 PM" or "Closed"`},
		},
	}
}

func categoryType() Type {
	return Type{
		Name:  "category",
		Title: "Menu Category",
		Kind:  KindDocument,
		Fields: []Field{
			{Name: "name", Title: "Name", Type: "string", Validation: required},
			{
				Name: "slug", Title: "Slug", Type: "slug",
				Options: &Options{Source: "name", MaxLength: 96}, Validation: required,
			},
			{Name: "description", Title: "Description", Type: "text", Rows: 2},
			{Name: "order", Title: "Display Order", Type: "number", Initial: 0},
			{Name: "icon", Title: "Icon", Type: "string", Options: &Options{List: iconOptions}},
		},
		Orderings: []Ordering{
			{Title: "Display Order", Name: "orderAsc", By: []SortBy{{Field: "order", Direction: "asc"}}},
		},
		Preview: &Preview{Title: "name", Subtitle: "description"},
	}
}

func menuItemType() Type {
	return Type{
		Name:  "menuItem",
		Title: "Menu Item",
		Kind:  KindDocument,
		Fields: []Field{
			{Name: "name", Title: "Name", Type: "string", Validation: required},
			slugField("name"),
			{
				Name: "category", Title: "Category", Type: "reference",
				To: []TypeRef{{Type: "category"}}, Validation: required,
			},
			{Name: "description", Title: "Description", Type: "text", Rows: 3},
			{
				Name: "price", Title: "Base Price", Type: "number",
				Validation: &Validation{Required: true, Positive: true},
			},
			{Name: "variants", Title: "Size Variants", Type: "array", Of: []TypeRef{{Type: "priceVariant"}}},
			imageField("image", "Image"),
			{
				Name: "tags", Title: "Tags", Type: "array",
				Of: []TypeRef{{Type: "string"}}, Options: &Options{List: tagOptions},
			},
			{Name: "available", Title: "Currently Available", Type: "boolean", Initial: true},
			{Name: "featured", Title: "Featured Item", Type: "boolean", Initial: false},
		},
		Preview: &Preview{Title: "name", Subtitle: "category.name", Media: "image"},
	}
}

func staffMemberType() Type {
	return Type{
		Name:  "staffMember",
		Title: "Team Member",
		Kind:  KindDocument,
		Fields: []Field{
			{Name: "name", Title: "Name", Type: "string", Validation: required},
			{Name: "role", Title: "Role", Type: "string", Validation: required},
			{Name: "bio", Title: "Bio", Type: "text", Rows: 3, Validation: &Validation{MaxLength: 500}},
			imageField("photo", "Photo"),
			{Name: "favoriteOrder", Title: "Favorite Order", Type: "string"},
			{Name: "funFact", Title: "Fun Fact", Type: "string"},
			{Name: "order", Title: "Display Order", Type: "number", Initial: 0},
		},
		Orderings: []Ordering{
			{Title: "Display Order", Name: "orderAsc", By: []SortBy{{Field: "order", Direction: "asc"}}},
		},
		Preview: &Preview{Title: "name", Subtitle: "role", Media: "photo"},
	}
}

func locationType() Type {
	return Type{
		Name:  "location",
		Title: "Location",
		Kind:  KindDocument,
		Fields: []Field{
			{Name: "name", Title: "Location Name", Type: "string", Validation: required},
			slugField("name"),
			{
				Name: "address", Title: "Address", Type: "object",
				Fields: []Field{
					{Name: "street", Title: "Street", Type: "string"},
					{Name: "city", Title: "City", Type: "string"},
					{Name: "state", Title: "State", Type: "string"},
					{Name: "zip", Title: "ZIP Code", Type: "string"},
				},
			},
			{
				Name: "coordinates", Title: "Coordinates", Type: "object",
				Fields: []Field{
					{Name: "lat", Title: "Latitude", Type: "number"},
					{Name: "lng", Title: "Longitude", Type: "number"},
				},
			},
			{Name: "hours", Title: "Hours", Type: "array", Of: []TypeRef{{Type: "hoursBlock"}}},
			{Name: "phone", Title: "Phone", Type: "string"},
			{Name: "email", Title: "Email", Type: "string"},
			imageField("image", "Location Photo"),
			{Name: "description", Title: "Description", Type: "text", Rows: 3},
			{
				Name: "features", Title: "Features", Type: "array",
				Of: []TypeRef{{Type: "string"}}, Options: &Options{List: featureOptions},
			},
			{Name: "isPrimary", Title: "Primary Location", Type: "boolean", Initial: false},
		},
		Preview: &Preview{Title: "name", Subtitle: "address.street", Media: "image"},
	}
}

func eventType() Type {
	return Type{
		Name:  "event",
		Title: "Event",
		Kind:  KindDocument,
		Fields: []Field{
			{Name: "title", Title: "Event Title", Type: "string", Validation: required},
			slugField("title"),
			{Name: "description", Title: "Full Description", Type: "blockContent"},
			{Name: "shortDescription", Title: "Short Description", Type: "text", Rows: 2},
			{Name: "date", Title: "Event Date", Type: "datetime", Validation: required},
			{Name: "endDate", Title: "End Date (for multi-day events)", Type: "datetime"},
			{
				Name: "recurring", Title: "Recurring Event", Type: "string",
				Options: &Options{List: recurrenceOptions}, Initial: "none",
			},
			{Name: "location", Title: "Location", Type: "reference", To: []TypeRef{{Type: "location"}}},
			imageField("image", "Event Image"),
			{Name: "featured", Title: "Featured Event", Type: "boolean", Initial: false},
		},
		Preview: &Preview{Title: "title", Subtitle: "date", Media: "image"},
	}
}

func siteSettingsType() Type {
	return Type{
		Name:  "siteSettings",
		Title: "Site Settings",
		Kind:  KindDocument,
		Fields: []Field{
			{Name: "shopName", Title: "Coffee Shop Name", Type: "string", Validation: required},
			{Name: "tagline", Title: "Tagline", Type: "string"},
			{Name: "logo", Title: "Logo", Type: "image"},
			{
				Name: "socialLinks", Title: "Social Media Links", Type: "object",
				Fields: []Field{
					{Name: "instagram", Title: "Instagram URL", Type: "url"},
					{Name: "facebook", Title: "Facebook URL", Type: "url"},
					{Name: "twitter", Title: "Twitter/X URL", Type: "url"},
				},
			},
			{Name: "footerText", Title: "Footer Text", Type: "text", Rows: 2},
			{
				Name: "seo", Title: "Default SEO", Type: "object",
				Fields: []Field{
					{Name: "metaTitle", Title: "Meta Title", Type: "string"},
					{Name: "metaDescription", Title: "Meta Description", Type: "text", Rows: 3},
					{Name: "ogImage", Title: "Social Share Image", Type: "image"},
				},
			},
		},
	}
}

func homePageType() Type {
	return Type{
		Name:  "homePage",
		Title: "Home Page",
		Kind:  KindDocument,
		Fields: []Field{
			{
				Name: "hero", Title: "Hero Section", Type: "object",
				Fields: []Field{
					{Name: "headline", Title: "Headline", Type: "string"},
					{Name: "subheadline", Title: "Subheadline", Type: "text", Rows: 2},
					imageField("backgroundImage", "Background Image"),
					{Name: "ctaText", Title: "CTA Button Text", Type: "string"},
					{Name: "ctaLink", Title: "CTA Button Link", Type: "string"},
				},
			},
			{
				Name: "featuredSection", Title: "Featured Section", Type: "object",
				Fields: []Field{
					{Name: "title", Title: "Section Title", Type: "string"},
					{Name: "subtitle", Title: "Subtitle", Type: "text"},
				},
			},
			{
				Name: "storyPreview", Title: "Story Preview Section", Type: "object",
				Fields: []Field{
					{Name: "heading", Title: "Heading", Type: "string"},
					{Name: "excerpt", Title: "Excerpt", Type: "text", Rows: 4},
					imageField("image", "Image"),
				},
			},
			{
				Name: "announcement", Title: "Announcement Banner", Type: "object",
				Fields: []Field{
					{Name: "enabled", Title: "Show Banner", Type: "boolean"},
					{Name: "text", Title: "Banner Text", Type: "string"},
					{Name: "link", Title: "Link", Type: "string"},
				},
			},
		},
	}
}

func aboutPageType() Type {
	return Type{
		Name:  "aboutPage",
		Title: "About Page",
		Kind:  KindDocument,
		Fields: []Field{
			{Name: "headline", Title: "Headline", Type: "string"},
			{Name: "story", Title: "Our Story", Type: "blockContent"},
			imageField("heroImage", "Hero Image"),
			{
				Name: "values", Title: "Our Values", Type: "array",
				Of: []TypeRef{{Type: "object"}},
				Fields: []Field{
					{Name: "title", Title: "Title", Type: "string"},
					{Name: "description", Title: "Description", Type: "text"},
				},
			},
			{
				Name: "timeline", Title: "Timeline / Milestones", Type: "array",
				Of: []TypeRef{{Type: "object"}},
				Fields: []Field{
					{Name: "year", Title: "Year", Type: "string"},
					{Name: "title", Title: "Title", Type: "string"},
					{Name: "description", Title: "Description", Type: "text"},
				},
			},
		},
	}
}
