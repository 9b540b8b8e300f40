package schema

// Structure is the studio desk layout: singletons pinned at the top, then
// grouped document lists.
type Structure struct {
	Title string `json:"title"`
	Items []Item `json:"items"`
}

// Item is one desk entry. A singleton pins a fixed document ID; a list shows
// every document of a type; a group nests further items.
type Item struct {
	Title      string `json:"title"`
	ID         string `json:"id,omitempty"`
	SchemaType string `json:"schemaType,omitempty"`
	DocumentID string `json:"documentId,omitempty"`
	Divider    bool   `json:"divider,omitempty"`
	Items      []Item `json:"items,omitempty"`
}

func singleton(title, name string) Item {
	return Item{Title: title, ID: name, SchemaType: name, DocumentID: name}
}

func typeList(title, schemaType string) Item {
	return Item{Title: title, SchemaType: schemaType}
}

// DeskStructure returns the editorial navigation tree.
func DeskStructure() Structure {
	return Structure{
		Title: "Content",
		Items: []Item{
			singleton("Site Settings", "siteSettings"),
			singleton("Home Page", "homePage"),
			singleton("About Page", "aboutPage"),
			{Divider: true},
			{
				Title: "Menu",
				Items: []Item{
					typeList("Categories", "category"),
					typeList("Menu Items", "menuItem"),
				},
			},
			typeList("Team", "staffMember"),
			typeList("Locations", "location"),
			typeList("Events", "event"),
		},
	}
}
