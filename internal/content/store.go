package content

import "context"

// Store is the read surface the page handlers consume. Every method resolves:
// callers must treat an empty slice or nil singleton as a valid state, and are
// expected to fold errors into the same empty state after logging.
type Store interface {
	SiteSettings(ctx context.Context) (*SiteSettings, error)
	HomePage(ctx context.Context) (*HomePage, error)
	AboutPage(ctx context.Context) (*AboutPage, error)
	Categories(ctx context.Context) ([]Category, error)
	MenuItems(ctx context.Context) ([]MenuItem, error)
	FeaturedItems(ctx context.Context) ([]MenuItem, error)
	Staff(ctx context.Context) ([]StaffMember, error)
	Locations(ctx context.Context) ([]Location, error)
	PrimaryLocation(ctx context.Context) (*Location, error)
	Events(ctx context.Context) ([]Event, error)
	UpcomingEvents(ctx context.Context) ([]Event, error)
}

// Mutator is the write surface used only by the seed command. The serving path
// never mutates.
type Mutator interface {
	CreateOrReplace(ctx context.Context, doc any) error
}
