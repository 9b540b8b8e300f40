// Package sqlitestore is a local document store with the same read surface as
// the remote content client. It backs offline serving and local seeding:
// documents are stored as JSON rows and the fixed query set is evaluated in Go,
// including the read-side joins the remote store performs via reference
// expansion.
package sqlitestore

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	_ "modernc.org/sqlite"

	"github.com/emberandoak/website/internal/content"
)

// Store holds documents in a single SQLite table keyed by document ID.
type Store struct {
	db  *sql.DB
	mu  sync.RWMutex
	now func() time.Time
}

// NewStore opens (and if needed initializes) the database at path.
// Use ":memory:" for tests.
func NewStore(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	s := &Store{db: db, now: time.Now}
	if err := s.initialize(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("initialize schema: %w", err)
	}
	return s, nil
}

func (s *Store) initialize() error {
	schema := `
	CREATE TABLE IF NOT EXISTS documents (
		id   TEXT PRIMARY KEY,
		type TEXT NOT NULL,
		body BLOB NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_documents_type ON documents(type);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// CreateOrReplace stores a document, replacing any previous version. The
// document's JSON form must carry _id and _type.
func (s *Store) CreateOrReplace(ctx context.Context, doc any) error {
	body, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode document: %w", err)
	}

	var meta struct {
		ID   string `json:"_id"`
		Type string `json:"_type"`
	}
	if err := json.Unmarshal(body, &meta); err != nil {
		return fmt.Errorf("decode document metadata: %w", err)
	}
	if meta.ID == "" || meta.Type == "" {
		return errors.New("document must carry _id and _type")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	_, err = s.db.ExecContext(ctx,
		"INSERT OR REPLACE INTO documents (id, type, body) VALUES (?, ?, ?)",
		meta.ID, meta.Type, body,
	)
	if err != nil {
		return fmt.Errorf("store document %s: %w", meta.ID, err)
	}
	return nil
}

// loadByType decodes every document of the given type into out, which must be a
// pointer to a slice.
func loadByType[T any](ctx context.Context, s *Store, typ string) ([]T, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx, "SELECT body FROM documents WHERE type = ?", typ)
	if err != nil {
		return nil, fmt.Errorf("load %s documents: %w", typ, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var docs []T
	for rows.Next() {
		var body []byte
		if err := rows.Scan(&body); err != nil {
			return nil, fmt.Errorf("scan %s document: %w", typ, err)
		}
		var doc T
		if err := json.Unmarshal(body, &doc); err != nil {
			return nil, fmt.Errorf("decode %s document: %w", typ, err)
		}
		docs = append(docs, doc)
	}
	return docs, rows.Err()
}

func loadSingleton[T any](ctx context.Context, s *Store, typ string) (*T, error) {
	docs, err := loadByType[T](ctx, s, typ)
	if err != nil {
		return nil, err
	}
	if len(docs) == 0 {
		return nil, nil
	}
	return &docs[0], nil
}

func (s *Store) SiteSettings(ctx context.Context) (*content.SiteSettings, error) {
	return loadSingleton[content.SiteSettings](ctx, s, content.TypeSiteSettings)
}

func (s *Store) HomePage(ctx context.Context) (*content.HomePage, error) {
	return loadSingleton[content.HomePage](ctx, s, content.TypeHomePage)
}

func (s *Store) AboutPage(ctx context.Context) (*content.AboutPage, error) {
	return loadSingleton[content.AboutPage](ctx, s, content.TypeAboutPage)
}

func (s *Store) Categories(ctx context.Context) ([]content.Category, error) {
	cats, err := loadByType[content.Category](ctx, s, content.TypeCategory)
	if err != nil {
		return nil, err
	}
	// The remote query sorts by order alone and leaves ties unspecified;
	// tie-break on name here so offline rendering is deterministic.
	sort.SliceStable(cats, func(i, j int) bool {
		if cats[i].Order != cats[j].Order {
			return cats[i].Order < cats[j].Order
		}
		return lessName(cats[i].Name, cats[j].Name)
	})
	return cats, nil
}

func (s *Store) MenuItems(ctx context.Context) ([]content.MenuItem, error) {
	items, err := loadByType[content.MenuItem](ctx, s, content.TypeMenuItem)
	if err != nil {
		return nil, err
	}
	cats, err := s.Categories(ctx)
	if err != nil {
		return nil, err
	}

	byID := make(map[string]content.Category, len(cats))
	for _, c := range cats {
		byID[c.ID] = c
	}

	available := items[:0]
	for i := range items {
		if !items[i].Available {
			continue
		}
		expandCategory(&items[i], byID)
		available = append(available, items[i])
	}

	order := func(item content.MenuItem) int {
		if item.Category == nil {
			return 0
		}
		return byID[item.Category.ID].Order
	}
	sort.SliceStable(available, func(i, j int) bool {
		if oi, oj := order(available[i]), order(available[j]); oi != oj {
			return oi < oj
		}
		return lessName(available[i].Name, available[j].Name)
	})
	return available, nil
}

func (s *Store) FeaturedItems(ctx context.Context) ([]content.MenuItem, error) {
	items, err := s.MenuItems(ctx)
	if err != nil {
		return nil, err
	}

	var featured []content.MenuItem
	for _, item := range items {
		if item.Featured {
			featured = append(featured, item)
		}
	}
	sort.SliceStable(featured, func(i, j int) bool {
		return lessName(featured[i].Name, featured[j].Name)
	})
	if len(featured) > content.FeaturedItemsLimit {
		featured = featured[:content.FeaturedItemsLimit]
	}
	return featured, nil
}

func (s *Store) Staff(ctx context.Context) ([]content.StaffMember, error) {
	staff, err := loadByType[content.StaffMember](ctx, s, content.TypeStaffMember)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(staff, func(i, j int) bool {
		return staff[i].Order < staff[j].Order
	})
	return staff, nil
}

func (s *Store) Locations(ctx context.Context) ([]content.Location, error) {
	locs, err := loadByType[content.Location](ctx, s, content.TypeLocation)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(locs, func(i, j int) bool {
		if locs[i].IsPrimary != locs[j].IsPrimary {
			return locs[i].IsPrimary
		}
		return lessName(locs[i].Name, locs[j].Name)
	})
	return locs, nil
}

func (s *Store) PrimaryLocation(ctx context.Context) (*content.Location, error) {
	locs, err := s.Locations(ctx)
	if err != nil {
		return nil, err
	}
	for i := range locs {
		if locs[i].IsPrimary {
			return &locs[i], nil
		}
	}
	return nil, nil
}

func (s *Store) Events(ctx context.Context) ([]content.Event, error) {
	events, err := loadByType[content.Event](ctx, s, content.TypeEvent)
	if err != nil {
		return nil, err
	}
	locs, err := loadByType[content.Location](ctx, s, content.TypeLocation)
	if err != nil {
		return nil, err
	}

	names := make(map[string]string, len(locs))
	for _, l := range locs {
		names[l.ID] = l.Name
	}

	now := s.now()
	upcoming := events[:0]
	for i := range events {
		// "exactly now" is inclusive.
		if events[i].Date.Before(now) {
			continue
		}
		expandLocation(&events[i], names)
		upcoming = append(upcoming, events[i])
	}
	sort.SliceStable(upcoming, func(i, j int) bool {
		return upcoming[i].Date.Before(upcoming[j].Date)
	})
	return upcoming, nil
}

func (s *Store) UpcomingEvents(ctx context.Context) ([]content.Event, error) {
	events, err := s.Events(ctx)
	if err != nil {
		return nil, err
	}
	if len(events) > content.UpcomingEventsLimit {
		events = events[:content.UpcomingEventsLimit]
	}
	return events, nil
}

// expandCategory replaces a stored category reference with its joined summary.
func expandCategory(item *content.MenuItem, byID map[string]content.Category) {
	if item.Category == nil || item.Category.Ref == "" {
		return
	}
	if cat, ok := byID[item.Category.Ref]; ok {
		item.Category = &content.CategorySummary{ID: cat.ID, Name: cat.Name, Slug: cat.Slug}
	}
}

// expandLocation replaces a stored location reference with its joined summary.
func expandLocation(event *content.Event, names map[string]string) {
	if event.Location == nil || event.Location.Ref == "" {
		return
	}
	if name, ok := names[event.Location.Ref]; ok {
		event.Location = &content.LocationSummary{Name: name}
	}
}

func lessName(a, b string) bool {
	return strings.ToLower(a) < strings.ToLower(b)
}

var _ content.Store = (*Store)(nil)
var _ content.Mutator = (*Store)(nil)
