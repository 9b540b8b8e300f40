package seed

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emberandoak/website/internal/content"
	"github.com/emberandoak/website/internal/content/sqlitestore"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestDocuments_CompleteDataset(t *testing.T) {
	docs := Documents()
	// 3 singletons, 4 categories, 19 menu items, 4 staff, 2 locations, 6 events.
	assert.Len(t, docs, 38)
}

func TestRun_SeedsReadableStore(t *testing.T) {
	store, err := sqlitestore.NewStore(":memory:")
	require.NoError(t, err)
	defer store.Close()

	ctx := context.Background()
	require.NoError(t, Run(ctx, store, testLogger()))

	settings, err := store.SiteSettings(ctx)
	require.NoError(t, err)
	require.NotNil(t, settings)
	assert.Equal(t, "Ember & Oak Coffee", settings.ShopName)

	categories, err := store.Categories(ctx)
	require.NoError(t, err)
	require.Len(t, categories, 4)
	assert.Equal(t, "Espresso", categories[0].Name)
	assert.Equal(t, "Pastries & Food", categories[3].Name)

	items, err := store.MenuItems(ctx)
	require.NoError(t, err)
	assert.Len(t, items, 19)
	// Category references resolve on read.
	for _, item := range items {
		require.NotNil(t, item.Category, item.Name)
		assert.NotEmpty(t, item.Category.Name, item.Name)
	}

	featured, err := store.FeaturedItems(ctx)
	require.NoError(t, err)
	assert.Len(t, featured, 5)

	locations, err := store.Locations(ctx)
	require.NoError(t, err)
	require.Len(t, locations, 2)
	assert.Equal(t, "Division Street", locations[0].Name)
	assert.True(t, locations[0].IsPrimary)

	primary, err := store.PrimaryLocation(ctx)
	require.NoError(t, err)
	require.NotNil(t, primary)
	assert.Equal(t, "Division Street", primary.Name)

	staff, err := store.Staff(ctx)
	require.NoError(t, err)
	require.Len(t, staff, 4)
	assert.Equal(t, "Maya Chen", staff[0].Name)

	about, err := store.AboutPage(ctx)
	require.NoError(t, err)
	require.NotNil(t, about)
	assert.Len(t, about.Story, 5)
	assert.Len(t, about.Values, 4)
	assert.Len(t, about.Timeline, 5)
}

func TestRun_RerunsReplace(t *testing.T) {
	store, err := sqlitestore.NewStore(":memory:")
	require.NoError(t, err)
	defer store.Close()

	ctx := context.Background()
	require.NoError(t, Run(ctx, store, testLogger()))
	require.NoError(t, Run(ctx, store, testLogger()))

	categories, err := store.Categories(ctx)
	require.NoError(t, err)
	assert.Len(t, categories, 4)
}

// failingMutator rejects every write.
type failingMutator struct{}

func (failingMutator) CreateOrReplace(context.Context, any) error {
	return errors.New("dataset is read-only")
}

func TestRun_SurfacesWriteErrors(t *testing.T) {
	err := Run(context.Background(), failingMutator{}, testLogger())
	require.Error(t, err)
	assert.ErrorContains(t, err, "seeding")
}

var _ content.Mutator = failingMutator{}
