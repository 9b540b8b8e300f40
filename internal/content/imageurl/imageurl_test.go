package imageurl

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emberandoak/website/internal/content"
)

func img(ref string) *content.Image {
	return &content.Image{Asset: content.Reference{Ref: ref, Type: "reference"}}
}

func TestString_BareAssetRef(t *testing.T) {
	b := New("vef3nzbe", "production")

	got := b.Image(img("image-abc123-600x400-jpg")).String()
	assert.Equal(t, "https://cdn.sanity.io/images/vef3nzbe/production/abc123-600x400.jpg", got)
}

func TestString_WidthOnly(t *testing.T) {
	b := New("vef3nzbe", "production")

	got := b.Image(img("image-abc123-2000x3000-webp")).Width(600).String()
	assert.Equal(t, "https://cdn.sanity.io/images/vef3nzbe/production/abc123-2000x3000.webp?w=600", got)
}

func TestString_CropWithHotspot(t *testing.T) {
	b := New("vef3nzbe", "production")
	image := img("image-abc123-2000x3000-jpg")
	image.Hotspot = &content.Hotspot{X: 0.25, Y: 0.75, Width: 0.5, Height: 0.5}

	raw := b.Image(image).Width(800).Height(600).Quality(80).AutoFormat().String()
	parsed, err := url.Parse(raw)
	require.NoError(t, err)

	q := parsed.Query()
	assert.Equal(t, "800", q.Get("w"))
	assert.Equal(t, "600", q.Get("h"))
	assert.Equal(t, "crop", q.Get("fit"))
	assert.Equal(t, "0.25", q.Get("fp-x"))
	assert.Equal(t, "0.75", q.Get("fp-y"))
	assert.Equal(t, "80", q.Get("q"))
	assert.Equal(t, "format", q.Get("auto"))
}

func TestString_NoHotspotNoFocalPoint(t *testing.T) {
	b := New("vef3nzbe", "production")

	raw := b.Image(img("image-abc123-2000x3000-jpg")).Width(800).Height(600).String()
	parsed, err := url.Parse(raw)
	require.NoError(t, err)

	q := parsed.Query()
	assert.Equal(t, "crop", q.Get("fit"))
	assert.Empty(t, q.Get("fp-x"))
}

func TestPlaceholder_LowResBlur(t *testing.T) {
	b := New("vef3nzbe", "production")

	raw := b.Image(img("image-abc123-600x400-png")).Placeholder()
	parsed, err := url.Parse(raw)
	require.NoError(t, err)

	q := parsed.Query()
	assert.Equal(t, "20", q.Get("w"))
	assert.Equal(t, "15", q.Get("h"))
	assert.Equal(t, "50", q.Get("blur"))
}

func TestString_MalformedRef(t *testing.T) {
	b := New("vef3nzbe", "production")

	assert.Empty(t, b.Image(img("file-abc123-pdf")).String())
	assert.Empty(t, b.Image(img("image-abc123-jpg")).String())
	assert.Empty(t, b.Image(nil).String())
}
