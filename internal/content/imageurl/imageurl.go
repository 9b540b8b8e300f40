// Package imageurl builds CDN URLs for image assets. Construction is purely
// deterministic string work; all resizing and cropping happens at the remote
// image endpoint.
package imageurl

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/emberandoak/website/internal/content"
)

const cdnBase = "https://cdn.sanity.io/images"

// Builder produces image URLs for one project/dataset pair.
type Builder struct {
	projectID string
	dataset   string
}

// New returns a Builder for the given project and dataset.
func New(projectID, dataset string) Builder {
	return Builder{projectID: projectID, dataset: dataset}
}

// Image starts a URL for the given image field. A nil image or unparseable
// asset reference yields an empty URL.
func (b Builder) Image(img *content.Image) URL {
	return URL{builder: b, image: img}
}

// URL is an in-progress image URL. Methods return copies so a partially
// configured URL can be reused.
type URL struct {
	builder Builder
	image   *content.Image

	width   int
	height  int
	quality int
	blur    int
	auto    bool
}

func (u URL) Width(w int) URL     { u.width = w; return u }
func (u URL) Height(h int) URL    { u.height = h; return u }
func (u URL) Quality(q int) URL   { u.quality = q; return u }
func (u URL) Blur(amount int) URL { u.blur = amount; return u }
func (u URL) AutoFormat() URL     { u.auto = true; return u }

// String renders the final URL, or "" when the image is absent or malformed.
func (u URL) String() string {
	if u.image == nil {
		return ""
	}
	id, dims, ext, ok := parseAssetRef(u.image.Asset.Ref)
	if !ok {
		return ""
	}

	base := fmt.Sprintf("%s/%s/%s/%s-%s.%s", cdnBase, u.builder.projectID, u.builder.dataset, id, dims, ext)

	params := url.Values{}
	if u.width > 0 {
		params.Set("w", strconv.Itoa(u.width))
	}
	if u.height > 0 {
		params.Set("h", strconv.Itoa(u.height))
	}
	if u.width > 0 && u.height > 0 {
		params.Set("fit", "crop")
		if hs := u.image.Hotspot; hs != nil {
			params.Set("fp-x", trimFloat(hs.X))
			params.Set("fp-y", trimFloat(hs.Y))
		}
	}
	if u.quality > 0 {
		params.Set("q", strconv.Itoa(u.quality))
	}
	if u.blur > 0 {
		params.Set("blur", strconv.Itoa(u.blur))
	}
	if u.auto {
		params.Set("auto", "format")
	}

	if len(params) == 0 {
		return base
	}
	return base + "?" + params.Encode()
}

// Placeholder renders the low-resolution blurred variant used for progressive
// loading while the full image streams in.
func (u URL) Placeholder() string {
	return u.Width(20).Height(15).Blur(50).String()
}

// parseAssetRef splits an asset reference of the form
// "image-<id>-<width>x<height>-<format>" into its parts.
func parseAssetRef(ref string) (id, dims, ext string, ok bool) {
	parts := strings.Split(ref, "-")
	if len(parts) != 4 || parts[0] != "image" {
		return "", "", "", false
	}
	if !strings.ContainsRune(parts[2], 'x') {
		return "", "", "", false
	}
	return parts[1], parts[2], parts[3], true
}

func trimFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
