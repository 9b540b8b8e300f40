package schema

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTypes_CoverEveryDocumentType(t *testing.T) {
	names := map[string]bool{}
	for _, typ := range Types() {
		require.NotEmpty(t, typ.Name)
		require.False(t, names[typ.Name], "duplicate type %s", typ.Name)
		names[typ.Name] = true
	}

	for _, want := range []string{
		"category", "menuItem", "staffMember", "location", "event",
		"siteSettings", "homePage", "aboutPage",
		"priceVariant", "hoursBlock", "blockContent",
	} {
		assert.True(t, names[want], "missing type %s", want)
	}
}

func TestMenuItem_Validations(t *testing.T) {
	item, ok := Lookup("menuItem")
	require.True(t, ok)

	fields := map[string]Field{}
	for _, f := range item.Fields {
		fields[f.Name] = f
	}

	require.NotNil(t, fields["name"].Validation)
	assert.True(t, fields["name"].Validation.Required)
	require.NotNil(t, fields["price"].Validation)
	assert.True(t, fields["price"].Validation.Required)
	assert.True(t, fields["price"].Validation.Positive)
	assert.True(t, fields["category"].Validation.Required)
	assert.Equal(t, []TypeRef{{Type: "category"}}, fields["category"].To)
	assert.Equal(t, true, fields["available"].Initial)
}

func TestControlledVocabularies(t *testing.T) {
	item, _ := Lookup("menuItem")
	for _, f := range item.Fields {
		if f.Name == "tags" {
			require.NotNil(t, f.Options)
			assert.Len(t, f.Options.List, 6)
		}
	}

	loc, _ := Lookup("location")
	for _, f := range loc.Fields {
		if f.Name == "features" {
			require.NotNil(t, f.Options)
			values := make([]string, 0, len(f.Options.List))
			for _, o := range f.Options.List {
				values = append(values, o.Value)
			}
			assert.Contains(t, values, "wifi")
			assert.Contains(t, values, "dog-friendly")
		}
	}

	ev, _ := Lookup("event")
	for _, f := range ev.Fields {
		if f.Name == "recurring" {
			assert.Equal(t, "none", f.Initial)
			assert.Len(t, f.Options.List, 3)
		}
	}
}

func TestSingletons_PinnedInStructure(t *testing.T) {
	structure := DeskStructure()
	pinned := map[string]bool{}
	for _, item := range structure.Items {
		if item.DocumentID != "" {
			pinned[item.DocumentID] = true
		}
	}
	for _, name := range Singletons() {
		assert.True(t, pinned[name], "singleton %s not pinned", name)
	}
}

func TestWrite_ProducesValidJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf))

	var export Export
	require.NoError(t, json.Unmarshal(buf.Bytes(), &export))
	assert.Len(t, export.Types, 11)
	assert.Equal(t, "Content", export.Structure.Title)
}

func TestLookup_Unknown(t *testing.T) {
	_, ok := Lookup("podcast")
	assert.False(t, ok)
}
