package scaffold

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	oerrors "github.com/opmodel/cptgen/internal/errors"
	"github.com/opmodel/cptgen/internal/version"
)

// suffixPluralizer appends "s", which keeps expectations obvious.
type suffixPluralizer struct{}

func (suffixPluralizer) Plural(word string) string { return word + "s" }

func TestNewRequest_Defaults(t *testing.T) {
	req := NewRequest("sample-cpt", Options{}, Defaults{TestedUpTo: "6.5"}, suffixPluralizer{})

	assert.Equal(t, "sample-cpt", req.Slug)
	assert.Equal(t, "sample cpt", req.Label)
	assert.Equal(t, "Sample cpt", req.LabelUcfirst)
	assert.Equal(t, "sample cpts", req.LabelPlural)
	assert.Equal(t, "Sample cpts", req.LabelPluralUcfirst)
	assert.Equal(t, "sample_cpt", req.MachineName)
	assert.Equal(t, "sample-cpt", req.TextDomain)
	assert.Equal(t, "Sample Cpt CPT WP CLI", req.PluginName)
	assert.Equal(t, "Sample_Cpt_CPT_WP_CLI", req.PluginPackage)
	assert.Equal(t, DefaultPluginDescription, req.PluginDescription)
	assert.Equal(t, DefaultPluginAuthor, req.PluginAuthor)
	assert.Equal(t, DefaultPluginAuthorURI, req.PluginAuthorURI)
	assert.Equal(t, DefaultPluginURI, req.PluginURI)
	assert.Equal(t, "6.5", req.PluginTestedUpTo)
	assert.Equal(t, "admin-post", req.Dashicon)
	assert.Equal(t, version.PluginVersion, req.Version)
}

func TestNewRequest_Overrides(t *testing.T) {
	opts := Options{
		Label:             "novel",
		Dashicon:          "dashicons-book",
		PluginName:        "My Books",
		PluginDescription: "Books!",
		PluginAuthor:      "Jane",
		PluginAuthorURI:   "https://jane.example",
		PluginURI:         "https://books.example",
	}
	defaults := Defaults{PluginAuthor: "Config Author", PluginAuthorURI: "https://config.example"}

	req := NewRequest("book", opts, defaults, suffixPluralizer{})

	assert.Equal(t, "novel", req.Label)
	assert.Equal(t, "Novels", req.LabelPluralUcfirst)
	assert.Equal(t, "book", req.MachineName)
	assert.Equal(t, "book", req.Dashicon)
	assert.Equal(t, "My Books", req.PluginName)
	assert.Equal(t, "My_Books", req.PluginPackage)
	assert.Equal(t, "Books!", req.PluginDescription)
	assert.Equal(t, "Jane", req.PluginAuthor)
	assert.Equal(t, "https://jane.example", req.PluginAuthorURI)
	assert.Equal(t, "https://books.example", req.PluginURI)
}

func TestNewRequest_ConfiguredAuthor(t *testing.T) {
	defaults := Defaults{PluginAuthor: "Config Author", PluginAuthorURI: "https://config.example"}

	req := NewRequest("book", Options{}, defaults, suffixPluralizer{})

	assert.Equal(t, "Config Author", req.PluginAuthor)
	assert.Equal(t, "https://config.example", req.PluginAuthorURI)
}

func TestValidateSlug(t *testing.T) {
	tests := []struct {
		slug    string
		wantErr bool
		msg     string
	}{
		{slug: "book"},
		{slug: "sample-cpt"},
		{slug: "abcdefghijklmnopqrst"},
		{slug: "abcdefghijklmnopqrstu", wantErr: true, msg: "Post type slugs cannot exceed 20 characters in length."},
		{slug: ".", wantErr: true, msg: "The slug cannot be '.' or '..'."},
		{slug: "..", wantErr: true, msg: "The slug cannot be '.' or '..'."},
		{slug: "", wantErr: true, msg: "cannot be empty"},
	}

	for _, tt := range tests {
		t.Run(tt.slug, func(t *testing.T) {
			err := ValidateSlug(tt.slug)
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, oerrors.ErrValidation)
			assert.Contains(t, err.Error(), tt.msg)
		})
	}
}

func TestExtractDashicon(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{in: "", want: ""},
		{in: "book", want: "book"},
		{in: "dashicons-book", want: "book"},
		{in: "dashicon-book", want: "book"},
		{in: "admin-post", want: "admin-post"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ExtractDashicon(tt.in), tt.in)
	}
}

func TestCaseHelpers(t *testing.T) {
	assert.Equal(t, "Sample cpt", Ucfirst("sample cpt"))
	assert.Equal(t, "", Ucfirst(""))
	assert.Equal(t, "Élan", Ucfirst("élan"))
	assert.Equal(t, "Sample Cpt", Ucwords("sample cpt"))
	assert.Equal(t, "A  B\tC", Ucwords("a  b\tc"))
	assert.Equal(t, "sample cpt", DefaultLabel("Sample_CPT"))
	assert.Equal(t, "a_b_c", MachineName("a-b_c"))
	assert.Equal(t, "Sample Cpt CPT WP CLI", DefaultPluginName("sample-cpt"))
}

func TestEnglishPluralizer(t *testing.T) {
	p := NewPluralizer()
	assert.Equal(t, "books", p.Plural("book"))
	assert.Equal(t, "categories", p.Plural("category"))
	assert.Equal(t, "sample cpts", p.Plural("sample cpt"))
}
