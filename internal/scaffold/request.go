package scaffold

import (
	"strings"

	"github.com/opmodel/cptgen/internal/version"
)

// Defaults are the configured fallbacks applied before the placeholder
// defaults.
type Defaults struct {
	PluginAuthor    string
	PluginAuthorURI string
	TestedUpTo      string
}

// NewRequest derives every template value from the slug, the caller's
// options and the configured defaults. Options win over defaults.
func NewRequest(slug string, opts Options, defaults Defaults, plural Pluralizer) *Request {
	label := opts.Label
	if label == "" {
		label = DefaultLabel(slug)
	}

	dashicon := opts.Dashicon
	if dashicon == "" {
		dashicon = DefaultDashicon
	}

	pluginName := firstNonEmpty(opts.PluginName, DefaultPluginName(slug))
	labelPlural := plural.Plural(label)

	return &Request{
		Slug:               slug,
		Label:              label,
		LabelUcfirst:       Ucfirst(label),
		LabelPlural:        labelPlural,
		LabelPluralUcfirst: Ucfirst(labelPlural),
		MachineName:        MachineName(slug),
		TextDomain:         slug,
		PluginName:         pluginName,
		PluginPackage:      strings.ReplaceAll(pluginName, " ", "_"),
		PluginDescription:  firstNonEmpty(opts.PluginDescription, DefaultPluginDescription),
		PluginAuthor:       firstNonEmpty(opts.PluginAuthor, defaults.PluginAuthor, DefaultPluginAuthor),
		PluginAuthorURI:    firstNonEmpty(opts.PluginAuthorURI, defaults.PluginAuthorURI, DefaultPluginAuthorURI),
		PluginURI:          firstNonEmpty(opts.PluginURI, DefaultPluginURI),
		PluginTestedUpTo:   defaults.TestedUpTo,
		Dashicon:           ExtractDashicon(dashicon),
		Version:            version.PluginVersion,
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
