package referrers_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"clarityboard/internal/pkg/referrers"
)

func TestFriendlyName(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"bare hostname", "google.com", "Google"},
		{"country TLD", "google.de", "Google"},
		{"full URL", "https://www.google.com/search?q=dashboards", "Google"},
		{"www prefix", "www.bing.com", "Bing"},
		{"hostname with path", "news.ycombinator.com/item", "Hacker News"},
		{"shortener", "t.co", "X/Twitter"},
		{"subdomain of known site", "m.facebook.com", "Facebook"},
		{"unknown hostname passes through", "smallblog.example", "smallblog.example"},
		{"friendly label passes through", "Direct", "Direct"},
		{"empty passes through", "", ""},
		{"plain word passes through", "newsletter", "newsletter"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, referrers.FriendlyName(tt.input))
		})
	}
}
