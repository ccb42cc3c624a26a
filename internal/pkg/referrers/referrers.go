package referrers

import (
	"net/url"
	"strings"
)

// Common referrer hostnames mapped to friendly display names.
var knownReferrers = map[string]string{
	// Search engines
	"google.com":     "Google",
	"google.co.uk":   "Google",
	"google.de":      "Google",
	"google.fr":      "Google",
	"google.co.in":   "Google",
	"bing.com":       "Bing",
	"duckduckgo.com": "DuckDuckGo",
	"yahoo.com":      "Yahoo",
	"baidu.com":      "Baidu",
	"yandex.ru":      "Yandex",
	"ecosia.org":     "Ecosia",

	// Social media
	"x.com":                "X/Twitter",
	"twitter.com":          "X/Twitter",
	"t.co":                 "X/Twitter",
	"facebook.com":         "Facebook",
	"l.facebook.com":       "Facebook",
	"instagram.com":        "Instagram",
	"linkedin.com":         "LinkedIn",
	"lnkd.in":              "LinkedIn",
	"reddit.com":           "Reddit",
	"old.reddit.com":       "Reddit",
	"youtube.com":          "YouTube",
	"youtu.be":             "YouTube",
	"t.me":                 "Telegram",
	"whatsapp.com":         "WhatsApp",
	"news.ycombinator.com": "Hacker News",

	// Tech communities
	"github.com":        "GitHub",
	"gitlab.com":        "GitLab",
	"stackoverflow.com": "Stack Overflow",
	"medium.com":        "Medium",
	"dev.to":            "DEV Community",
	"producthunt.com":   "Product Hunt",

	// Email providers
	"mail.google.com":  "Gmail",
	"outlook.live.com": "Outlook",
}

// FriendlyName returns a human-friendly display name for a referrer
// value from the session export. The value may be a bare hostname, a
// full URL, or an already-friendly label; unknown values pass through
// with a "www." prefix stripped.
func FriendlyName(referrer string) string {
	hostname := hostnameOf(referrer)
	if hostname == "" {
		return referrer
	}

	if name, ok := knownReferrers[hostname]; ok {
		return name
	}

	without := strings.TrimPrefix(hostname, "www.")
	if name, ok := knownReferrers[without]; ok {
		return name
	}

	// Subdomains of known referrers get the parent's name.
	for domain, name := range knownReferrers {
		if strings.HasSuffix(without, "."+domain) {
			return name
		}
	}

	return referrer
}

// hostnameOf extracts the lowercase hostname from a referrer value.
// Values that are neither URLs nor dotted hostnames yield "".
func hostnameOf(referrer string) string {
	value := strings.TrimSpace(strings.ToLower(referrer))
	if value == "" {
		return ""
	}

	if strings.Contains(value, "://") {
		if u, err := url.Parse(value); err == nil && u.Hostname() != "" {
			return u.Hostname()
		}
		return ""
	}

	// Bare hostnames like "google.com" or "news.ycombinator.com/item".
	if strings.Contains(value, ".") && !strings.Contains(value, " ") {
		if i := strings.IndexByte(value, '/'); i > 0 {
			value = value[:i]
		}
		return value
	}

	return ""
}
