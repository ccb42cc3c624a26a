package http

import (
	"github.com/pariz/gountries"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"clarityboard/internal/analytics"
	"clarityboard/internal/pkg/referrers"
	"clarityboard/internal/sessions"
)

// convertCountryRows canonicalizes country display names. Export feeds
// carry a mix of ISO codes and country names; both resolve to the common
// name where possible.
func convertCountryRows(rows []analytics.CountryRow) []analytics.CountryRow {
	caser := cases.Title(language.AmericanEnglish)
	countries := gountries.New()

	result := make([]analytics.CountryRow, len(rows))
	for i, row := range rows {
		if row.Country != sessions.UnknownValue {
			if country, err := countries.FindCountryByAlpha(row.Country); err == nil {
				row.Country = country.Name.Common
			} else if country, err := countries.FindCountryByName(row.Country); err == nil {
				row.Country = country.Name.Common
			} else {
				row.Country = caser.String(row.Country)
			}
		}
		result[i] = row
	}
	return result
}

// convertCategoryShares title-cases category names for display.
func convertCategoryShares(shares []analytics.CategoryShare) []analytics.CategoryShare {
	caser := cases.Title(language.AmericanEnglish)

	result := make([]analytics.CategoryShare, len(shares))
	for i, share := range shares {
		if share.Name != sessions.UnknownValue {
			share.Name = caser.String(share.Name)
		}
		result[i] = share
	}
	return result
}

// convertOSShares title-cases OS names, keeping vendor capitalization for
// the usual exceptions.
func convertOSShares(shares []analytics.CategoryShare) []analytics.CategoryShare {
	caser := cases.Title(language.AmericanEnglish)

	result := make([]analytics.CategoryShare, len(shares))
	for i, share := range shares {
		switch share.Name {
		case sessions.UnknownValue:
		case "ios", "iOS", "iPhone OS":
			share.Name = "iOS"
		case "ipados", "iPadOS":
			share.Name = "iPadOS"
		case "macos", "Mac OS", "Mac OS X", "macOS", "Darwin":
			share.Name = "macOS"
		default:
			share.Name = caser.String(share.Name)
		}
		result[i] = share
	}
	return result
}

// convertReferrerCounts maps referrer values to friendly display names.
func convertReferrerCounts(counts []analytics.ReferrerCount) []analytics.ReferrerCount {
	result := make([]analytics.ReferrerCount, len(counts))
	for i, rc := range counts {
		rc.Referrer = referrers.FriendlyName(rc.Referrer)
		result[i] = rc
	}
	return result
}
