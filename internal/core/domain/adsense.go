package domain

import "regexp"

var (
	adsByGoogleRe  = regexp.MustCompile(`(?i)adsbygoogle`)
	googleSyndicRe = regexp.MustCompile(`(?i)pagead2\.googlesyndication\.com`)
)

// IsAdSenseScript reports whether markup is a Google AdSense tag.
func IsAdSenseScript(script string) bool {
	return adsByGoogleRe.MatchString(script) || googleSyndicRe.MatchString(script)
}
