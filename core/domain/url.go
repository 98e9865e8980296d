// ABOUTME: TikTok URL recognition shared by the API and the CLI
// ABOUTME: Accepts tiktok.com, www.tiktok.com and vm.tiktok.com over http(s)

package domain

import "regexp"

var tiktokURLPattern = regexp.MustCompile(`^https?://(www\.|vm\.)?tiktok\.com`)

// IsTikTokURL reports whether raw starts with a TikTok host
func IsTikTokURL(raw string) bool {
	return tiktokURLPattern.MatchString(raw)
}
