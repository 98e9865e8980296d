// ABOUTME: Primary extraction strategy reading a TikTok page's meta tags and inline scripts
// ABOUTME: Uses goquery for selectors and regexes for the videoData script payload

package extract

import (
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"tiktok-downloader-api/core/domain"
)

const (
	videoDataMarker = "videoData"
	escapedSlash    = "\\u002F"
)

var (
	playAddrPattern = regexp.MustCompile(`"playAddr":"([^"]+)"`)
	musicURLPattern = regexp.MustCompile(`"musicUrl":"([^"]+)"`)
)

// ParsePage reads the Open Graph tags and the first videoData script of a TikTok page.
// Missing fields are left empty; only a malformed document is an error.
func ParsePage(r io.Reader) (*domain.ExtractionResult, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parse page html: %w", err)
	}

	result := &domain.ExtractionResult{
		ID:         domain.VideoIDFromCanonical(metaProperty(doc, "og:url")),
		Title:      metaProperty(doc, "og:title"),
		Thumbnail:  metaProperty(doc, "og:image"),
		AuthorName: metaProperty(doc, "og:author"),
	}

	script := doc.Find("script").FilterFunction(func(_ int, s *goquery.Selection) bool {
		return strings.Contains(s.Text(), videoDataMarker)
	}).First()

	if script.Length() > 0 {
		content := script.Text()
		result.VideoURL = firstMatch(playAddrPattern, content)
		result.MusicURL = firstMatch(musicURLPattern, content)
		if result.VideoURL != "" {
			result.Strategy = domain.StrategyPage
		}
	}

	return result, nil
}

func metaProperty(doc *goquery.Document, property string) string {
	return doc.Find(`meta[property="` + property + `"]`).First().AttrOr("content", "")
}

// firstMatch returns the first capture group of pattern in content with escaped slashes restored
func firstMatch(pattern *regexp.Regexp, content string) string {
	match := pattern.FindStringSubmatch(content)
	if len(match) < 2 {
		return ""
	}
	return strings.ReplaceAll(match[1], escapedSlash, "/")
}
