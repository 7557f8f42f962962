package downloads

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/pkg/errors"
)

const mirrorSelector = `a:has(h2:contains("GET"))`

// ExtractIPFSCID returns the first IPFS content identifier in the catalog's
// file metadata. "ipfs_cids" takes precedence over the older "ipfs" field.
// An empty string means the file isn't on IPFS.
func ExtractIPFSCID(data map[string]interface{}) string {
	if cids, ok := data["ipfs_cids"].([]interface{}); ok && len(cids) > 0 {
		cid, _ := cids[0].(string)
		return cid
	}
	if cid, ok := data["ipfs"].(string); ok {
		return cid
	}
	return ""
}

// ParseLibgenMirrors returns the download links on a libgen file page,
// resolved against base.
func ParseLibgenMirrors(html, base string) ([]string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return parseMirrors(doc, base), nil
}

func parseMirrors(doc *goquery.Document, base string) []string {
	baseURL, err := url.Parse(base)
	if err != nil {
		baseURL = nil
	} else if baseURL.Path == "" {
		baseURL.Path = "/"
	}

	mirrors := []string{}
	doc.Find(mirrorSelector).Each(func(_ int, s *goquery.Selection) {
		href, ok := s.Attr("href")
		href = strings.TrimSpace(href)
		if !ok || href == "" {
			return
		}
		mirrors = append(mirrors, resolve(baseURL, href))
	})
	return mirrors
}

func resolve(base *url.URL, href string) string {
	if strings.HasPrefix(href, "http://") || strings.HasPrefix(href, "https://") || base == nil {
		return href
	}
	ref, err := url.Parse(href)
	if err != nil {
		return href
	}
	return base.ResolveReference(ref).String()
}
