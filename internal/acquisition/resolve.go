package acquisition

import (
	"context"
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

type linkKind int

const (
	linkDirect linkKind = iota
	linkScrape
	linkAPI
)

var (
	reDownloader    = regexp.MustCompile(`https://downloader\.disk\.360\.yandex\.[^"'\s<>]+`)
	reDownloadField = regexp.MustCompile(`"download":\s*"([^"]+)"`)
)

func (a *implAcquirer) Resolve(ctx context.Context, sourceURL string) (string, error) {
	u, err := url.Parse(sourceURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return "", fmt.Errorf("%w: invalid video url %q", ErrResolutionFailed, sourceURL)
	}

	switch a.classify(u) {
	case linkScrape:
		a.logger.Info(ctx, "Share page link detected, extracting download link: %s", sourceURL)
		return a.scrape(ctx, sourceURL)
	case linkAPI:
		a.logger.Info(ctx, "Public share link detected, resolving through API: %s", sourceURL)
		return a.resolveViaAPI(ctx, sourceURL)
	default:
		a.logger.Info(ctx, "Using direct download URL: %s", sourceURL)
		return sourceURL, nil
	}
}

func (a *implAcquirer) classify(u *url.URL) linkKind {
	lower := strings.ToLower(u.String())
	if strings.Contains(lower, "downloader.disk") || strings.Contains(lower, "download") {
		return linkDirect
	}

	host := strings.ToLower(u.Host)
	for _, h := range a.opts.ScrapeHosts {
		if strings.Contains(host, strings.ToLower(h)) {
			return linkScrape
		}
	}
	for _, h := range a.opts.APIHosts {
		if strings.Contains(host, strings.ToLower(h)) {
			return linkAPI
		}
	}
	return linkDirect
}

// scrape fetches a share page and looks for an embedded downloader link:
// first in anchors, then anywhere in the markup, then in a JSON "download" field.
func (a *implAcquirer) scrape(ctx context.Context, pageURL string) (string, error) {
	resp, err := a.resolver.R().SetContext(ctx).Get(pageURL)
	if err != nil {
		return "", fmt.Errorf("%w: fetch share page: %v", ErrResolutionFailed, err)
	}
	if resp.IsError() {
		return "", fmt.Errorf("%w: share page returned status %d", ErrResolutionFailed, resp.StatusCode())
	}
	page := resp.String()

	if doc, err := goquery.NewDocumentFromReader(strings.NewReader(page)); err == nil {
		var found string
		doc.Find("a[href]").EachWithBreak(func(_ int, s *goquery.Selection) bool {
			href, _ := s.Attr("href")
			if reDownloader.MatchString(href) {
				found = href
				return false
			}
			return true
		})
		if found != "" {
			a.logger.Info(ctx, "Found download URL in page anchor: %s", found)
			return found, nil
		}
	}

	if m := reDownloader.FindString(page); m != "" {
		a.logger.Info(ctx, "Found download URL: %s", m)
		return m, nil
	}

	if m := reDownloadField.FindStringSubmatch(page); m != nil {
		link := strings.ReplaceAll(m[1], `\/`, "/")
		a.logger.Info(ctx, "Found download URL in page data: %s", link)
		return link, nil
	}

	return "", fmt.Errorf("%w: no download link found on share page %s; use a direct download link", ErrResolutionFailed, pageURL)
}

func (a *implAcquirer) resolveViaAPI(ctx context.Context, publicURL string) (string, error) {
	var out struct {
		Href string `json:"href"`
	}

	resp, err := a.resolver.R().
		SetContext(ctx).
		SetQueryParam("public_key", publicURL).
		SetResult(&out).
		Get(a.opts.PublicAPIURL)
	if err != nil {
		return "", fmt.Errorf("%w: call resolution api: %v", ErrResolutionFailed, err)
	}
	if resp.IsError() {
		return "", fmt.Errorf("%w: resolution api returned status %d", ErrResolutionFailed, resp.StatusCode())
	}
	if out.Href == "" {
		return "", fmt.Errorf("%w: resolution api returned no link", ErrResolutionFailed)
	}
	return out.Href, nil
}
