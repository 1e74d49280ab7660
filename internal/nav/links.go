package nav

import (
	"errors"
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"golang.org/x/net/idna"
)

// Sentinels behind validation failures; match them with errors.Is.
var (
	ErrCyclicEntry    = errors.New("cyclic navigation entry")
	ErrInvalidLink    = errors.New("invalid link")
	ErrMalformedEntry = errors.New("malformed entry")
)

// recognizedSchemes are the URL schemes accepted for absolute links.
var recognizedSchemes = map[string]bool{
	"http":   true,
	"https":  true,
	"mailto": true,
}

// CheckLink reports whether link is site-relative (starts with a single "/") or an
// absolute URL with a recognised scheme. Hosts of http(s) links must be valid
// (internationalised) domain names.
func CheckLink(link string) error {
	if link == "" {
		return fmt.Errorf("%w: link must not be empty", ErrInvalidLink)
	}
	if strings.TrimSpace(link) != link {
		return fmt.Errorf("%w: link %q has surrounding whitespace", ErrInvalidLink, link)
	}
	if strings.HasPrefix(link, "//") {
		return fmt.Errorf("%w: protocol-relative link %q is not supported", ErrInvalidLink, link)
	}
	if strings.HasPrefix(link, "/") {
		if _, err := url.Parse(link); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidLink, err)
		}
		return nil
	}
	u, err := url.Parse(link)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidLink, err)
	}
	scheme := strings.ToLower(u.Scheme)
	if !recognizedSchemes[scheme] {
		return fmt.Errorf("%w: link %q must start with / or use one of http, https, mailto", ErrInvalidLink, link)
	}
	if scheme == "mailto" {
		if u.Opaque == "" {
			return fmt.Errorf("%w: mailto link %q has no address", ErrInvalidLink, link)
		}
		return nil
	}
	return checkHost(u)
}

// CheckWebURL accepts only absolute http(s) URLs.
func CheckWebURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidLink, err)
	}
	if s := strings.ToLower(u.Scheme); s != "http" && s != "https" {
		return fmt.Errorf("%w: %q must be an absolute http(s) URL", ErrInvalidLink, raw)
	}
	return checkHost(u)
}

func checkHost(u *url.URL) error {
	host := u.Hostname()
	if host == "" {
		return fmt.Errorf("%w: %q has no host", ErrInvalidLink, u.String())
	}
	if _, err := idna.Lookup.ToASCII(host); err != nil {
		return fmt.Errorf("%w: host %q: %v", ErrInvalidLink, host, err)
	}
	return nil
}

// checkActiveMatch validates the pattern the renderer uses to highlight a nav entry.
func checkActiveMatch(pattern string) error {
	if !strings.HasPrefix(pattern, "/") {
		return fmt.Errorf("%w: active match %q must start with /", ErrMalformedEntry, pattern)
	}
	if _, err := regexp.Compile(pattern); err != nil {
		return fmt.Errorf("%w: active match %q: %v", ErrMalformedEntry, pattern, err)
	}
	return nil
}
