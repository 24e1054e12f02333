package landing

import (
	"net/url"
	"path"
)

// AbsURL resolves the path p against base.
// AbsURL("https://zustand.acebook.cc/", "sitemap.xml") yields
// "https://zustand.acebook.cc/sitemap.xml".
func AbsURL(base, p string) string {
	u, err := url.Parse(base)
	if err != nil {
		return base
	}
	u.Path = path.Join("/", u.Path, p)
	u.RawQuery = ""
	u.Fragment = ""
	return u.String()
}
