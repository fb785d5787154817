package seo

import (
	"encoding/json"
	"fmt"
	"html/template"
	"strings"
)

// RenderJSONLD encodes each schema into its own ld+json script element.
// encoding/json escapes <, > and & so the payload cannot close the element.
func RenderJSONLD(schemas ...Schema) (template.HTML, error) {
	var b strings.Builder
	for i, s := range schemas {
		payload, err := json.Marshal(s)
		if err != nil {
			return "", fmt.Errorf("encoding %v schema: %w", s["@type"], err)
		}
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(`<script type="application/ld+json">`)
		b.Write(payload)
		b.WriteString(`</script>`)
	}
	return template.HTML(b.String()), nil
}

// RobotsTxt returns the robots.txt body for the site at siteURL.
func RobotsTxt(siteURL string) string {
	siteURL = strings.TrimRight(siteURL, "/")
	return "User-agent: *\nAllow: /\nDisallow: /feedback\n\nSitemap: " + siteURL + "/sitemap.xml\n"
}
