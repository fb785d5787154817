package cms

import (
	"net/url"
	"strings"
)

// AssetURL returns the public URL of a stored file. Absolute URLs pass through
// unchanged, a leading "/assets/" is dropped, and the asset token and optional
// transform preset key are appended as query parameters. An empty id yields "".
func (c *Client) AssetURL(id, key string) string {
	id = strings.TrimSpace(id)
	if id == "" {
		return ""
	}
	if strings.HasPrefix(id, "http://") || strings.HasPrefix(id, "https://") {
		return id
	}
	id = strings.TrimPrefix(id, "/assets/")

	u := c.baseURL + "/assets/" + url.PathEscape(id)

	q := url.Values{}
	if c.assetToken != "" {
		q.Set("access_token", c.assetToken)
	}
	if key != "" {
		q.Set("key", key)
	}
	if len(q) == 0 {
		return u
	}
	return u + "?" + q.Encode()
}

// AssetURLs maps AssetURL over ids, dropping empty results.
func (c *Client) AssetURLs(ids []string, key string) []string {
	urls := make([]string, 0, len(ids))
	for _, id := range ids {
		if u := c.AssetURL(id, key); u != "" {
			urls = append(urls, u)
		}
	}
	return urls
}
