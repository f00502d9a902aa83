package httpapi

import (
	"net/url"

	"github.com/valyala/bytebufferpool"
)

const mapLinkBase = "http://maps.google.com/maps?t=m&q="

// venueMapLink builds the Google Maps search URL for a venue address.
// Returns empty when there is no address to point at.
func venueMapLink(address string) string {
	if address == "" {
		return ""
	}

	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	buf.WriteString(mapLinkBase)
	buf.WriteString(url.QueryEscape(address))
	return buf.String()
}
