package notify

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/flathunt/flathunt/app/database"
)

const directionsBaseURL = "https://www.google.com/maps/dir/"

// Renderer formats categorized listings into the HTML digest (email) or
// the plain-text digest (result log).
type Renderer struct {
	referenceAddress string
}

// NewRenderer creates a renderer. referenceAddress is the fixed origin of
// the generated directions links.
func NewRenderer(referenceAddress string) *Renderer {
	return &Renderer{referenceAddress: referenceAddress}
}

// RenderHTML produces the email digest: one section per bucket, one line
// per listing with address, emphasized price, room count, listing URL and
// a directions link from the reference address.
func (r *Renderer) RenderHTML(forTwo, forThree []database.CategorizedListing) string {
	var buf bytes.Buffer

	buf.WriteString("<html><head></head><body>")
	r.writeBucket(&buf, "two", forTwo)
	r.writeBucket(&buf, "three", forThree)
	buf.WriteString("</body></html>")

	return buf.String()
}

func (r *Renderer) writeBucket(buf *bytes.Buffer, name string, listings []database.CategorizedListing) {
	fmt.Fprintf(buf, "<h1>Flats for %s</h1>", name)
	for _, listing := range listings {
		fmt.Fprintf(buf, "<p>Address: %s, <b>Price: %s</b>, Rooms: %d, Link: %s, ",
			listing.Address, formatPrice(listing.Price), listing.Rooms, listing.URL)
		fmt.Fprintf(buf, "<a href=%s>Directions</a></p>", r.directionsLink(listing.Address))
	}
}

// directionsLink builds a mapping-service route from the reference address
// to the listing address, with spaces percent-encoded as %20.
func (r *Renderer) directionsLink(address string) string {
	route := directionsBaseURL + r.referenceAddress + "/" + address
	return strings.ReplaceAll(route, " ", "%20")
}

// RenderText produces the result-log digest: a run header with the current
// timestamp, then one semicolon-delimited line per listing across both
// buckets.
func (r *Renderer) RenderText(forTwo, forThree []database.CategorizedListing, now time.Time) string {
	var buf bytes.Buffer

	fmt.Fprintf(&buf, "Flats for: %s\n\n", now.Format("2006-01-02 15:04:05"))
	for _, bucket := range [][]database.CategorizedListing{forTwo, forThree} {
		for _, listing := range bucket {
			buf.WriteString(RenderTextLine(listing))
			buf.WriteString("\n")
		}
	}
	buf.WriteString("\n")

	return buf.String()
}

// RenderTextLine renders one listing as `address;price;rooms;url`
func RenderTextLine(listing database.CategorizedListing) string {
	return fmt.Sprintf("%s;%s;%d;%s",
		listing.Address, formatPrice(listing.Price), listing.Rooms, listing.URL)
}

// formatPrice renders a price with its minimal decimal representation but
// always at least one fractional digit, so 500 renders as "500.0" the way
// existing result logs have it.
func formatPrice(price float64) string {
	s := strconv.FormatFloat(price, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
