package idealista

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/flathunt/flathunt/app/config"
)

// BuildSearchURL constructs the fully-encoded provider query URL from the
// profile's fixed parameter set. Only the page number varies between calls.
// The provider expects commas in coordinate and location parameters to
// appear literally, so percent-encoded commas are restored after encoding.
func BuildSearchURL(baseURL string, params config.SearchParams, page int) string {
	if page < 1 {
		page = 1
	}

	values := url.Values{}
	values.Set("center", params.Center)
	values.Set("distance", params.Distance)
	values.Set("propertyType", params.PropertyType)
	values.Set("operation", params.Operation)
	values.Set("locale", params.Locale)
	values.Set("locationId", params.LocationID)
	values.Set("sinceDate", params.SinceDate)
	values.Set("maxPrice", params.MaxPrice)
	values.Set("bedroom", params.Bedrooms)
	values.Set("maxItems", strconv.Itoa(params.MaxItems))
	values.Set("numPage", strconv.Itoa(page))
	values.Set("order", params.Order)
	values.Set("sort", params.Sort)

	encoded := strings.ReplaceAll(values.Encode(), "%2C", ",")

	return baseURL + "?" + encoded
}
