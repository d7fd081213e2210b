package idealista

// Provider endpoints. Clients carry these as fields so tests can point at
// a local server.
const (
	DefaultSearchURL = "https://api.idealista.com/3.5/it/search"
	DefaultTokenURL  = "https://api.idealista.com/oauth/token"
)

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
}
