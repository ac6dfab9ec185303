package api

// PublicConfig is served by the dev server as /config.json and read by the
// wasm bridge before it exposes the API client.
type PublicConfig struct {
	APIBaseURL string `json:"api_base_url"`
}
