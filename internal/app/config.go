package app

import "net/http"

// Config holds runtime wiring options for building the app.
type Config struct {
	Home        string       // config directory, e.g. $HOME/.clasp
	RegistryURL string       // registry base URL, e.g. http://127.0.0.1:8080; empty disables the registry gate
	HTTP        *http.Client // optional; defaults to http.DefaultClient
}
