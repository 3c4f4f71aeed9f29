package hello

import (
	"io"
	"net/http"
)

const defaultName = "John Smith"

// Greet answers "Hello <name>" with name taken from the query string.
func Greet(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")
	if name == "" {
		name = defaultName
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = io.WriteString(w, "Hello "+name)
}
