// Package response provides helpers for writing HTTP responses.
//
// Rather than repeating the same three steps (set header, set status, write
// body) in every handler, they are centralised here.
package response

import "net/http"

// ContentTypeHTML is the Content-Type sent with every page.
const ContentTypeHTML = "text/html"

// WriteHTML writes body as an HTML response with the given status code.
//
// Order matters: Header() → WriteHeader() → body writes. Once WriteHeader is
// called (or the first Write), headers are locked.
func WriteHTML(w http.ResponseWriter, status int, body []byte) error {
	w.Header().Set("Content-Type", ContentTypeHTML)
	w.WriteHeader(status)

	_, err := w.Write(body)
	return err
}
