package profile

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/aanand-mishra/profile-page/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

func hasClass(n *html.Node, class string) bool {
	for _, a := range n.Attr {
		if a.Key == "class" && a.Val == class {
			return true
		}
	}
	return false
}

func text(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return strings.TrimSpace(b.String())
}

// fields maps each label span ("Class:") to the value span that follows it,
// and returns the h1 text alongside.
func fields(t *testing.T, body []byte) (heading string, values map[string]string) {
	t.Helper()

	doc, err := html.Parse(bytes.NewReader(body))
	require.NoError(t, err)

	values = make(map[string]string)
	var label string
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch {
			case n.Data == "h1":
				heading = text(n)
			case n.Data == "span" && hasClass(n, "label"):
				label = text(n)
			case n.Data == "span" && hasClass(n, "value"):
				values[label] = text(n)
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	return heading, values
}

func defaultProfile(t *testing.T) types.Profile {
	t.Helper()
	p, err := types.NewProfile(types.DefaultName, types.DefaultClass, types.DefaultRollNo)
	require.NoError(t, err)
	return p
}

func TestRender(t *testing.T) {
	heading, values := fields(t, Render(defaultProfile(t)))

	assert.Equal(t, "Hello, Im Saravanakrishnn B!", heading)
	assert.Equal(t, map[string]string{
		"Class:":   "IoT-B",
		"Roll No:": "22011102092",
	}, values)
}

func TestRenderDocumentShape(t *testing.T) {
	body := string(Render(defaultProfile(t)))

	assert.True(t, strings.HasPrefix(body, "<!DOCTYPE html>"))
	assert.Contains(t, body, "<title>Student Information</title>")
	assert.Contains(t, body, "border-left: 4px solid #39FF14;")
	assert.True(t, strings.HasSuffix(body, "</html>\n"))
}

func TestRenderDoesNotEscape(t *testing.T) {
	p, err := types.NewProfile("A & B", "<i>X</i>", "1")
	require.NoError(t, err)

	body := string(Render(p))
	assert.Contains(t, body, "Hello, Im A & B!")
	assert.Contains(t, body, `<span class="value"><i>X</i></span>`)
}

func TestNewAnyMethodAndPath(t *testing.T) {
	handler := New(defaultProfile(t))
	want := Render(defaultProfile(t))

	tests := []struct {
		method string
		target string
	}{
		{http.MethodGet, "/"},
		{http.MethodPost, "/api/students"},
		{http.MethodPut, "/a/b/c"},
		{http.MethodDelete, "/favicon.ico"},
		{http.MethodHead, "/"},
		{http.MethodOptions, "/anything?x=1"},
		{"PATCH", "/nested/path/"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.target, func(t *testing.T) {
			rec := httptest.NewRecorder()
			handler(rec, httptest.NewRequest(tt.method, tt.target, nil))

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, "text/html", rec.Header().Get("Content-Type"))
			assert.Equal(t, want, rec.Body.Bytes())
		})
	}
}

func TestNewIgnoresInput(t *testing.T) {
	handler := New(defaultProfile(t))

	plain := httptest.NewRecorder()
	handler(plain, httptest.NewRequest(http.MethodGet, "/", nil))

	req := httptest.NewRequest(http.MethodPost, "/?name=Mallory&roll=1",
		strings.NewReader(`{"name":"Mallory"}`))
	req.Header.Set("Content-Type", "application/json")
	withInput := httptest.NewRecorder()
	handler(withInput, req)

	assert.Equal(t, plain.Body.Bytes(), withInput.Body.Bytes())
	assert.NotContains(t, withInput.Body.String(), "Mallory")
}

func TestNewOverHTTP(t *testing.T) {
	srv := httptest.NewServer(New(defaultProfile(t)))
	defer srv.Close()

	get := func() []byte {
		resp, err := http.Get(srv.URL + "/some/path")
		require.NoError(t, err)
		defer resp.Body.Close()

		require.Equal(t, http.StatusOK, resp.StatusCode)
		require.Equal(t, "text/html", resp.Header.Get("Content-Type"))

		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		return body
	}

	first, second := get(), get()
	assert.Equal(t, first, second)

	heading, values := fields(t, first)
	assert.Contains(t, heading, "Saravanakrishnn B")
	assert.Equal(t, "IoT-B", values["Class:"])
	assert.Equal(t, "22011102092", values["Roll No:"])
}
