// Package profile contains the HTTP handler that serves the student profile
// page.
//
// The handler follows the factory pattern used across this codebase: New is
// called once at startup with its dependencies and returns the function the
// server calls on every request.
//
//	server.Handler = profile.New(p)
package profile

import (
	"fmt"
	"net/http"

	"github.com/aanand-mishra/profile-page/internal/types"
	"github.com/aanand-mishra/profile-page/internal/utils/response"
)

// page is filled with name, class and roll number, in that order.
// The values are inserted as-is without HTML escaping; they are literals.
const page = `<!DOCTYPE html>
<html>
<head>
  <title>Student Information</title>
  <style>
    body {
      font-family: Arial, sans-serif;
      max-width: 600px;
      margin: 50px auto;
      padding: 20px;
      background-color: rgb(0, 0, 0);
    }
    .container {
      background-color: black;
      padding: 30px;
      border-radius: 8px;
      box-shadow: 0 2px 4px rgba(0,0,0,0.1);
    }
    h1 {
      color: #fff;
      margin-bottom: 20px;
    }
    .info {
      margin: 15px 0;
      padding: 10px;
      background-color: rgb(0, 0, 0);
      border-left: 4px solid #39FF14;
    }
    .label {
      font-weight: bold;
      color: #fff;
    }
    .value {
      color: #fff;
      margin-left: 10px;
    }
  </style>
</head>
<body>
  <div class="container">
    <h1>Hello, Im %s!</h1>
    <div class="info">
      <span class="label">Class:</span>
      <span class="value">%s</span>
    </div>
    <div class="info">
      <span class="label">Roll No:</span>
      <span class="value">%s</span>
    </div>
  </div>
</body>
</html>
`

// Render returns the complete HTML document for p.
func Render(p types.Profile) []byte {
	return []byte(fmt.Sprintf(page, p.Name, p.Class, p.RollNo))
}

// New handles every request, whatever its method, path, headers or body,
// with 200 OK and the rendered profile page.
//
// The page is rendered once here, so every response carries the same bytes.
func New(p types.Profile) http.HandlerFunc {
	body := Render(p)

	return func(w http.ResponseWriter, r *http.Request) {
		response.WriteHTML(w, http.StatusOK, body)
	}
}
