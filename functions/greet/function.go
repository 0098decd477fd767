// Package greet exposes the localized greeting as an HTTP Cloud Function.
package greet

import (
	"net/http"

	"github.com/GoogleCloudPlatform/functions-framework-go/functions"

	greetingsvc "github.com/janisto/greeting-api/internal/service/greeting"
)

var svc greetingsvc.Service = greetingsvc.NewService()

func init() {
	functions.HTTP("Greet", greetHandler)
}

// greetHandler answers GET with the same text as /api/greet on the main server.
func greetHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		w.Header().Set("Allow", "GET, HEAD")
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	params := greetingsvc.ParamsFromQuery(r.URL.Query())

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte(svc.Greet(r.Context(), params)))
}
