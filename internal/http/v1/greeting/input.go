package greeting

import (
	"github.com/danielgtaylor/huma/v2"

	greetingsvc "github.com/janisto/greeting-api/internal/service/greeting"
)

// HelloNameInput defines the path parameter for GET /hello/{name}.
type HelloNameInput struct {
	Name string `path:"name" doc:"Name to greet, used verbatim" example:"Alice"`
}

// GreetInput defines the query parameters for GET /greet.
//
// Huma decodes absent and empty query values to the same zero string, so Resolve reads
// presence from the raw query. An empty name that was sent still gets a separator.
type GreetInput struct {
	Name     string `query:"name" doc:"Name to greet; omit for an anonymous greeting" example:"Charlie"`
	Language string `query:"language" doc:"Language code, case-insensitive; unknown codes greet in English" example:"es"`

	params greetingsvc.GreetParams
}

var _ huma.Resolver = (*GreetInput)(nil)

// Resolve captures parameter presence from the raw query string.
func (i *GreetInput) Resolve(ctx huma.Context) []error {
	u := ctx.URL()
	i.params = greetingsvc.ParamsFromQuery(u.Query())
	return nil
}

// Params returns the service parameters, with absent values left nil.
func (i *GreetInput) Params() greetingsvc.GreetParams {
	return i.params
}
