// Package greeting registers the greeting operations: static text, static JSON,
// path-parameter echo and the query-driven localized greeting.
package greeting

import (
	"context"
	"net/http"
	"strings"

	"github.com/danielgtaylor/huma/v2"
	"go.uber.org/zap"

	applog "github.com/janisto/greeting-api/internal/platform/logging"
	greetingsvc "github.com/janisto/greeting-api/internal/service/greeting"
)

var tags = []string{"Greeting"}

// textResponses documents a text/plain 200 response in place of huma's octet-stream default.
func textResponses(description string) map[string]*huma.Response {
	return map[string]*huma.Response{
		"200": {
			Description: description,
			Content: map[string]*huma.MediaType{
				"text/plain": {Schema: &huma.Schema{Type: huma.TypeString}},
			},
		},
	}
}

// Register wires the greeting routes into api. Paths are relative to the group the caller
// mounts them on.
func Register(api huma.API, svc greetingsvc.Service) {
	huma.Register(api, huma.Operation{
		OperationID: "get-hello",
		Method:      http.MethodGet,
		Path:        "/hello",
		Summary:     "Static greeting",
		Tags:        tags,
		Responses:   textResponses("Fixed greeting text"),
	}, func(ctx context.Context, _ *struct{}) (*TextOutput, error) {
		applog.LogInfo(ctx, "hello")
		return newTextOutput(svc.Hello(ctx)), nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "get-hello-json",
		Method:      http.MethodGet,
		Path:        "/json",
		Summary:     "Static JSON greeting",
		Description: "Returns a single-field message object. Send Accept: application/cbor for CBOR.",
		Tags:        tags,
	}, func(ctx context.Context, _ *struct{}) (*JSONOutput, error) {
		applog.LogInfo(ctx, "hello json")
		return &JSONOutput{Body: Message{Message: svc.HelloJSON(ctx)}}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "get-hello-name",
		Method:      http.MethodGet,
		Path:        "/hello/{name}",
		Summary:     "Greet by path name",
		Tags:        tags,
		Responses:   textResponses("Greeting including the path name"),
	}, func(ctx context.Context, input *HelloNameInput) (*TextOutput, error) {
		applog.LogInfo(ctx, "hello name", zap.String("name", input.Name))
		return newTextOutput(svc.HelloName(ctx, input.Name)), nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "get-greet",
		Method:      http.MethodGet,
		Path:        "/greet",
		Summary:     "Localized greeting",
		Description: "Greets in the language given by the language parameter. Supported codes: " +
			strings.Join(greetingsvc.Languages(), ", ") + ". Unknown codes greet in English, the default. " +
			"The name is appended when the name parameter is present, even if empty.",
		Tags:      tags,
		Responses: textResponses("Localized greeting text"),
	}, func(ctx context.Context, input *GreetInput) (*TextOutput, error) {
		params := input.Params()
		applog.LogInfo(ctx, "greet",
			zap.Bool("hasName", params.Name != nil),
			zap.String("language", greetingsvc.NormalizeLanguage(params.Language)),
		)
		return newTextOutput(svc.Greet(ctx, params)), nil
	})
}
