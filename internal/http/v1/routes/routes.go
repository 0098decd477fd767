package routes

import (
	"github.com/danielgtaylor/huma/v2"

	"github.com/janisto/greeting-api/internal/http/v1/greeting"
	greetingsvc "github.com/janisto/greeting-api/internal/service/greeting"
)

// BasePath prefixes every greeting route.
const BasePath = "/api"

// Register mounts all API operations on api under BasePath.
func Register(api huma.API, greetingService greetingsvc.Service) {
	greeting.Register(huma.NewGroup(api, BasePath), greetingService)
}

// Config returns the huma configuration shared by the server and tests.
//
// The schema link hook is dropped so JSON bodies carry only their own fields (no $schema
// property, no describedBy Link header). Operations that document a JSON response also
// document the equivalent CBOR response.
func Config(title, version, docsPath string) huma.Config {
	cfg := huma.DefaultConfig(title, version)
	cfg.DocsPath = docsPath
	cfg.CreateHooks = nil
	cfg.OnAddOperation = append(cfg.OnAddOperation, documentCBOR)
	return cfg
}

func documentCBOR(_ *huma.OpenAPI, op *huma.Operation) {
	for _, resp := range op.Responses {
		if resp == nil || resp.Content == nil {
			continue
		}
		if jsonContent, ok := resp.Content["application/json"]; ok {
			resp.Content["application/cbor"] = jsonContent
		}
	}
}
