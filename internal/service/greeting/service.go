// Package greeting builds the greeting strings served by the /api routes.
package greeting

import (
	"context"
	"net/url"
	"strings"
)

const (
	// Suffix ends every greeting.
	Suffix = " from Quarkus REST"

	// HelloText is the body of the static text route.
	HelloText = "Hello" + Suffix

	// HelloJSONText is the message of the static JSON route.
	HelloJSONText = "Hello" + Suffix + " with JSON"
)

// GreetParams are the optional inputs of Greet. A nil Name is absent, which differs from
// a present empty Name: the latter still produces the ", " separator.
type GreetParams struct {
	Name     *string
	Language *string
}

// ParamsFromQuery reads name and language from a parsed query string. A key that appears
// without a value (?name or ?name=) is present and empty; a missing key stays nil.
func ParamsFromQuery(q url.Values) GreetParams {
	var params GreetParams
	if v, ok := q["name"]; ok {
		params.Name = firstValue(v)
	}
	if v, ok := q["language"]; ok {
		params.Language = firstValue(v)
	}
	return params
}

func firstValue(values []string) *string {
	var s string
	if len(values) > 0 {
		s = values[0]
	}
	return &s
}

// Service defines greeting operations. Every operation is total: any input yields a greeting.
type Service interface {
	Hello(ctx context.Context) string
	HelloJSON(ctx context.Context) string
	HelloName(ctx context.Context, name string) string
	Greet(ctx context.Context, params GreetParams) string
}

// DefaultService is the stateless Service used by the HTTP handlers.
type DefaultService struct{}

var _ Service = DefaultService{}

// NewService returns the default greeting service.
func NewService() DefaultService {
	return DefaultService{}
}

func (DefaultService) Hello(context.Context) string {
	return HelloText
}

func (DefaultService) HelloJSON(context.Context) string {
	return HelloJSONText
}

// HelloName interpolates name verbatim, including the empty string.
func (DefaultService) HelloName(_ context.Context, name string) string {
	return "Hello, " + name + Suffix
}

func (DefaultService) Greet(_ context.Context, params GreetParams) string {
	return Compose(Word(NormalizeLanguage(params.Language)), params.Name)
}

// Compose joins a greeting word, the optional name and the fixed suffix.
func Compose(word string, name *string) string {
	var b strings.Builder
	b.WriteString(word)
	if name != nil {
		b.WriteString(", ")
		b.WriteString(*name)
	}
	b.WriteString(Suffix)
	return b.String()
}
