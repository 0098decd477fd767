package greeting

const contentTypeText = "text/plain; charset=utf-8"

// TextOutput is a plain-text response. Huma writes a []byte body verbatim.
type TextOutput struct {
	ContentType string `header:"Content-Type"`
	Body        []byte
}

func newTextOutput(s string) *TextOutput {
	return &TextOutput{ContentType: contentTypeText, Body: []byte(s)}
}

// JSONOutput for GET /json
type JSONOutput struct {
	Body Message
}
