package greeting

// Message is the JSON (or CBOR) body of GET /api/json.
type Message struct {
	Message string `json:"message" doc:"Greeting message" example:"Hello from Quarkus REST with JSON"`
}
