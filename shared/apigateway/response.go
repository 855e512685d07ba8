package apigateway

// Response is what the Lambda proxy integration reads back from the function.
// It carries the same fields as events.APIGatewayProxyResponse minus the
// optional ones, so the encoded form holds exactly statusCode, headers and body.
type Response struct {
	StatusCode int               `json:"statusCode"`
	Headers    map[string]string `json:"headers"`
	Body       string            `json:"body"`
}

// NewRawJSONResponse creates a JSON response from an already encoded body,
// the body is sent as is
func NewRawJSONResponse(statusCode int, body string) Response {
	return Response{
		StatusCode: statusCode,
		Body:       body,
		Headers: map[string]string{
			"Content-Type": "application/json",
		},
	}
}
