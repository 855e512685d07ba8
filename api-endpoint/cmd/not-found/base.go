package base

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/aws/aws-lambda-go/lambdacontext"
	log "github.com/sirupsen/logrus"

	"github.com/xrd-tutorials/api-endpoint/shared/apigateway"
	"github.com/xrd-tutorials/api-endpoint/shared/environment"
	"github.com/xrd-tutorials/api-endpoint/shared/logger"
)

// Message is answered to every request until routes are configured
const Message = "Hello from ApiEndpoint Lambda! This 404 proves end-to-end connectivity works. No routes configured yet - that's what ApiRoute will add later."

// body is written by hand, json.Marshal would drop the space after the colon
const body = `{"message": "` + Message + `"}`

var (
	logLevel       = environment.GetString("LOG_LEVEL", "info")
	logInvocations = environment.GetBool("LOG_INVOCATIONS", true)

	encodedResponse []byte
)

func init() {
	encodedResponse, _ = json.Marshal(Handle(context.Background(), nil))
}

// ConfigureLogger applies LOG_LEVEL, an invalid value keeps the current level
func ConfigureLogger() {
	if err := logger.SetLevel(logLevel); err != nil {
		logger.Log.WithFields(log.Fields{
			"error": err.Error(),
		}).Warn("IGNORING LOG_LEVEL: " + err.Error())
	}
}

// Handle builds the not found response, event and context are never read
func Handle(_ context.Context, _ interface{}) apigateway.Response {
	return apigateway.NewRawJSONResponse(http.StatusNotFound, body)
}

// Handler is the raw lambda.Handler for the function. The payload is never
// decoded so any bytes, valid JSON or not, get the same answer.
type Handler struct{}

// Invoke returns the encoded not found response
func (Handler) Invoke(ctx context.Context, _ []byte) ([]byte, error) {
	if logInvocations {
		logInvocation(ctx)
	}

	res := make([]byte, len(encodedResponse))
	copy(res, encodedResponse)

	return res, nil
}

func logInvocation(ctx context.Context) {
	fields := log.Fields{
		"functionName": lambdacontext.FunctionName,
		"statusCode":   http.StatusNotFound,
	}
	if lc, ok := lambdacontext.FromContext(ctx); ok {
		fields["requestID"] = lc.AwsRequestID
	}

	logger.Log.WithFields(fields).Debug("API ENDPOINT INVOKED")
}
