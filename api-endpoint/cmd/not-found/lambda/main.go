package main

import (
	"github.com/aws/aws-lambda-go/lambda"

	base "github.com/xrd-tutorials/api-endpoint/api-endpoint/cmd/not-found"
)

func main() {
	base.ConfigureLogger()

	// StartHandler hands the raw payload to the handler without decoding it
	lambda.StartHandler(base.Handler{})
}
