package main

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/aws/aws-lambda-go/lambdacontext"
	log "github.com/sirupsen/logrus"

	base "github.com/xrd-tutorials/api-endpoint/api-endpoint/cmd/not-found"
	"github.com/xrd-tutorials/api-endpoint/shared/environment"
	"github.com/xrd-tutorials/api-endpoint/shared/logger"
	"github.com/xrd-tutorials/api-endpoint/shared/utils"
)

var (
	timeout        = time.Duration(environment.GetInt64("TIMEOUT", 10)) * time.Second
	eventFromStdin = environment.GetBool("EVENT_FROM_STDIN", false)
)

func main() {
	base.ConfigureLogger()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	requestID, _ := utils.RandomHex(16)
	ctx = lambdacontext.NewContext(ctx, &lambdacontext.LambdaContext{AwsRequestID: requestID})

	var payload []byte
	if eventFromStdin {
		var err error
		payload, err = io.ReadAll(os.Stdin)
		if err != nil {
			logger.Log.WithFields(log.Fields{
				"requestID": requestID,
				"error":     err.Error(),
			}).Error("ERROR READING EVENT: " + err.Error())
			os.Exit(1)
		}
	}

	res, err := base.Handler{}.Invoke(ctx, payload)
	if err != nil {
		logger.Log.WithFields(log.Fields{
			"requestID": requestID,
			"error":     err.Error(),
		}).Error("ERROR INVOKING HANDLER: " + err.Error())
		os.Exit(1)
	}

	os.Stdout.Write(append(res, '\n'))
}
