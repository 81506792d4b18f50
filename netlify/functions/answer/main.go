package main

import (
	"context"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/nathants/answer/lib"
)

func main() {
	artifact, err := lib.NewArtifact(context.Background(), lib.ConfigFromEnv())
	if err != nil {
		lib.Logger.Fatal("error: ", err)
	}
	lambda.Start(lib.LambdaHandler(lib.NewHandler(artifact)))
}
