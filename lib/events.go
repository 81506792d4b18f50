package lib

import (
	"context"
	"encoding/base64"
	"maps"
	"unicode/utf8"

	"github.com/aws/aws-lambda-go/events"
)

// eventBody returns the body as the runtime expects it. Bytes that are not
// valid utf-8 would not survive a json string, so they go out base64 encoded
// and the runtime decodes them back to the same bytes.
func eventBody(body []byte) (string, bool) {
	if utf8.Valid(body) {
		return string(body), false
	}
	return base64.StdEncoding.EncodeToString(body), true
}

func ApiGatewayResponse(r *Response) events.APIGatewayProxyResponse {
	body, isBase64 := eventBody(r.Body)
	return events.APIGatewayProxyResponse{
		StatusCode:      r.StatusCode,
		Headers:         maps.Clone(r.Headers),
		Body:            body,
		IsBase64Encoded: isBase64,
	}
}

func ApiGatewayV2Response(r *Response) events.APIGatewayV2HTTPResponse {
	body, isBase64 := eventBody(r.Body)
	return events.APIGatewayV2HTTPResponse{
		StatusCode:      r.StatusCode,
		Headers:         maps.Clone(r.Headers),
		Body:            body,
		IsBase64Encoded: isBase64,
	}
}

func FunctionURLResponse(r *Response) events.LambdaFunctionURLResponse {
	body, isBase64 := eventBody(r.Body)
	return events.LambdaFunctionURLResponse{
		StatusCode:      r.StatusCode,
		Headers:         maps.Clone(r.Headers),
		Body:            body,
		IsBase64Encoded: isBase64,
	}
}

// LambdaHandler adapts h to the api gateway proxy shape that netlify and
// lambda.Start both accept. Errors go to the runtime untouched.
func LambdaHandler(h *Handler) func(context.Context, events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	return func(ctx context.Context, _ events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
		resp, err := h.Handle(ctx, Request{})
		if err != nil {
			return events.APIGatewayProxyResponse{}, err
		}
		return ApiGatewayResponse(resp), nil
	}
}
