package lambda

import (
	"context"
	"encoding/base64"
	"fmt"
	"net/http"

	"github.com/aws/aws-lambda-go/events"
	awslambda "github.com/aws/aws-lambda-go/lambda"

	"github.com/crossfn/crossfn/core/dispatcher"
	"github.com/crossfn/crossfn/core/request"
	"github.com/crossfn/crossfn/core/response"
)

// Factory builds invocation contexts from API Gateway proxy events.
// The first extra argument must be the *events.APIGatewayProxyResponse
// the response is committed to.
func Factory() dispatcher.ContextFactory[*dispatcher.Context] {
	return func(ctx context.Context, trigger any, args ...any) (*dispatcher.Context, error) {
		event, ok := trigger.(events.APIGatewayProxyRequest)
		if !ok {
			return nil, fmt.Errorf("lambda: unexpected trigger type %T", trigger)
		}
		var out *events.APIGatewayProxyResponse
		for _, arg := range args {
			if target, ok := arg.(*events.APIGatewayProxyResponse); ok {
				out = target
				break
			}
		}
		if out == nil {
			return nil, fmt.Errorf("lambda: missing response target argument")
		}

		req, err := fromEvent(event)
		if err != nil {
			return nil, err
		}
		return dispatcher.NewContext(ctx, req, response.NewWriter(commitTo(out))), nil
	}
}

// Start hands the invocation to the AWS Lambda runtime. The Lambda host
// receives the committed response on success; an unhandled error makes
// the host report the invocation as failed, after the response flush
// already ran.
func Start(invoke dispatcher.Invocation) {
	awslambda.Start(func(ctx context.Context, event events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
		var out events.APIGatewayProxyResponse
		err := invoke(ctx, event, &out)
		return out, err
	})
}

// fromEvent converts an API Gateway proxy event into the normalized form.
func fromEvent(event events.APIGatewayProxyRequest) (*request.Request, error) {
	req := request.New(event.HTTPMethod, event.Path)

	for key, value := range event.Headers {
		req.Headers.Set(key, value)
	}
	for key, values := range event.MultiValueHeaders {
		for _, v := range values {
			req.Headers.Add(key, v)
		}
	}

	for key, value := range event.QueryStringParameters {
		req.Query.Set(key, value)
	}
	for key, values := range event.MultiValueQueryStringParameters {
		req.Query[key] = append([]string(nil), values...)
	}

	for key, value := range event.PathParameters {
		req.Params[key] = value
	}

	if event.Body != "" {
		if event.IsBase64Encoded {
			body, err := base64.StdEncoding.DecodeString(event.Body)
			if err != nil {
				return nil, fmt.Errorf("lambda: failed to decode base64 body: %w", err)
			}
			req.Body = body
		} else {
			req.Body = []byte(event.Body)
		}
	}

	req.Trigger = event
	return req, nil
}

// commitTo fills the API Gateway proxy response from a snapshot.
func commitTo(out *events.APIGatewayProxyResponse) response.CommitFunc {
	return func(snap *response.Snapshot) error {
		body, err := response.EncodeBody(snap.Body)
		if err != nil {
			return err
		}

		out.StatusCode = snap.Status
		out.Headers = flattenHeaders(snap.Headers)
		out.MultiValueHeaders = map[string][]string(snap.Headers)
		out.Body = string(body)
		return nil
	}
}

// flattenHeaders keeps the first value per key for the single-value
// header map; the multi-value map preserves the rest.
func flattenHeaders(h http.Header) map[string]string {
	if len(h) == 0 {
		return nil
	}
	flat := make(map[string]string, len(h))
	for key := range h {
		flat[key] = h.Get(key)
	}
	return flat
}
