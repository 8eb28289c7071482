// Package lambda adapts the dispatcher to AWS Lambda behind API
// Gateway proxy integration. The factory converts proxy events into
// the normalized request shape and commits responses back into the
// proxy response returned to the Lambda runtime.
//
//	app := dispatcher.New(lambda.Factory())
//	lambda.Start(app.Use(handleOrder))
package lambda
