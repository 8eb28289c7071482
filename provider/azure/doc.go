// Package azure adapts the dispatcher to Azure Functions custom
// handlers. The Functions runtime posts an invoke payload to the
// handler process over HTTP; the factory decodes the HTTP input binding
// into the normalized request shape and the commit path fills the HTTP
// output binding of the reply.
//
//	app := dispatcher.New(azure.Factory())
//
//	host, err := azure.NewHostFromEnv()
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	mux := http.NewServeMux()
//	mux.Handle("/hello", azure.Handler(app.Use(handleHello)))
//	host.Start(ctx, mux)
package azure
