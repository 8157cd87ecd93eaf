// Package clientip resolves the client IP address of a request.
//
// Proxy headers are only honoured when the caller names them, so a service
// reachable without a proxy cannot be fed a spoofed address:
//
//	r.Use(clientip.Middleware(clientip.HeaderCFConnectingIP, clientip.HeaderForwardedFor))
//
// Handlers read the resolved address with Get or FromContext.
package clientip
