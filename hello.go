/*
Package hello is a sample HTTP service showing the ways a handler
can pull request parameters and JSON bodies into typed values.

The decoding itself lives in [github.com/xy-planning-network/hello/http/req];
the handlers exercising each variant live in [github.com/xy-planning-network/hello/http/handler].
*/
package hello

// HelloData is the username and age pair every endpoint decodes a request into.
type HelloData struct {
	Username string `json:"username" schema:"username"`
	Age      int    `json:"age" schema:"age"`
}
