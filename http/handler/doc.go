/*
Package handler holds the HTTP handlers of hello.

Each handler decodes a username and an age out of the request a different way,
logs them and responds.
The request parameter handlers bind query and form parameters:

	/request-param-v1          read straight off the request
	/request-param-v2          parameters bound to differently named variables
	/request-param-v3          variables named after the parameters
	/request-param-v4          as v3, parameters not required
	/request-param-required    username required, age optional
	/request-param-default     defaults used when parameters are absent or empty
	/request-param-map         every parameter collected into a map
	/model-attribute-v1        parameters bound onto a hello.HelloData
	/model-attribute-v2        as v1

The request body handlers decode JSON bodies posted to them:

	/request-body-json-v1      raw body, parsed as JSON afterwards
	/request-body-json-v2      as v1, responding through the Responder
	/request-body-json-v3      body decoded into a hello.HelloData
	/request-body-json-v4      body decoded alongside its headers
	/request-body-json-v5      as v3, echoing the hello.HelloData back as JSON

A request the handlers cannot decode receives a 400 Bad Request
describing the failure in JSON.
*/
package handler
