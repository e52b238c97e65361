/*
Package req decodes the data of an HTTP request into typed values.

A [Payload] holds the raw data of one request:
its query and form parameters, headers, and a body that can be read once.
A [Parser] decodes a Payload in one of three ways:

  - [Parser.ParseRaw] hands back the body as a UTF-8 string, leaving any further parsing to the caller.
  - [Parser.ParseBody] (and [ParseEntity]) decode a JSON body into a pointer.
  - [Parser.ParseParams] resolves each [Field] of a [Schema] from the parameters into [Values];
    [Parser.Bind] does the same, then populates a struct with the results.

A Schema is built once per route, when the application starts up:

	var helloSchema = req.MustSchema(
		req.String("username", req.Required()),
		req.OptionalInt("age", req.Default("-1")),
	)

When a field does not name the parameter it binds to with [Named],
the field's variable name is the parameter name, matched exactly.

# Defaults and required fields

A default replaces a parameter that is absent or present with an empty value.
A required field without a default fails with [MissingRequired] when absent;
an empty string still counts as present.
Integer fields treat an empty value as absent.

# Failures

Anything wrong with the request itself returns as a *[Failure]
of kind [MissingRequired], [TypeMismatch] or [MalformedBody].
Each unwraps to a sentinel error in package hello,
so callers can check them with [errors.Is] as well as [errors.As].
Errors that are the calling code's fault, such as decoding into a non-pointer,
are never a *Failure.
*/
package req
