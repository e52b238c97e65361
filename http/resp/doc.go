/*
The resp package provides a high-level API for responding to HTTP requests
with an easy way to configure the responses application-wide.

resp provides three main ways of responding to an HTTP request:
  - rendering JSON data
  - writing plain text
  - reporting an error, translating a decoding *req.Failure into a 400 Bad Request
*/
package resp
