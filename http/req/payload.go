package req

import (
	"io"
	"mime"
	"net/http"
	"net/url"
)

// DefaultMaxMemory is the maximum memory used for parsing multipart forms (10MB).
const DefaultMaxMemory = 10 << 20

// A Payload is the raw data of one inbound request.
//
// A Payload is meant to be decoded by a [Parser] once and thrown away.
// It is not safe for concurrent use.
type Payload struct {
	// Params maps a parameter name to one or many values,
	// taken from the query string and a form-encoded body.
	Params url.Values

	// Header holds the request headers.
	Header http.Header

	// ContentType is the declared "Content-Type" of the body, if any.
	ContentType string

	body io.Reader
	read bool
}

// NewPayload constructs a *Payload from its parts.
// A nil body reads as empty.
func NewPayload(params url.Values, contentType string, body io.Reader) *Payload {
	if params == nil {
		params = make(url.Values)
	}

	h := make(http.Header)
	if contentType != "" {
		h.Set("Content-Type", contentType)
	}

	return &Payload{Params: params, Header: h, ContentType: contentType, body: body}
}

// FromRequest constructs a *Payload from r.
//
// Params merges the query string with the body when the body is
// "application/x-www-form-urlencoded" or "multipart/form-data".
// Parsing such a body consumes it, so it cannot be read again as raw bytes.
// Any other body is left untouched until a [Parser] reads it.
func FromRequest(r *http.Request) (*Payload, error) {
	ct := r.Header.Get("Content-Type")
	p := &Payload{
		Header:      r.Header.Clone(),
		ContentType: ct,
		body:        r.Body,
	}

	mt, _, _ := mime.ParseMediaType(ct)
	switch mt {
	case "application/x-www-form-urlencoded":
		if err := r.ParseForm(); err != nil {
			return nil, malformedBody("cannot parse form: %s", err)
		}

		p.Params = r.Form
		p.read = hasFormBody(r.Method)

	case "multipart/form-data":
		if err := r.ParseMultipartForm(DefaultMaxMemory); err != nil {
			return nil, malformedBody("cannot parse multipart form: %s", err)
		}

		p.Params = r.Form
		p.read = true

	default:
		p.Params = r.URL.Query()
	}

	if p.Params == nil {
		p.Params = make(url.Values)
	}

	return p, nil
}

// ReadBody reads the entire body.
// The body can be read once; later calls fail with [MalformedBody].
func (p *Payload) ReadBody() ([]byte, error) {
	return p.readBody(-1)
}

// readBody reads the body, failing if it holds more than limit bytes.
// A negative limit reads without bound.
func (p *Payload) readBody(limit int64) ([]byte, error) {
	if p.read {
		return nil, malformedBody("body already consumed")
	}

	p.read = true
	if p.body == nil {
		return nil, nil
	}

	src := p.body
	if limit >= 0 {
		src = io.LimitReader(p.body, limit+1)
	}

	b, err := io.ReadAll(src)
	if err != nil {
		return nil, malformedBody("cannot read body: %s", err)
	}

	if limit >= 0 && int64(len(b)) > limit {
		return nil, malformedBody("body exceeds %d bytes", limit)
	}

	return b, nil
}

// hasFormBody reports whether [http.Request.ParseForm] reads the body for the method.
func hasFormBody(method string) bool {
	switch method {
	case http.MethodPost, http.MethodPut, http.MethodPatch:
		return true
	default:
		return false
	}
}
