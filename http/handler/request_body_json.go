package handler

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/xy-planning-network/hello"
	"github.com/xy-planning-network/hello/http/req"
	"github.com/xy-planning-network/hello/http/resp"
	"github.com/xy-planning-network/hello/http/router"
)

const jsonContentType = "application/json"

// RequestBodyJSONRoutes lists the Routes decoding JSON bodies.
// The Routes accept POST requests.
func (h *Handler) RequestBodyJSONRoutes() []router.Route {
	post := []string{http.MethodPost}
	return []router.Route{
		{Path: "/request-body-json-v1", Methods: post, Handler: http.HandlerFunc(h.requestBodyJSONV1)},
		{Path: "/request-body-json-v2", Methods: post, Handler: http.HandlerFunc(h.requestBodyJSONV2)},
		{Path: "/request-body-json-v3", Methods: post, Handler: http.HandlerFunc(h.requestBodyJSONV3)},
		{Path: "/request-body-json-v4", Methods: post, Handler: http.HandlerFunc(h.requestBodyJSONV4)},
		{Path: "/request-body-json-v5", Methods: post, Handler: http.HandlerFunc(h.requestBodyJSONV5)},
	}
}

// requestBodyJSONV1 reads the raw body, parses it as JSON and writes the response body itself.
func (h *Handler) requestBodyJSONV1(w http.ResponseWriter, r *http.Request) {
	data, err := h.rawHello(r, true)
	if err != nil {
		h.Fail(w, r, err)
		return
	}

	h.logHello(r, data.Username, data.Age)
	fmt.Fprint(w, okBody)
}

// requestBodyJSONV2 reads the raw body and parses it as JSON.
func (h *Handler) requestBodyJSONV2(w http.ResponseWriter, r *http.Request) {
	data, err := h.rawHello(r, false)
	if err != nil {
		h.Fail(w, r, err)
		return
	}

	h.logHello(r, data.Username, data.Age)
	h.ok(w, r)
}

// requestBodyJSONV3 decodes the body into a hello.HelloData.
func (h *Handler) requestBodyJSONV3(w http.ResponseWriter, r *http.Request) {
	data, err := h.bodyHello(r)
	if err != nil {
		h.Fail(w, r, err)
		return
	}

	h.logHello(r, data.Username, data.Age)
	h.ok(w, r)
}

// requestBodyJSONV4 decodes the body alongside its headers.
func (h *Handler) requestBodyJSONV4(w http.ResponseWriter, r *http.Request) {
	pl, err := req.FromRequest(r)
	if err != nil {
		h.Fail(w, r, err)
		return
	}

	e, err := req.ParseEntity[hello.HelloData](h.parser, pl)
	if err != nil {
		h.Fail(w, r, err)
		return
	}

	h.logHello(r, e.Body.Username, e.Body.Age)
	h.ok(w, r)
}

// requestBodyJSONV5 decodes the body into a hello.HelloData and responds with it.
func (h *Handler) requestBodyJSONV5(w http.ResponseWriter, r *http.Request) {
	data, err := h.bodyHello(r)
	if err != nil {
		h.Fail(w, r, err)
		return
	}

	h.logHello(r, data.Username, data.Age)
	if err := h.Json(w, r, resp.Data(data)); err != nil {
		h.Err(w, r, err)
	}
}

// rawHello reads the body of r as text and parses that text as JSON.
// When logBody is set, rawHello logs the text.
func (h *Handler) rawHello(r *http.Request, logBody bool) (hello.HelloData, error) {
	pl, err := req.FromRequest(r)
	if err != nil {
		return hello.HelloData{}, err
	}

	body, err := h.parser.ParseRaw(pl)
	if err != nil {
		return hello.HelloData{}, err
	}

	if logBody {
		h.logger.Info("messageBody = "+body, nil)
	}

	var data hello.HelloData
	if err := h.parser.ParseBody(req.NewPayload(nil, jsonContentType, strings.NewReader(body)), &data); err != nil {
		return hello.HelloData{}, err
	}

	return data, nil
}

// bodyHello decodes the JSON body of r into a hello.HelloData.
func (h *Handler) bodyHello(r *http.Request) (hello.HelloData, error) {
	pl, err := req.FromRequest(r)
	if err != nil {
		return hello.HelloData{}, err
	}

	var data hello.HelloData
	if err := h.parser.ParseBody(pl, &data); err != nil {
		return hello.HelloData{}, err
	}

	return data, nil
}
