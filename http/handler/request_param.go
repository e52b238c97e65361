package handler

import (
	"fmt"
	"net/http"

	"github.com/xy-planning-network/hello"
	"github.com/xy-planning-network/hello/http/req"
	"github.com/xy-planning-network/hello/http/resp"
	"github.com/xy-planning-network/hello/http/router"
)

// RequestParamRoutes lists the Routes binding request parameters.
// The Routes accept requests of any method.
func (h *Handler) RequestParamRoutes() []router.Route {
	return []router.Route{
		{Path: "/request-param-v1", Handler: http.HandlerFunc(h.requestParamV1)},
		{Path: "/request-param-v2", Handler: http.HandlerFunc(h.requestParamV2)},
		{Path: "/request-param-v3", Handler: h.params(h.schemas.v3, "username", "age")},
		{Path: "/request-param-v4", Handler: h.params(h.schemas.v4, "username", "age")},
		{Path: "/request-param-required", Handler: h.params(h.schemas.required, "username", "age")},
		{Path: "/request-param-default", Handler: h.params(h.schemas.defaulted, "username", "age")},
		{Path: "/request-param-map", Handler: http.HandlerFunc(h.requestParamMap)},
		{Path: "/model-attribute-v1", Handler: http.HandlerFunc(h.modelAttribute)},
		{Path: "/model-attribute-v2", Handler: http.HandlerFunc(h.modelAttribute)},
	}
}

// requestParamV1 reads the parameters and writes the response body itself.
func (h *Handler) requestParamV1(w http.ResponseWriter, r *http.Request) {
	pl, err := req.FromRequest(r)
	if err != nil {
		h.Fail(w, r, err)
		return
	}

	vals, err := h.parser.ParseParams(pl, h.schemas.v1)
	if err != nil {
		h.Fail(w, r, err)
		return
	}

	h.logHello(r, vals.String("username"), vals.Int("age"))
	fmt.Fprint(w, okBody)
}

// requestParamV2 binds "username" and "age" to memberName and memberAge.
func (h *Handler) requestParamV2(w http.ResponseWriter, r *http.Request) {
	pl, err := req.FromRequest(r)
	if err != nil {
		h.Fail(w, r, err)
		return
	}

	vals, err := h.parser.ParseParams(pl, h.schemas.v2)
	if err != nil {
		h.Fail(w, r, err)
		return
	}

	h.logHello(r, vals.String("memberName"), vals.Int("memberAge"))
	h.ok(w, r)
}

// params constructs a handler decoding the parameters of s and logging the values stored under username and age.
func (h *Handler) params(s req.Schema, username, age string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		pl, err := req.FromRequest(r)
		if err != nil {
			h.Fail(w, r, err)
			return
		}

		vals, err := h.parser.ParseParams(pl, s)
		if err != nil {
			h.Fail(w, r, err)
			return
		}

		h.logHello(r, vals[username], vals[age])
		h.ok(w, r)
	})
}

// requestParamMap collects every parameter into a map.
func (h *Handler) requestParamMap(w http.ResponseWriter, r *http.Request) {
	pl, err := req.FromRequest(r)
	if err != nil {
		h.Fail(w, r, err)
		return
	}

	vals, err := h.parser.ParseParams(pl, h.schemas.paramMap)
	if err != nil {
		h.Fail(w, r, err)
		return
	}

	m := vals.Map("paramMap")
	h.logHello(r, m["username"], m["age"])
	h.ok(w, r)
}

// modelAttribute binds the parameters onto a hello.HelloData.
func (h *Handler) modelAttribute(w http.ResponseWriter, r *http.Request) {
	pl, err := req.FromRequest(r)
	if err != nil {
		h.Fail(w, r, err)
		return
	}

	var data hello.HelloData
	if err := h.parser.Bind(pl, h.schemas.model, &data); err != nil {
		h.Fail(w, r, err)
		return
	}

	h.logHello(r, data.Username, data.Age)
	h.ok(w, r)
}

// ok responds with the plain text "ok".
func (h *Handler) ok(w http.ResponseWriter, r *http.Request) {
	if err := h.Text(w, r, resp.Data(okBody)); err != nil {
		h.Err(w, r, err)
	}
}
