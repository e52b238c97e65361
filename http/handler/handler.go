package handler

import (
	"fmt"
	"net/http"

	"github.com/xy-planning-network/hello"
	"github.com/xy-planning-network/hello/http/req"
	"github.com/xy-planning-network/hello/http/resp"
	"github.com/xy-planning-network/hello/http/router"
	"github.com/xy-planning-network/hello/logger"
)

const (
	okBody  = "ok"
	logTmpl = "username = %s, age = %s"
)

// A Handler exposes the HTTP handlers of hello as methods.
// Every Schema a Handler decodes requests with is built when constructing it.
type Handler struct {
	*resp.Responder

	logger logger.Logger
	parser *req.Parser

	schemas struct {
		v1, v2, v3, v4      req.Schema
		required, defaulted req.Schema
		paramMap            req.Schema
		model               req.Schema
	}
}

// New constructs a *Handler responding with d, decoding with p and logging to l.
//
// New returns an error if a Schema cannot be built.
func New(d *resp.Responder, p *req.Parser, l logger.Logger) (*Handler, error) {
	h := &Handler{Responder: d, logger: l, parser: p}

	var err error
	h.schemas.v1, err = req.NewSchema(req.String("username"), req.Int("age"))
	if err != nil {
		return nil, err
	}

	h.schemas.v2, err = req.NewSchema(
		req.String("memberName", req.Named("username"), req.Required()),
		req.Int("memberAge", req.Named("age"), req.Required()),
	)
	if err != nil {
		return nil, err
	}

	h.schemas.v3, err = req.NewSchema(req.String("username", req.Required()), req.Int("age", req.Required()))
	if err != nil {
		return nil, err
	}

	h.schemas.v4 = h.schemas.v1

	h.schemas.required, err = req.NewSchema(req.String("username", req.Required()), req.OptionalInt("age"))
	if err != nil {
		return nil, err
	}

	h.schemas.defaulted, err = req.NewSchema(
		req.String("username", req.Required(), req.Default("guest")),
		req.Int("age", req.Default("-1")),
	)
	if err != nil {
		return nil, err
	}

	h.schemas.paramMap, err = req.NewSchema(req.Map("paramMap"))
	if err != nil {
		return nil, err
	}

	h.schemas.model, err = req.SchemaOf(new(hello.HelloData))
	if err != nil {
		return nil, err
	}

	return h, nil
}

// Routes lists the Routes of every handler.
func (h *Handler) Routes() []router.Route {
	return append(h.RequestParamRoutes(), h.RequestBodyJSONRoutes()...)
}

// logHello logs the username and age decoded out of r.
func (h *Handler) logHello(r *http.Request, username, age any) {
	h.logger.Info(fmt.Sprintf(logTmpl, display(username), display(age)), &logger.LogContext{
		Data: map[string]any{hello.LogKindKey: "hello", "path": r.URL.Path},
	})
}

// display formats v for logging, printing a nil *int as null.
func display(v any) string {
	switch v := v.(type) {
	case *int:
		if v == nil {
			return "null"
		}
		return fmt.Sprint(*v)
	default:
		return fmt.Sprint(v)
	}
}
