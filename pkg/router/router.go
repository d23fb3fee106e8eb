package router

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
)

type HandlerFunc[Request, Response any] func(ctx context.Context, req *Request) (*Response, error)

// MiddlewareFunc runs before the handler. A non-nil error stops the chain and
// is sent to the client.
type MiddlewareFunc func(ctx context.Context) (context.Context, error)

// CloserFunc runs after the handler, even if the handler or a middleware
// failed. The outcome is available through xcontext.Error and
// xcontext.Response.
type CloserFunc func(ctx context.Context)

type Router struct {
	ctx     context.Context
	inner   gin.IRouter
	engine  *gin.Engine
	befores []MiddlewareFunc
	closers []CloserFunc
}

// New creates a router whose handlers see every value stored in ctx (configs,
// logger, database) together with the cancellation of the incoming request.
func New(ctx context.Context) *Router {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(gin.Recovery())

	return &Router{ctx: ctx, inner: engine, engine: engine}
}

func GET[Request, Response any](r *Router, pattern string, handler HandlerFunc[Request, Response]) {
	route(r, http.MethodGet, pattern, handler)
}

func POST[Request, Response any](r *Router, pattern string, handler HandlerFunc[Request, Response]) {
	route(r, http.MethodPost, pattern, handler)
}

// Branch returns a child router sharing the parent's middlewares. Middlewares
// added to the child do not affect the parent.
func (r *Router) Branch() *Router {
	return &Router{
		ctx:     r.ctx,
		inner:   r.inner,
		engine:  r.engine,
		befores: append([]MiddlewareFunc(nil), r.befores...),
		closers: append([]CloserFunc(nil), r.closers...),
	}
}

func (r *Router) Before(m MiddlewareFunc) {
	r.befores = append(r.befores, m)
}

func (r *Router) AddCloser(c CloserFunc) {
	r.closers = append(r.closers, c)
}

// Handle registers a raw http.Handler, e.g. the prometheus exporter.
func (r *Router) Handle(method, pattern string, h http.Handler) {
	r.inner.Handle(method, pattern, gin.WrapH(h))
}

func (r *Router) Handler() http.Handler {
	return r.engine
}
