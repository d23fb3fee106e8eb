package router

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/moonticket/backend/pkg/errorx"
	"github.com/moonticket/backend/pkg/xcontext"
)

func route[Request, Response any](
	r *Router,
	method, pattern string,
	handler HandlerFunc[Request, Response],
) {
	befores := r.befores
	closers := r.closers

	r.inner.Handle(method, pattern, func(c *gin.Context) {
		var ctx context.Context = requestContext{Context: c.Request.Context(), values: r.ctx}
		ctx = xcontext.WithHTTPRequest(ctx, c.Request)
		ctx = xcontext.WithStartTime(ctx, time.Now())

		ctx = serve(ctx, c, method, befores, handler)
		for _, closer := range closers {
			closer(ctx)
		}

		writeResponse(ctx, c)
	})
}

func serve[Request, Response any](
	ctx context.Context,
	c *gin.Context,
	method string,
	befores []MiddlewareFunc,
	handler HandlerFunc[Request, Response],
) context.Context {
	for _, before := range befores {
		newCtx, err := before(ctx)
		if err != nil {
			return xcontext.WithError(ctx, err)
		}
		ctx = newCtx
	}

	req := new(Request)
	if err := bind(c, method, req); err != nil {
		xcontext.Logger(ctx).Debugf("Cannot bind the request: %v", err)
		return xcontext.WithError(ctx, errorx.New(errorx.BadRequest, "Invalid request"))
	}

	resp, err := handler(ctx, req)
	if err != nil {
		return xcontext.WithError(ctx, err)
	}

	return xcontext.WithResponse(ctx, resp)
}

func bind(c *gin.Context, method string, req any) error {
	switch method {
	case http.MethodGet:
		return c.ShouldBindQuery(req)
	case http.MethodPost:
		if c.Request.ContentLength == 0 {
			return nil
		}
		return c.ShouldBindJSON(req)
	}

	return errors.New("unsupported method")
}
