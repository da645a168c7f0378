// Package http is the transport layer: the router seam, the server and
// return style handlers that always answer with a pnet.Envelope.
package http

import (
	stdhttp "net/http"

	pnet "layoffs/internal/platform/net"
	"layoffs/internal/platform/net/http/bind"
)

// Envelope is the body every handler writes
type Envelope = pnet.Envelope

// Response is what a return style handler produces. A Body that is an error
// decides the status on its own.
type Response struct {
	Status int
	Body   any
	Header stdhttp.Header
}

// OK is a 200 carrying data
func OK(data any) Response { return Response{Status: stdhttp.StatusOK, Body: data} }

// NoContent is an empty 204
func NoContent() Response { return Response{Status: stdhttp.StatusNoContent} }

// Error answers with err's mapped status
func Error(err error) Response { return Response{Body: err} }

// Result folds a handler's (out, err) pair; an out that is already a
// Response passes through
func Result(out any, err error) Response {
	if err != nil {
		return Error(err)
	}
	if resp, ok := out.(Response); ok {
		return resp
	}
	return OK(out)
}

// WithCookie copies resp and adds a Set-Cookie for c
func (resp Response) WithCookie(c *stdhttp.Cookie) Response {
	h := resp.Header.Clone()
	if h == nil {
		h = stdhttp.Header{}
	}
	if v := c.String(); v != "" {
		h.Add("Set-Cookie", v)
	}
	resp.Header = h
	return resp
}

func (resp Response) write(w stdhttp.ResponseWriter, r *stdhttp.Request) {
	for k, vv := range resp.Header {
		for _, v := range vv {
			w.Header().Add(k, v)
		}
	}
	reqID := pnet.RequestID(r.Context())

	if err, ok := resp.Body.(error); ok && err != nil {
		status, env := pnet.Fail(err, reqID)
		pnet.WriteJSON(w, status, env)
		return
	}
	status := resp.Status
	switch status {
	case 0:
		status = stdhttp.StatusOK
	case stdhttp.StatusNoContent:
		w.WriteHeader(status)
		return
	}
	pnet.WriteJSON(w, status, pnet.Reply(status, resp.Body, reqID))
}

// Handle serves a Response returning function
func Handle(h func(*stdhttp.Request) Response) Handler {
	return func(w stdhttp.ResponseWriter, r *stdhttp.Request) { h(r).write(w, r) }
}

// Call serves fn, which reads nothing from the body
func Call(fn func(*stdhttp.Request) (any, error)) Handler {
	return Handle(func(r *stdhttp.Request) Response { return Result(fn(r)) })
}

// Bind decodes and validates a T from the body before calling fn;
// fn never runs on a bad body
func Bind[T any](fn func(*stdhttp.Request, T) (any, error)) Handler {
	return Handle(func(r *stdhttp.Request) Response {
		in, err := bind.ParseJSON[T](r)
		if err != nil {
			return Error(err)
		}
		return Result(fn(r, in))
	})
}
