package resp

import (
	"fmt"
	"net/http"
	"net/url"
)

// A Fn is a functional option that mutates the state of the Response.
type Fn func(Responder, *Response) error

// A Response is the internal object a Responder response method builds while applying all
// functional options.
type Response struct {
	w    http.ResponseWriter
	r    *http.Request
	body []byte
	code int
	data map[string]any
	url  *url.URL
}

// Body sets the bytes written by Responder.Html.
func Body(b []byte) Fn {
	return func(_ Responder, r *Response) error {
		r.body = b
		return nil
	}
}

// Code sets the response status code.
func Code(c int) Fn {
	return func(_ Responder, r *Response) error {
		r.code = c
		return nil
	}
}

// Data adds key-value pairs logged alongside errors.
func Data(d map[string]any) Fn {
	return func(_ Responder, r *Response) error {
		if r.data == nil {
			r.data = make(map[string]any, len(d))
		}

		for k, v := range d {
			r.data[k] = v
		}

		return nil
	}
}

// Err logs the error and, unless Code set one already, sets the status code http.StatusInternalServerError.
// Client errors are logged as warnings.
func Err(e error) Fn {
	return func(d Responder, r *Response) error {
		if r.code == 0 {
			r.code = http.StatusInternalServerError
		}

		if e == nil {
			return nil
		}

		if r.code < http.StatusInternalServerError {
			d.logger.Warn(e.Error(), newLogContext(r.r, e, r.data))
		} else {
			d.logger.Error(e.Error(), newLogContext(r.r, e, r.data))
		}

		return nil
	}
}

// Param adds the query parameter to the response's URL.
//
// Used with Responder.Redirect.
func Param(key, val string) Fn {
	return func(_ Responder, r *Response) error {
		if r.url == nil {
			return fmt.Errorf("%w: Url() has not been called", ErrMissingData)
		}

		q := r.url.Query()
		q.Add(key, val)
		r.url.RawQuery = q.Encode()
		return nil
	}
}

// ToRoot calls Url with the Responder's default, root URL.
func ToRoot() Fn {
	return func(d Responder, r *Response) error {
		if d.rootUrl != nil {
			u := *d.rootUrl
			r.url = &u
		}

		return nil
	}
}

// Url parses the raw URL string and sets it in the *Response if successful.
// Relative references are kept as they are.
//
// Used with Responder.Redirect.
func Url(u string) Fn {
	return func(_ Responder, r *Response) error {
		parsed, err := url.Parse(u)
		if err != nil {
			return fmt.Errorf("%w: u is not a valid URL: %v", ErrInvalid, err)
		}

		r.url = parsed
		return nil
	}
}
