//go:build js && wasm

// Command wasm exposes the cookie reader and the API client to page script as
// globalThis.learnsphere:
//
//	learnsphere.readCookie(name)          string or null
//	learnsphere.csrfToken()               string or null
//	learnsphere.api.get(endpoint, token)  Promise
//	learnsphere.api.post(endpoint, data, token)  Promise
//
// The API origin is resolved once at start, from globalThis.learnsphereConfig,
// the serving page's /config.json or the local development origin, in that
// order. A "learnsphere:ready" event fires once the object is in place.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"syscall/js"
	"time"

	"github.com/learnsphere-dev/learnsphere/shared/apiclient"
	"github.com/learnsphere-dev/learnsphere/shared/config"
	"github.com/learnsphere-dev/learnsphere/shared/cookie"
	"github.com/learnsphere-dev/learnsphere/shared/csrf"
	"github.com/learnsphere-dev/learnsphere/shared/logger"
)

func main() {
	client, err := apiclient.New(apiclient.Config{BaseURL: baseURL()})
	if err != nil {
		logger.Log.Error("learnsphere bridge disabled", "error", err)
		return
	}
	cookies := cookie.NewReader(cookie.Document{})

	api := js.Global().Get("Object").New()
	api.Set("get", js.FuncOf(func(this js.Value, args []js.Value) any {
		endpoint, token := stringArg(args, 0), stringArg(args, 1)
		return promise(func(ctx context.Context) (js.Value, error) {
			var raw json.RawMessage
			if err := client.GetInto(ctx, endpoint, token, &raw); err != nil {
				return js.Undefined(), err
			}
			return parseJSON(raw), nil
		})
	}))
	api.Set("post", js.FuncOf(func(this js.Value, args []js.Value) any {
		endpoint, token := stringArg(args, 0), stringArg(args, 2)
		// Serialized before returning, so later mutation of data is not seen.
		data, err := stringify(arg(args, 1))
		if err != nil {
			return rejected(err)
		}
		return promise(func(ctx context.Context) (js.Value, error) {
			var raw json.RawMessage
			if err := client.PostInto(ctx, endpoint, data, token, &raw); err != nil {
				return js.Undefined(), err
			}
			return parseJSON(raw), nil
		})
	}))

	bridge := js.Global().Get("Object").New()
	bridge.Set("api", api)
	bridge.Set("readCookie", js.FuncOf(func(this js.Value, args []js.Value) (v any) {
		defer nullOnPanic(&v)
		value, err := cookies.Get(stringArg(args, 0))
		if err != nil {
			logMissing(err)
			return js.Null()
		}
		return value
	}))
	bridge.Set("csrfToken", js.FuncOf(func(this js.Value, args []js.Value) (v any) {
		defer nullOnPanic(&v)
		token, err := csrf.FromStore(cookies)
		if err != nil {
			logMissing(err)
			return js.Null()
		}
		return token
	}))
	js.Global().Set("learnsphere", bridge)
	logger.Log.Debug("learnsphere bridge ready", "api", client.BaseURL())
	announce()

	select {}
}

// baseURL prefers a page-provided learnsphereConfig.apiBaseURL, then the
// serving dev server's /config.json, then the local development origin.
func baseURL() string {
	cfg := js.Global().Get("learnsphereConfig")
	if cfg.Type() == js.TypeObject {
		if v := cfg.Get("apiBaseURL"); v.Type() == js.TypeString && v.String() != "" {
			return v.String()
		}
	}

	if loc := js.Global().Get("location"); loc.Type() == js.TypeObject {
		if origin := loc.Get("origin"); origin.Type() == js.TypeString {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			served, err := servedBaseURL(ctx, origin.String())
			if err == nil && served != "" {
				return served
			}
			logger.Log.Debug("no served config, using default api origin", "error", err)
		}
	}
	return config.DefaultBaseURL
}

// announce lets page script wait for the bridge with
// addEventListener("learnsphere:ready", ...).
func announce() {
	global := js.Global()
	if global.Get("dispatchEvent").Type() != js.TypeFunction || global.Get("Event").Type() != js.TypeFunction {
		return
	}
	global.Call("dispatchEvent", global.Get("Event").New("learnsphere:ready"))
}

func arg(args []js.Value, i int) js.Value {
	if i < len(args) {
		return args[i]
	}
	return js.Undefined()
}

// stringArg treats undefined, null and non-strings as "".
func stringArg(args []js.Value, i int) string {
	v := arg(args, i)
	if v.Type() != js.TypeString {
		return ""
	}
	return v.String()
}

// stringify hands the page's value to the client as already-encoded JSON so
// it is serialized by the browser exactly like JSON.stringify would. A throw
// (BigInt, cycles) comes back as an error. Values JSON has no text for
// (undefined, functions, symbols) are sent as null.
func stringify(v js.Value) (body json.RawMessage, err error) {
	if v.IsUndefined() {
		return json.RawMessage("null"), nil
	}
	defer func() {
		if r := recover(); r != nil {
			body, err = nil, recovered(r)
		}
	}()
	out := js.Global().Get("JSON").Call("stringify", v)
	if out.Type() != js.TypeString {
		return json.RawMessage("null"), nil
	}
	return json.RawMessage(out.String()), nil
}

func parseJSON(raw json.RawMessage) js.Value {
	return js.Global().Get("JSON").Call("parse", string(raw))
}

// rejection is the value a promise rejects with. Exceptions thrown by page
// code are passed through as thrown.
func rejection(err error) js.Value {
	var thrown js.Error
	if errors.As(err, &thrown) {
		return thrown.Value
	}
	jsErr := js.Global().Get("Error").New(err.Error())
	jsErr.Set("name", errorName(err))
	return jsErr
}

func rejected(err error) js.Value {
	return js.Global().Get("Promise").Call("reject", rejection(err))
}

// nullOnPanic keeps a synchronous bridge call from ending the program; once
// the Go runtime exits every learnsphere function throws.
func nullOnPanic(v *any) {
	if r := recover(); r != nil {
		logger.Log.Error("bridge call failed", "error", recovered(r))
		*v = js.Null()
	}
}

// promise runs fn on its own goroutine; a blocking fetch must not run on the
// event loop callback.
func promise(fn func(ctx context.Context) (js.Value, error)) js.Value {
	executor := js.FuncOf(func(this js.Value, args []js.Value) any {
		resolve, reject := args[0], args[1]
		go func() {
			defer func() {
				if r := recover(); r != nil {
					reject.Invoke(rejection(recovered(r)))
				}
			}()
			v, err := fn(context.Background())
			if err != nil {
				reject.Invoke(rejection(err))
				return
			}
			resolve.Invoke(v)
		}()
		return nil
	})
	defer executor.Release()
	return js.Global().Get("Promise").New(executor)
}
