//go:build js && wasm

package cookie

import "syscall/js"

// Document reads the page's document.cookie.
type Document struct{}

func (Document) CookieString() string {
	doc := js.Global().Get("document")
	if doc.IsUndefined() || doc.IsNull() {
		return ""
	}
	v := doc.Get("cookie")
	if v.Type() != js.TypeString {
		return ""
	}
	return v.String()
}
