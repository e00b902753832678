//go:build js

package ui

import "syscall/js"

// OpenLink opens link in a new browser tab.
func OpenLink(link string) error {
	js.Global().Call("open", link, "_blank")
	return nil
}
