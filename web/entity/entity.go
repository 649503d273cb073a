// Package entity defines the web layer's response envelope and form bindings.
package entity

// Msg is the JSON envelope used for AJAX responses.
type Msg struct {
	Success bool   `json:"success"`
	Msg     string `json:"msg"`
	Obj     any    `json:"obj"`
}
