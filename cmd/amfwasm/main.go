//go:build js && wasm

// Command amfwasm exposes Frank/Verify/Judge to a JS host, mirroring the
// teacher's wasm/wasm.go bindings adapted from BBS+ signatures to AMF
// tokens.
package main

func init() {
	Initialize()
}

func main() {
	c := make(chan struct{})
	<-c
}
