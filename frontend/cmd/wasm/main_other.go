//go:build !(js && wasm)

package main

import (
	"os"

	"github.com/learnsphere-dev/learnsphere/shared/logger"
)

func main() {
	logger.Log.Error("the browser bridge only runs in a browser; build it with GOOS=js GOARCH=wasm")
	os.Exit(2)
}
