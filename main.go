/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package main

import (
	"os"

	"github.com/josephgoksu/todo/cmd"
	"github.com/josephgoksu/todo/internal/logger"
)

func main() {
	code := run()
	os.Exit(code)
}

// run is separate from main so the deferred panic handler runs before os.Exit.
func run() int {
	defer logger.HandlePanic()
	return cmd.Execute()
}
