package main

import (
	"context"
	"errors"
	"fmt"
	"os"
)

// @title           Meeting Notes API
// @version         1.0
// @description     Upload meeting recordings, get structured notes back, export them as Word or PDF.

// @contact.name   API Support

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @BasePath  /api

func main() {
	cmd := newRootCommand()
	if err := cmd.Execute(); err != nil {
		if !errors.Is(err, context.Canceled) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}
