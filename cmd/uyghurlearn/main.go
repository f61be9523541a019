// cmd/uyghurlearn/main.go
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/dalemusser/waffle/app"
	"github.com/uyghurconnect/uyghurlearn/internal/app/bootstrap"
)

func main() {
	if err := app.Run(context.Background(), bootstrap.Hooks); err != nil {
		fmt.Fprintf(os.Stderr, "uyghurlearn: %v\n", err)
		os.Exit(1)
	}
}
