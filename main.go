// go_ytsum summarizes YouTube videos with an OpenAI-compatible chat model.
//
// ytsum <url> prints a markdown summary built from the video's captions.
// ytsum transcript <url> prints the timestamped transcript the model sees.
// ytsum serve exposes both as MCP tools over HTTP or stdio.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cmd := newRootCommand(newApp())
	if err := cmd.ExecuteContext(ctx); err != nil {
		if !errors.Is(err, context.Canceled) {
			fmt.Fprintln(os.Stderr, err)
		}
		stop()
		os.Exit(1)
	}
}
