package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	c, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := newRootCommand().ExecuteContext(c)
	if err != nil {
		stop()
		os.Exit(1)
	}
}
