package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"go.uber.org/zap"

	"server-faker/internal/metrics"
)

func main() {
	var (
		endpoint = flag.String("endpoint", "http://localhost:8080/metrics", "Collection endpoint to push samples to")
		agents   = flag.Int("agents", 4, "Number of fake server agents to run")
		interval = flag.Duration("interval", 10*time.Second, "Push interval per agent")
	)
	flag.Parse()

	if *agents <= 0 {
		fmt.Fprintln(os.Stderr, "❌ agents must be positive")
		os.Exit(1)
	}

	logger, err := zap.NewDevelopment()
	if err != nil {
		fmt.Fprintf(os.Stderr, "❌ failed to build logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()
	log := logger.Sugar()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	agent := &metrics.Agent{
		Endpoint: *endpoint,
		Client:   &http.Client{Timeout: 5 * time.Second},
		Log:      log,
	}

	log.Infow("starting fake agents", "count", *agents, "endpoint", *endpoint, "interval", *interval)
	var wg sync.WaitGroup
	for i := 1; i <= *agents; i++ {
		serverID := fmt.Sprintf("srv-%03d", i)
		wg.Add(1)
		go func() {
			defer wg.Done()
			agent.Run(ctx, serverID, *interval)
		}()
	}
	wg.Wait()
	log.Info("shutting down")
}
