package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"githubActivityFeed/internal/config"
	"githubActivityFeed/internal/events"
	"githubActivityFeed/internal/github"
	"githubActivityFeed/internal/logger"
	"githubActivityFeed/internal/store"

	"go.uber.org/zap"
)

func main() {
	cfg := config.Load()
	logger.InitLogger(cfg.LogLevel)
	defer logger.Lg.Sync()

	ctx := context.Background()
	db, rdb, err := store.Open(ctx, cfg)
	if err != nil {
		// cache and history are optional, carry on without them
		logger.Lg.Error("store open", zap.Error(err))
		db, rdb = nil, nil
	}
	defer store.Close(db, rdb)

	client := github.NewClient(cfg.GitHubURL, github.WithTimeout(cfg.HTTPTimeout))
	svc := events.NewService(client, events.NewRepo(db, rdb), cfg.ReportCacheTTL)

	if err := run(ctx, os.Stdin, os.Stdout, svc); err != nil {
		logger.Lg.Error("run", zap.Error(err))
	}
}

// run prompts for one username and prints its feed.
func run(ctx context.Context, in io.Reader, out io.Writer, svc events.Service) error {
	fmt.Fprint(out, "Enter GitHub username: ")
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && err != io.EOF {
		return fmt.Errorf("read username: %w", err)
	}
	username := strings.TrimRight(line, "\r\n")
	return svc.Write(ctx, out, username)
}
