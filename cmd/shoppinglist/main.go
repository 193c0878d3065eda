package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/mwhite7112/woodpantry-shoppinglist/internal/api"
	"github.com/mwhite7112/woodpantry-shoppinglist/internal/logging"
	"github.com/mwhite7112/woodpantry-shoppinglist/internal/service"
)

func main() {
	logging.Setup()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	maxLines := api.DefaultMaxLines
	if v := os.Getenv("MAX_LINES"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			slog.Error("invalid MAX_LINES", "value", v, "error", err)
			os.Exit(1)
		}
		maxLines = n
	}

	readTimeout := 15 * time.Second
	if v := os.Getenv("READ_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			slog.Error("invalid READ_TIMEOUT", "error", err)
			os.Exit(1)
		}
		readTimeout = d
	}

	svc := service.New(nil)
	handler := api.NewRouter(svc, maxLines)

	addr := fmt.Sprintf(":%s", port)
	srv := &http.Server{
		Addr:        addr,
		Handler:     handler,
		ReadTimeout: readTimeout,
	}

	slog.Info("shopping list service listening", "addr", addr, "max_lines", maxLines)
	if err := srv.ListenAndServe(); err != nil {
		slog.Error("server error", "error", err)
		os.Exit(1)
	}
}
