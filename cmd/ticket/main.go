// cmd/ticket/main.go

// 本程式建立一張機票，設定乘客、里程與菁英會員身分後輸出票價。

package main

import (
	"io"
	"log/slog"
	"os"

	"records/internal/buildinfo"
	"records/internal/config"
	"records/internal/ticket"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("load config", "error", err)
		os.Exit(1)
	}
	logger := buildinfo.Start(os.Stderr, "ticket", cfg.Debug)

	run(os.Stdout, logger)
}

func run(w io.Writer, logger *slog.Logger) {
	tk := ticket.New()
	tk.SetPassengerName("John Doe")
	tk.SetMiles(1500)
	tk.SetElite(true)
	logger.Debug("ticket priced", "passenger", tk.PassengerName(), "price", tk.PriceInDollars().String())

	if err := tk.Fprint(w); err != nil {
		logger.Error("display ticket", "error", err)
	}
}
