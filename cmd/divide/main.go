// cmd/divide/main.go

// 本程式示範錯誤處理：除法在計算前檢查除數，呼叫端以 errors.Is 判斷並回報，不重試。
// 預期中的錯誤只會被回報，程式仍以狀態碼 0 結束。

package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"records/internal/buildinfo"
	"records/internal/calc"
	"records/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("load config", "error", err)
		os.Exit(1)
	}
	logger := buildinfo.Start(os.Stderr, "divide", cfg.Debug)

	run(os.Stdout, logger)
}

func run(w io.Writer, logger *slog.Logger) {
	for _, pair := range [][2]int{{10, 0}, {10, 2}} {
		q, err := calc.Divide(pair[0], pair[1])
		switch {
		case errors.Is(err, calc.ErrDivideByZero):
			logger.Debug("caught divide error", "dividend", pair[0], "divisor", pair[1])
			fmt.Fprintln(w, "Math Error:", err)
		case err != nil:
			logger.Error("unexpected divide error", "error", err)
		default:
			fmt.Fprintln(w, "Success:", q)
		}
	}
}
