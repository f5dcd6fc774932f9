// cmd/employee/main.go

// 本程式以固定流程示範 Record：設定姓名、編號與薪資，加薪兩次、設為在職後輸出摘要。
// 預設加薪額可由 records.yaml 或 RECORDS_RAISE_AMOUNT 調整。

package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"records/internal/buildinfo"
	"records/internal/config"
	"records/internal/record"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("load config", "error", err)
		os.Exit(1)
	}
	logger := buildinfo.Start(os.Stderr, "employee", cfg.Debug)

	run(os.Stdout, logger, cfg)
}

// run 執行固定的員工流程並將結果寫入 w。
func run(w io.Writer, logger *slog.Logger, cfg config.Config) {
	fmt.Fprintln(w, "Testing the Employee class.")

	emp := record.NewDefault(
		record.WithDefaultRaise(cfg.RaiseAmount),
		record.WithDefaultDemerit(cfg.DemeritAmount),
	)
	emp.SetFirstName("John")
	emp.SetLastName("Doe")
	emp.SetNumericID(71)
	emp.SetBalance(50000)
	emp.Promote()
	emp.Promote(50)
	emp.Hire()
	logger.Debug("employee ready", "id", emp.NumericID(), "salary", emp.Balance())

	if err := emp.Fprint(w); err != nil {
		logger.Error("display employee", "error", err)
	}
}
