// cmd/employee/main_test.go
//
// 本檔驗證 employee 程式的固定流程輸出。
// 直接呼叫 run 並以 bytes.Buffer 擷取輸出，日誌導向 io.Discard。
package main

import (
	"bytes"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"records/internal/config"
)

// discardLogger 回傳不輸出任何內容的 logger。
func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// TestRun 驗證預設加薪額（1000）下的完整輸出：50000 + 1000 + 50。
func TestRun(t *testing.T) {
	var out bytes.Buffer
	run(&out, discardLogger(), config.Config{RaiseAmount: 1000, DemeritAmount: 1000})

	want := "Testing the Employee class.\n" +
		"Employee: Doe, John\n" +
		"------------------------------\n" +
		"Current Employee\n" +
		"Employee Number: 71\n" +
		"Salary: $51050\n\n"
	assert.Equal(t, want, out.String())
}

// TestRunCustomRaise 驗證設定的加薪額會套用到 Promote()。
func TestRunCustomRaise(t *testing.T) {
	var out bytes.Buffer
	run(&out, discardLogger(), config.Config{RaiseAmount: 10})
	assert.Contains(t, out.String(), "Salary: $50060\n")
}

// TestRunZeroRaise 驗證加薪額設為 0 時只剩明確的 50 元調整。
func TestRunZeroRaise(t *testing.T) {
	var out bytes.Buffer
	run(&out, discardLogger(), config.Config{RaiseAmount: 0, DemeritAmount: 1000})
	assert.Contains(t, out.String(), "Salary: $50050\n")
}
