// cmd/basics/main_test.go
//
// 本檔驗證 basics 程式的輸出；所有示範皆為確定性輸出，不含記憶體位址。
package main

import (
	"bytes"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestRun 逐行比對各段示範的輸出。
func TestRun(t *testing.T) {
	var out bytes.Buffer
	run(&out, slog.New(slog.NewTextHandler(io.Discard, nil)))

	want := "Pointer is nil: true\n" +
		"Value of v: 42\n" +
		"New value of v: 100\n" +
		"Same address after write: true\n" +
		"Heap int: 7\n" +
		"Values in array: [0 10 20 30 40]\n" +
		"Shared balance: 30\n" +
		"Owner balance after copy change: 30\n" +
		"a: 1, b: 2, c: 3\n" +
		"Sum: 15\n" +
		"a: 5\n" +
		"b: 3.14\n" +
		"c: Hello, World!\n"
	assert.Equal(t, want, out.String())
}
