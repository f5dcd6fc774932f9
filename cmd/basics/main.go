// cmd/basics/main.go

// 本程式依序示範指標、堆積配置、共享所有權、陣列解構、可變參數加總與複合字面值初始化。
// 輸出固定，不印出實際記憶體位址，只比較位址是否相同。

package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"records/internal/buildinfo"
	"records/internal/calc"
	"records/internal/config"
	"records/internal/record"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("load config", "error", err)
		os.Exit(1)
	}
	logger := buildinfo.Start(os.Stderr, "basics", cfg.Debug)

	run(os.Stdout, logger)
}

func run(w io.Writer, logger *slog.Logger) {
	pointers(w)
	heap(w)
	shared(w)
	destructure(w)
	initialize(w)
	logger.Debug("basics done")
}

// pointers：透過指標讀寫變數。
func pointers(w io.Writer) {
	var ptr *int
	fmt.Fprintln(w, "Pointer is nil:", ptr == nil)

	v := 42
	ptr = &v
	fmt.Fprintln(w, "Value of v:", *ptr)

	*ptr = 100
	fmt.Fprintln(w, "New value of v:", v)
	fmt.Fprintln(w, "Same address after write:", ptr == &v)
}

// heap：以 new 與 make 配置，交由 GC 回收，不需成對釋放。
func heap(w io.Writer) {
	n := new(int)
	*n = 7
	fmt.Fprintln(w, "Heap int:", *n)

	arr := make([]int, 5)
	for i := range arr {
		arr[i] = i * 10
	}
	fmt.Fprintln(w, "Values in array:", arr)
}

// shared：多個持有者指向同一筆 Record，任一方修改皆可見。
func shared(w io.Writer) {
	owner := record.New("Ada", "Lovelace")
	alias := owner
	alias.AdjustBalance(30)
	fmt.Fprintln(w, "Shared balance:", owner.Balance())

	copied := *owner
	copied.AdjustBalance(30)
	fmt.Fprintln(w, "Owner balance after copy change:", owner.Balance())
}

// destructure：陣列逐一指派給多個變數，並以可變參數加總。
func destructure(w io.Writer) {
	arr := [3]int{1, 2, 3}
	a, b, c := arr[0], arr[1], arr[2]
	fmt.Fprintf(w, "a: %d, b: %d, c: %d\n", a, b, c)
	fmt.Fprintln(w, "Sum:", calc.Sum(1, 2, 3, 4, 5))
}

// initialize：複合字面值與型別推導。
func initialize(w io.Writer) {
	a := 5
	b := 3.14
	c := "Hello, World!"
	fmt.Fprintf(w, "a: %d\nb: %.2f\nc: %s\n", a, b, c)
}
