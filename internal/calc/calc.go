// internal/calc/calc.go

// Package calc 提供示範用的整數運算：先檢查非法輸入再計算的除法，以及可變參數加總。
package calc

import "fmt"

// Divide 回傳 a / b（整數除法，向零截斷）。
// b 為 0 時不進行計算，回傳包裝 ErrDivideByZero 的錯誤，訊息含兩個運算元。
func Divide(a, b int) (int, error) {
	if b == 0 {
		return 0, fmt.Errorf("divide %d by %d: %w", a, b, ErrDivideByZero)
	}
	return a / b, nil
}

// Sum 回傳所有參數的總和；沒有參數時為 0。
func Sum(nums ...int) int {
	sum := 0
	for _, n := range nums {
		sum += n
	}
	return sum
}
