// internal/calc/errors.go
//
// 本檔集中定義 calc 套件的錯誤。
// 呼叫端以 errors.Is 判斷錯誤類別，不做重試或復原。

package calc

import "errors"

var (
	// ErrDivideByZero 代表除數為 0；於計算前即檢出。
	ErrDivideByZero = errors.New("division by zero")
)
