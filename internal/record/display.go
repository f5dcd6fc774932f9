// internal/record/display.go
//
// 本檔負責紀錄的文字輸出格式。
// 格式集中於 Fprint，Display 與 String 皆由此產生，確保三者輸出一致。
package record

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// separator 為姓名標題下方的分隔線。
const separator = "------------------------------"

// Status 回傳在職狀態的顯示文字。
func (r *Record) Status() string {
	if r.active {
		return "Current Employee"
	}
	return "Former Employee"
}

// Fprint 將紀錄摘要寫入 w，最後以空行結尾。
func (r *Record) Fprint(w io.Writer) error {
	_, err := fmt.Fprintf(w,
		"Employee: %s, %s\n%s\n%s\nEmployee Number: %d\nSalary: $%d\n\n",
		r.lastName, r.firstName, separator, r.Status(), r.numericID, r.balance)
	if err != nil {
		return fmt.Errorf("display record %d: %w", r.numericID, err)
	}
	return nil
}

// Display 將摘要輸出到標準輸出。
// 標準輸出寫入失敗時無可復原，直接忽略錯誤。
func (r *Record) Display() {
	_ = r.Fprint(os.Stdout)
}

// String 實作 fmt.Stringer，內容與 Display 相同。
func (r *Record) String() string {
	var sb strings.Builder
	_ = r.Fprint(&sb)
	return sb.String()
}
