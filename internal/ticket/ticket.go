// internal/ticket/ticket.go

// Package ticket 定義機票 (Ticket) 資料結構與票價公式。
// 金額以 decimal.Decimal 計算，避免 0.1 這類浮點誤差。
package ticket

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/shopspring/decimal"
)

// DefaultPassenger 為新機票的乘客名稱。
const DefaultPassenger = "Unknown Passenger"

var (
	basePrice     = decimal.NewFromInt(100)
	pricePerMile  = decimal.RequireFromString("0.10")
	eliteDiscount = decimal.RequireFromString("0.9")
)

// Ticket represents an airline ticket.
type Ticket struct {
	passengerName string
	miles         int
	elite         bool
}

// New 建立預設機票：乘客 DefaultPassenger、里程 0、非菁英會員。
func New() *Ticket {
	return &Ticket{passengerName: DefaultPassenger}
}

// PassengerName 回傳乘客名稱。
func (t *Ticket) PassengerName() string { return t.passengerName }

// SetPassengerName 設定乘客名稱。
func (t *Ticket) SetPassengerName(name string) { t.passengerName = name }

// Miles 回傳飛行里程。
func (t *Ticket) Miles() int { return t.miles }

// SetMiles 設定飛行里程；不檢查正負。
func (t *Ticket) SetMiles(miles int) { t.miles = miles }

// Elite 回傳是否為菁英會員。
func (t *Ticket) Elite() bool { return t.elite }

// SetElite 設定菁英會員身分。
func (t *Ticket) SetElite(elite bool) { t.elite = elite }

// PriceInDollars 票價 = 100 + 里程 × 0.10；菁英會員再打九折。
func (t *Ticket) PriceInDollars() decimal.Decimal {
	price := basePrice.Add(decimal.NewFromInt(int64(t.miles)).Mul(pricePerMile))
	if t.elite {
		price = price.Mul(eliteDiscount)
	}
	return price
}

// Fprint 將票價、里程與會員狀態寫入 w。
func (t *Ticket) Fprint(w io.Writer) error {
	elite := "No"
	if t.elite {
		elite = "Yes"
	}
	_, err := fmt.Fprintf(w,
		"Ticket Price for %s: $%s\nNumber of Miles: %d\nElite Super Rewards Status: %s\n",
		t.passengerName, t.PriceInDollars().StringFixed(2), t.miles, elite)
	if err != nil {
		return fmt.Errorf("display ticket for %q: %w", t.passengerName, err)
	}
	return nil
}

// Display 將 Fprint 的內容輸出到標準輸出。
func (t *Ticket) Display() {
	_ = t.Fprint(os.Stdout)
}

// String 實作 fmt.Stringer，內容與 Display 相同。
func (t *Ticket) String() string {
	var sb strings.Builder
	_ = t.Fprint(&sb)
	return sb.String()
}
