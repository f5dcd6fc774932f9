// internal/record/record.go

// Package record 定義員工紀錄 (Record)：姓名、員工編號、薪資與在職狀態。
// 純記憶體資料結構，不含任何 I/O 以外的副作用；所有操作皆為全函數，沒有錯誤回傳。
// 僅供單一 goroutine 循序使用，因此不帶鎖。
package record

// DefaultAdjustment 為 Promote / Demote 未指定金額時採用的預設調整額。
const DefaultAdjustment = 1000

// Placeholder 為 NewDefault 建立紀錄時的姓名佔位字串。
const Placeholder = "Unknown"

// Record represents an employee record.
// 零值即為合法的預設紀錄：空姓名、編號 0、薪資 0、非在職。
type Record struct {
	firstName string
	lastName  string
	numericID int
	balance   int
	active    bool

	// raise / demerit 為 Promote / Demote 的預設金額；nil 代表使用 DefaultAdjustment。
	// 以指標區分「未設定」與「設定為 0」。
	raise   *int
	demerit *int
}

// Option 調整 New 建立出的紀錄（目前僅用於覆寫預設調整額）。
type Option func(*Record)

// WithDefaultRaise 設定 Promote() 不帶參數時的加薪金額。
func WithDefaultRaise(amount int) Option {
	return func(r *Record) { r.raise = &amount }
}

// WithDefaultDemerit 設定 Demote() 不帶參數時的減薪金額。
func WithDefaultDemerit(amount int) Option {
	return func(r *Record) { r.demerit = &amount }
}

// New 以姓名建立紀錄；編號與薪資為 0，狀態為非在職。
func New(firstName, lastName string, opts ...Option) *Record {
	r := &Record{firstName: firstName, lastName: lastName}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// NewDefault 建立姓名皆為 Placeholder 的紀錄。
func NewDefault(opts ...Option) *Record {
	return New(Placeholder, Placeholder, opts...)
}

// FirstName 回傳名字。
func (r *Record) FirstName() string { return r.firstName }

// LastName 回傳姓氏。
func (r *Record) LastName() string { return r.lastName }

// NumericID 回傳員工編號。
func (r *Record) NumericID() int { return r.numericID }

// Balance 回傳目前薪資。
func (r *Record) Balance() int { return r.balance }

// IsActive 回傳是否在職。
func (r *Record) IsActive() bool { return r.active }

// SetFirstName 直接取代名字，不做驗證。
func (r *Record) SetFirstName(name string) { r.firstName = name }

// SetLastName 直接取代姓氏，不做驗證。
func (r *Record) SetLastName(name string) { r.lastName = name }

// SetNumericID 設定員工編號；不檢查唯一性。
func (r *Record) SetNumericID(id int) { r.numericID = id }

// SetBalance 直接取代薪資。
func (r *Record) SetBalance(balance int) { r.balance = balance }

// AdjustBalance 以有號差額調整薪資：balance += delta。
// 不設上下限，可為 0 或負數，結果亦可為負。
func (r *Record) AdjustBalance(delta int) {
	r.balance += delta
}

// Promote 加薪：未給金額時採用預設加薪額，給多個金額時加總後一次調整。
func (r *Record) Promote(amounts ...int) {
	r.AdjustBalance(total(amounts, r.defaultRaise()))
}

// Demote 減薪：規則同 Promote，方向相反。
func (r *Record) Demote(amounts ...int) {
	r.AdjustBalance(-total(amounts, r.defaultDemerit()))
}

// Activate 將狀態設為在職；可重複呼叫，無轉換限制。
func (r *Record) Activate() { r.active = true }

// Deactivate 將狀態設為離職。
func (r *Record) Deactivate() { r.active = false }

// Hire 為 Activate 的人事用語別名。
func (r *Record) Hire() { r.Activate() }

// Fire 為 Deactivate 的人事用語別名。
func (r *Record) Fire() { r.Deactivate() }

func (r *Record) defaultRaise() int {
	if r.raise == nil {
		return DefaultAdjustment
	}
	return *r.raise
}

func (r *Record) defaultDemerit() int {
	if r.demerit == nil {
		return DefaultAdjustment
	}
	return *r.demerit
}

// total 回傳 amounts 加總；amounts 為空時回傳 fallback。
func total(amounts []int, fallback int) int {
	if len(amounts) == 0 {
		return fallback
	}
	sum := 0
	for _, a := range amounts {
		sum += a
	}
	return sum
}
