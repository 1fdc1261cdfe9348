package money

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Money は金額（パイサ＝1/100ルピーの整数）。
// 表示用の "₹1,234" 形式とは境界（JSON / SQL / 表示）でのみ相互変換する。
type Money int64

const symbol = "₹"

// FromRupees はルピー整数からMoneyを作る。
func FromRupees(r int64) Money {
	return Money(r * 100)
}

// Parse は "₹1,234" / "1234" / "₹99.50" をMoneyに変換する。
func Parse(s string) (Money, error) {
	raw := strings.TrimSpace(s)
	raw = strings.ReplaceAll(raw, symbol, "")
	raw = strings.ReplaceAll(raw, ",", "")
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, fmt.Errorf("empty amount")
	}

	neg := false
	if strings.HasPrefix(raw, "-") {
		neg = true
		raw = raw[1:]
	}

	intPart := raw
	fracPart := ""
	if i := strings.IndexByte(raw, '.'); i >= 0 {
		intPart = raw[:i]
		fracPart = raw[i+1:]
	}
	if intPart == "" {
		intPart = "0"
	}
	if len(fracPart) > 2 {
		fracPart = fracPart[:2]
	}
	for len(fracPart) < 2 {
		fracPart += "0"
	}

	rupees, err := strconv.ParseInt(intPart, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	paise, err := strconv.ParseInt(fracPart, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q: %w", s, err)
	}

	v := rupees*100 + paise
	if neg {
		v = -v
	}
	return Money(v), nil
}

// Rupees はルピーへ丸めた値（四捨五入）。
func (m Money) Rupees() int64 {
	v := int64(m)
	if v >= 0 {
		return (v + 50) / 100
	}
	return -((-v + 50) / 100)
}

// Discounted はパーセント割引後の金額（パイサで四捨五入）。
// pctが範囲外のときは割引なし。
func (m Money) Discounted(pct int) Money {
	if pct <= 0 || pct > 100 {
		return m
	}
	v := int64(m) * int64(100-pct)
	if v >= 0 {
		return Money((v + 50) / 100)
	}
	return Money(-((-v + 50) / 100))
}

// Mul は数量倍。
func (m Money) Mul(qty int) Money {
	return Money(int64(m) * int64(qty))
}

// Format は表示用の "₹1,234" 形式（ルピーへ四捨五入、3桁区切り）。
func (m Money) Format() string {
	r := m.Rupees()

	neg := r < 0
	if neg {
		r = -r
	}

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	b.WriteString(symbol)
	b.WriteString(groupDigits(r))
	return b.String()
}

// Exact はパイサを落とさない "₹1,234.50" 形式。端数が無ければ整数形と同じ。
// JSONとDBの読み書きはこちら（丸めるのは表示用のFormatだけ）。
func (m Money) Exact() string {
	v := int64(m)

	neg := v < 0
	if neg {
		v = -v
	}

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	b.WriteString(symbol)
	b.WriteString(groupDigits(v / 100))
	if p := v % 100; p != 0 {
		fmt.Fprintf(&b, ".%02d", p)
	}
	return b.String()
}

// 3桁区切り
func groupDigits(r int64) string {
	digits := strconv.FormatInt(r, 10)

	var b strings.Builder
	pre := len(digits) % 3
	if pre == 0 {
		pre = 3
	}
	b.WriteString(digits[:pre])
	for i := pre; i < len(digits); i += 3 {
		b.WriteByte(',')
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}

func (m Money) String() string {
	return m.Format()
}

// JSONでは通貨文字列として読み書きする（スナップショット互換のため）。
// パイサ端数を保つExact形式で書き、直列化の往復で金額が変わらないようにする。
func (m Money) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.Exact())
}

func (m *Money) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		// 旧データや手書きJSONの数値も受ける
		var n float64
		if err2 := json.Unmarshal(data, &n); err2 == nil {
			*m = Money(int64(n*100 + 0.5))
			return nil
		}
		return err
	}
	if s == "" {
		*m = 0
		return nil
	}
	v, err := Parse(s)
	if err != nil {
		return err
	}
	*m = v
	return nil
}

// DBには通貨文字列のまま保存する（価格はもともと整形済み文字列）。
// 入力された "₹99.50" をそのまま保てるようExact形式で書く。
func (m Money) Value() (driver.Value, error) {
	return m.Exact(), nil
}

func (m *Money) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*m = 0
		return nil
	case string:
		if v == "" {
			*m = 0
			return nil
		}
		parsed, err := Parse(v)
		if err != nil {
			return err
		}
		*m = parsed
		return nil
	case []byte:
		return m.Scan(string(v))
	case int64:
		*m = FromRupees(v)
		return nil
	default:
		return fmt.Errorf("unsupported money type %T", src)
	}
}
