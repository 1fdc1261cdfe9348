package money_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"app/internal/domain/money"
)

func TestParse(t *testing.T) {
	cases := []struct {
		in   string
		want money.Money
	}{
		{"₹899", money.FromRupees(899)},
		{"₹1,234", money.FromRupees(1234)},
		{"₹12,34,567", money.FromRupees(1234567)},
		{"1234", money.FromRupees(1234)},
		{" ₹99 ", money.FromRupees(99)},
		{"₹99.50", money.Money(9950)},
		{"₹0", 0},
		{"-₹50", money.FromRupees(-50)},
	}

	for _, tc := range cases {
		got, err := money.Parse(tc.in)
		assert.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got, tc.in)
	}
}

func TestParse_Invalid(t *testing.T) {
	for _, in := range []string{"", "   ", "₹", "abc", "₹12a"} {
		_, err := money.Parse(in)
		assert.Error(t, err, in)
	}
}

func TestFormat(t *testing.T) {
	cases := []struct {
		in   money.Money
		want string
	}{
		{0, "₹0"},
		{money.FromRupees(900), "₹900"},
		{money.FromRupees(2700), "₹2,700"},
		{money.FromRupees(1234567), "₹1,234,567"},
		// ルピーへ四捨五入
		{money.Money(9950), "₹100"},
		{money.Money(9949), "₹99"},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, tc.in.Format())
	}
}

func TestExact(t *testing.T) {
	cases := []struct {
		in   money.Money
		want string
	}{
		{0, "₹0"},
		{money.FromRupees(900), "₹900"},
		{money.FromRupees(1234567), "₹1,234,567"},
		// パイサ端数は丸めずに残す
		{money.Money(9950), "₹99.50"},
		{money.Money(60233), "₹602.33"},
		{money.Money(100005), "₹1,000.05"},
		{money.Money(-9950), "-₹99.50"},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, tc.in.Exact())
	}
}

func TestDiscounted(t *testing.T) {
	assert.Equal(t, money.FromRupees(500), money.FromRupees(1000).Discounted(50))
	assert.Equal(t, money.FromRupees(750), money.FromRupees(1000).Discounted(25))
	// 0と範囲外は割引なし
	assert.Equal(t, money.FromRupees(899), money.FromRupees(899).Discounted(0))
	assert.Equal(t, money.FromRupees(899), money.FromRupees(899).Discounted(-10))
	assert.Equal(t, money.FromRupees(899), money.FromRupees(899).Discounted(101))
	// 整数ルピー×整数％は誤差なし
	assert.Equal(t, money.Money(80910), money.FromRupees(899).Discounted(10))
}

func TestJSONRoundTrip(t *testing.T) {
	type wrapper struct {
		Price money.Money `json:"price"`
	}

	b, err := json.Marshal(wrapper{Price: money.FromRupees(1234)})
	assert.NoError(t, err)
	assert.JSONEq(t, `{"price":"₹1,234"}`, string(b))

	var w wrapper
	assert.NoError(t, json.Unmarshal([]byte(`{"price":"₹2,700"}`), &w))
	assert.Equal(t, money.FromRupees(2700), w.Price)

	// 数値で入っていても読める
	assert.NoError(t, json.Unmarshal([]byte(`{"price":899}`), &w))
	assert.Equal(t, money.FromRupees(899), w.Price)

	// パイサ端数があっても往復で金額が変わらない
	b, err = json.Marshal(wrapper{Price: money.Money(60233)})
	assert.NoError(t, err)
	assert.JSONEq(t, `{"price":"₹602.33"}`, string(b))

	assert.NoError(t, json.Unmarshal(b, &w))
	assert.Equal(t, money.Money(60233), w.Price)
}

func TestSQLBoundary(t *testing.T) {
	v, err := money.FromRupees(899).Value()
	assert.NoError(t, err)
	assert.Equal(t, "₹899", v)

	// "₹99.50" で入力された価格は "₹100" に化けない
	v, err = money.Money(9950).Value()
	assert.NoError(t, err)
	assert.Equal(t, "₹99.50", v)

	var m money.Money
	assert.NoError(t, m.Scan("₹1,234"))
	assert.Equal(t, money.FromRupees(1234), m)

	assert.NoError(t, m.Scan([]byte("₹55")))
	assert.Equal(t, money.FromRupees(55), m)

	assert.NoError(t, m.Scan(nil))
	assert.Equal(t, money.Money(0), m)
}
