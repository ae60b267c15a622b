package pcquote

import "testing"

func TestParseAmount(t *testing.T) {
	testCases := []struct {
		input string
		want  Money
	}{
		{"1299", Y(1299)},
		{" 12.50 ", Y(12.5)},
		{"¥1,299", Y(1299)},
		{"￥ 88", Y(88)},
		{"", Y(0)},
		{"abc", Y(0)},
		{"-5", Y(0)},
		{"1e3", Y(1000)},
	}
	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			assertMoney(t, "ParseAmount", ParseAmount(tc.input), tc.want)
		})
	}
}

func TestParseQuantity(t *testing.T) {
	testCases := []struct {
		input string
		want  int
	}{
		{"2", 2},
		{" 3 ", 3},
		{"2.7", 2},
		{"0", 0},
		{"-1", 0},
		{"", 0},
		{"two", 0},
		{"2147483647", MaxQuantity},
		{"2147483648", 0},
		{"18446744073709551615", 0},
		{"99999999999999999999", 0},
	}
	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			if got := ParseQuantity(tc.input); got != tc.want {
				t.Errorf("ParseQuantity(%q) = %d, want %d", tc.input, got, tc.want)
			}
		})
	}
}

func TestMoney_Arithmetic(t *testing.T) {
	a := M(10, "CNY")
	b := Y(2.5)
	if got := a.Add(b); !got.Equal(Y(12.5)) || got.Currency() != "CNY" {
		t.Errorf("Add() = %v %q, the weak currency should adopt CNY", got.Plain(), got.Currency())
	}
	if got := b.Sub(a); !got.Equal(Y(-7.5)) || !got.IsNegative() {
		t.Errorf("Sub() = %v", got.Plain())
	}
	if got := b.Mul(4); got.Plain() != "10" {
		t.Errorf("Mul() = %v", got.Plain())
	}

	defer func() {
		if recover() == nil {
			t.Errorf("adding different currencies should panic")
		}
	}()
	M(1, "CNY").Add(M(1, "USD"))
}

func TestSymbol(t *testing.T) {
	testCases := []struct {
		code string
		want string
	}{
		{"", "¥"},
		{"CNY", "¥"},
		{"cny", "¥"},
		{"EUR", "€"},
		{"USD", "$"},
		{"XYZ", "XYZ"},
	}
	for _, tc := range testCases {
		if got := Symbol(tc.code); got != tc.want {
			t.Errorf("Symbol(%q) = %q, want %q", tc.code, got, tc.want)
		}
	}
}

func TestMoney_String(t *testing.T) {
	defer func(c string) { DefaultCurrency = c }(DefaultCurrency)

	if got := Y(1299).String(); got != "¥1299" {
		t.Errorf("String() = %q, want ¥1299", got)
	}
	if got := Y(-101).String(); got != "¥-101" {
		t.Errorf("String() = %q, want ¥-101", got)
	}
	if got := M(12.5, "EUR").String(); got != "€12.5" {
		t.Errorf("String() = %q, want €12.5", got)
	}
	DefaultCurrency = "USD"
	if got := Y(2).String(); got != "$2" {
		t.Errorf("String() = %q, want $2 once USD is the default", got)
	}
}
