package impact

import "testing"

func TestFormatCarbon(t *testing.T) {
	tests := []struct {
		kg   float64
		want string
	}{
		{0, "n/a"},
		{-12, "n/a"},
		{45.678, "45.68kg"},
		{99.999, "100.00kg"},
		{100, "100kg"},
		{250, "250kg"},
		{999, "999kg"},
		{1000, "1.00t"},
		{1500, "1.50t"},
		{2390, "2.39t"},
	}
	for _, tc := range tests {
		if got := FormatCarbon(tc.kg); got != tc.want {
			t.Fatalf("FormatCarbon(%v) = %q, want %q", tc.kg, got, tc.want)
		}
	}
}

func TestFormatMoney(t *testing.T) {
	if got := FormatMoney(0); got != "£0" {
		t.Fatalf("FormatMoney(0) = %q", got)
	}
	if got := FormatMoney(1240); got != "£1240" {
		t.Fatalf("FormatMoney(1240) = %q", got)
	}
}
