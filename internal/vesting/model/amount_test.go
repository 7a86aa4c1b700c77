package model

import (
	"encoding/json"
	"math/big"
	"testing"
)

func TestTokenAmountArithmetic(t *testing.T) {
	t.Parallel()

	a := Amount(1_000_000)
	b := Amount(2666)

	if got := a.Sub(b).Add(b); got.Cmp(a) != 0 {
		t.Errorf("sub/add round trip = %s, want %s", got, a)
	}
	if got := a.MulDivFloor(800, 10000); got.String() != "80000" {
		t.Errorf("MulDivFloor(800, 10000) = %s, want 80000", got)
	}
	if got := Amount(80_000).DivFloor(30); got.String() != "2666" {
		t.Errorf("DivFloor(30) = %s, want 2666", got)
	}
	if got := b.Sub(a); !got.IsZero() {
		t.Errorf("underflow should clamp to zero, got %s", got)
	}
	if !b.LessThan(a) || a.LessThan(b) {
		t.Error("LessThan ordering wrong")
	}
}

func TestTokenAmountZeroValue(t *testing.T) {
	t.Parallel()

	var zero TokenAmount
	if !zero.IsZero() {
		t.Error("zero value should be zero")
	}
	if got := zero.Add(Amount(5)); got.String() != "5" {
		t.Errorf("zero value add = %s, want 5", got)
	}
	if zero.String() != "0" {
		t.Errorf("zero value String() = %s", zero)
	}
}

func TestTokenAmountJSON(t *testing.T) {
	t.Parallel()

	in := Amount(18_446_744_073_709_551_615) // max uint64, survives as string
	data, err := json.Marshal(in)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if string(data) != `"18446744073709551615"` {
		t.Errorf("Marshal = %s", data)
	}

	var out TokenAmount
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if out.Cmp(in) != 0 {
		t.Errorf("round trip = %s, want %s", out, in)
	}

	if err := json.Unmarshal([]byte(`"-5"`), &out); err == nil {
		t.Error("negative amount should fail to unmarshal")
	}
}

func TestTokenAmountScan(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		src     any
		want    string
		wantErr bool
	}{
		{name: "string", src: "123456789012345678901234567890", want: "123456789012345678901234567890"},
		{name: "bytes", src: []byte("42"), want: "42"},
		{name: "int64", src: int64(7), want: "7"},
		{name: "nil", src: nil, want: "0"},
		{name: "negative int64", src: int64(-1), wantErr: true},
		{name: "garbage", src: "12x", wantErr: true},
		{name: "unsupported type", src: 3.14, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var a TokenAmount
			err := a.Scan(tt.src)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Scan() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && a.String() != tt.want {
				t.Errorf("Scan() = %s, want %s", a, tt.want)
			}
		})
	}
}

func TestAmountFromBig(t *testing.T) {
	t.Parallel()

	src := big.NewInt(99)
	a := AmountFromBig(src)
	src.SetInt64(1) // mutation of the source must not leak in
	if a.String() != "99" {
		t.Errorf("AmountFromBig copied badly: %s", a)
	}
	if got := AmountFromBig(big.NewInt(-3)); !got.IsZero() {
		t.Errorf("negative input should clamp to zero, got %s", got)
	}
	if got := AmountFromBig(nil); !got.IsZero() {
		t.Errorf("nil input should be zero, got %s", got)
	}
}

func TestWhitelistEntryConsistent(t *testing.T) {
	t.Parallel()

	e := WhitelistEntry{Total: Amount(100), Claimed: Amount(40), Remaining: Amount(60)}
	if !e.Consistent() {
		t.Error("40+60=100 should be consistent")
	}
	e.Remaining = Amount(59)
	if e.Consistent() {
		t.Error("40+59!=100 should be inconsistent")
	}
}
