package domain

import (
	"errors"
	"testing"

	apperrors "github.com/openmint/marketplace/internal/errors"
)

func TestTotalPriceTruncatesFee(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name       string
		price      int64
		feePercent int
		wantFee    int64
		wantTotal  int64
	}{
		{
			name:       "small price truncates to zero fee",
			price:      2,
			feePercent: 1,
			wantFee:    0,
			wantTotal:  2,
		},
		{
			name:       "fee survives truncation",
			price:      200,
			feePercent: 1,
			wantFee:    2,
			wantTotal:  202,
		},
		{
			name:       "fractional remainder dropped",
			price:      199,
			feePercent: 1,
			wantFee:    1,
			wantTotal:  200,
		},
		{
			name:       "zero percent",
			price:      1000,
			feePercent: 0,
			wantFee:    0,
			wantTotal:  1000,
		},
		{
			name:       "full percent",
			price:      7,
			feePercent: 100,
			wantFee:    7,
			wantTotal:  14,
		},
		{
			name:       "mid range",
			price:      150,
			feePercent: 3,
			wantFee:    4,
			wantTotal:  154,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := FeeAmount(tc.price, tc.feePercent); got != tc.wantFee {
				t.Fatalf("fee = %d, want %d", got, tc.wantFee)
			}
			if got := TotalPrice(tc.price, tc.feePercent); got != tc.wantTotal {
				t.Fatalf("total = %d, want %d", got, tc.wantTotal)
			}
		})
	}
}

func TestValidatePrice(t *testing.T) {
	t.Parallel()

	if err := ValidatePrice(1); err != nil {
		t.Fatalf("price 1: %v", err)
	}
	for _, price := range []int64{0, -1, -200} {
		err := ValidatePrice(price)
		if apperrors.GetCode(err) != apperrors.CodeListingInvalidPrice {
			t.Fatalf("price %d code = %s, want %s", price, apperrors.GetCode(err), apperrors.CodeListingInvalidPrice)
		}
	}
}

func TestFeeConfigValidate(t *testing.T) {
	t.Parallel()

	valid := FeeConfig{Recipient: "0x0123456789abcdef0123456789abcdef01234567", Percent: 1}
	if err := valid.Validate(); err != nil {
		t.Fatalf("valid config: %v", err)
	}

	testCases := []struct {
		name string
		cfg  FeeConfig
	}{
		{name: "negative percent", cfg: FeeConfig{Recipient: valid.Recipient, Percent: -1}},
		{name: "percent above 100", cfg: FeeConfig{Recipient: valid.Recipient, Percent: 101}},
		{name: "missing recipient", cfg: FeeConfig{Percent: 1}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.cfg.Validate()
			if err == nil {
				t.Fatal("expected error")
			}
			if !errors.Is(err, apperrors.New(apperrors.CodeFeeConfigInvalid, "")) {
				t.Fatalf("code = %s, want %s", apperrors.GetCode(err), apperrors.CodeFeeConfigInvalid)
			}
		})
	}
}
