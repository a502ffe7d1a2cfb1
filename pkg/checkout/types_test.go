package checkout

import (
	"errors"
	"testing"
)

const (
	presaleRecipient = "83LpvGpRS5ovrghBJkVvWXTVMaH99Eqg3Yr6HrX3Xick"
	systemRecipient  = "11111111111111111111111111111111"
	presaleLabel     = "Santa Rose Presale"
)

func TestNewRecipient(test *testing.T) {
	test.Parallel()
	cases := []struct {
		name    string
		input   string
		wantErr error
	}{
		{name: "presale key", input: presaleRecipient},
		{name: "system program", input: systemRecipient},
		{name: "usdc mint", input: "EPjFWdd5AufqSSqeM2qN1xzybapC8G4wEGGkZwyTDt1v"},
		{name: "not base58", input: "not-a-key", wantErr: ErrInvalidRecipient},
		{name: "empty", input: "", wantErr: ErrInvalidRecipient},
		{name: "too short", input: "abc", wantErr: ErrInvalidRecipient},
		{name: "too long", input: presaleRecipient + presaleRecipient, wantErr: ErrInvalidRecipient},
		{name: "forbidden zero digit", input: "0" + presaleRecipient[1:], wantErr: ErrInvalidRecipient},
		{name: "surrounding whitespace", input: " " + presaleRecipient, wantErr: ErrInvalidRecipient},
	}
	for _, tc := range cases {
		tc := tc
		test.Run(tc.name, func(test *testing.T) {
			test.Parallel()
			recipient, err := NewRecipient(tc.input)
			if tc.wantErr != nil {
				if !errors.Is(err, tc.wantErr) {
					test.Fatalf("expected error %v, got %v", tc.wantErr, err)
				}
				return
			}
			if err != nil {
				test.Fatalf("unexpected error: %v", err)
			}
			if recipient.String() != tc.input {
				test.Fatalf("expected %q, got %q", tc.input, recipient.String())
			}
		})
	}
}

func TestRecipientEquals(test *testing.T) {
	test.Parallel()
	first := mustRecipient(test, presaleRecipient)
	second := mustRecipient(test, presaleRecipient)
	other := mustRecipient(test, systemRecipient)
	if !first.Equals(second) {
		test.Fatalf("expected equal recipients")
	}
	if first.Equals(other) {
		test.Fatalf("expected different recipients")
	}
}

func mustRecipient(test *testing.T, raw string) Recipient {
	test.Helper()
	recipient, err := NewRecipient(raw)
	if err != nil {
		test.Fatalf("recipient %q: %v", raw, err)
	}
	return recipient
}

func stringPointer(value string) *string {
	return &value
}
