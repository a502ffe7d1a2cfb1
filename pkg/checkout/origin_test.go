package checkout

import "testing"

func TestResolveOrigin(test *testing.T) {
	test.Parallel()
	cases := []struct {
		name string
		host string
		want string
	}{
		{name: "host", host: "example.com", want: "https://example.com"},
		{name: "host with port", host: "pay.example.com:8443", want: "https://pay.example.com:8443"},
		{name: "padded", host: "  example.com ", want: "https://example.com"},
		{name: "absent", host: "", want: "http://localhost:3001"},
		{name: "blank", host: "   ", want: "http://localhost:3001"},
	}
	for _, tc := range cases {
		tc := tc
		test.Run(tc.name, func(test *testing.T) {
			test.Parallel()
			if got := ResolveOrigin(tc.host); got != tc.want {
				test.Fatalf("expected %q, got %q", tc.want, got)
			}
		})
	}
}
