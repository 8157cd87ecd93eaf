package clientip_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/simplepass/pkg/clientip"
)

func request(remoteAddr string, headers map[string]string) *http.Request {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.RemoteAddr = remoteAddr
	for k, v := range headers {
		r.Header.Set(k, v)
	}
	return r
}

func TestFromRequest(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		remote  string
		headers map[string]string
		trusted []string
		want    string
	}{
		{"remote addr", "192.0.2.1:1234", nil, nil, "192.0.2.1"},
		{"remote addr without port", "192.0.2.1", nil, nil, "192.0.2.1"},
		{"ipv6 remote addr", "[2001:db8::1]:443", nil, nil, "2001:db8::1"},
		{"invalid remote addr", "garbage", nil, nil, ""},
		{
			"untrusted header ignored", "192.0.2.1:1234",
			map[string]string{clientip.HeaderForwardedFor: "203.0.113.9"}, nil,
			"192.0.2.1",
		},
		{
			"trusted forwarded for", "192.0.2.1:1234",
			map[string]string{clientip.HeaderForwardedFor: "bogus, 203.0.113.9, 10.0.0.1"},
			[]string{clientip.HeaderForwardedFor},
			"203.0.113.9",
		},
		{
			"first trusted header wins", "192.0.2.1:1234",
			map[string]string{clientip.HeaderCFConnectingIP: "198.51.100.7", clientip.HeaderRealIP: "203.0.113.9"},
			[]string{clientip.HeaderCFConnectingIP, clientip.HeaderRealIP},
			"198.51.100.7",
		},
		{
			"invalid trusted header falls through", "192.0.2.1:1234",
			map[string]string{clientip.HeaderRealIP: "not-an-ip"},
			[]string{clientip.HeaderRealIP},
			"192.0.2.1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, clientip.FromRequest(request(tt.remote, tt.headers), tt.trusted...))
		})
	}
}

func TestMiddleware(t *testing.T) {
	t.Parallel()

	var got string
	h := clientip.Middleware(clientip.HeaderRealIP)(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		got = clientip.Get(r)
	}))

	h.ServeHTTP(httptest.NewRecorder(), request("192.0.2.1:1234", map[string]string{clientip.HeaderRealIP: "203.0.113.9"}))
	assert.Equal(t, "203.0.113.9", got)
}

func TestGet_WithoutMiddleware(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "192.0.2.1", clientip.Get(request("192.0.2.1:1234", map[string]string{clientip.HeaderRealIP: "203.0.113.9"})))
}

func TestLoggerExtractor(t *testing.T) {
	t.Parallel()

	extract := clientip.LoggerExtractor()

	_, ok := extract(context.Background())
	assert.False(t, ok)

	attr, ok := extract(clientip.WithContext(context.Background(), "192.0.2.1"))
	require.True(t, ok)
	assert.Equal(t, "client_ip", attr.Key)
	assert.Equal(t, "192.0.2.1", attr.Value.String())
}
