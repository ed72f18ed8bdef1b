package lcu

import (
	"encoding/base64"
	"net/netip"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AlsoSylv/samira/pkg/errors"
)

func TestBasicAuthHeader(t *testing.T) {
	header := basicAuthHeader("hx7zIoKmQZ9UdqdXmVUA1g")

	require.True(t, strings.HasPrefix(header, "Basic "))

	decoded, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(header, "Basic "))
	require.NoError(t, err)
	assert.Equal(t, "riot:hx7zIoKmQZ9UdqdXmVUA1g", string(decoded))
}

func TestBasicAuthHeader_KnownValue(t *testing.T) {
	assert.Equal(t, "Basic cmlvdDo=", basicAuthHeader(""))
}

func TestBasicAuthHeader_RoundTrip(t *testing.T) {
	// Lengths crossing the scratch buffer threshold both ways
	for _, length := range []int{0, 1, 16, 22, 23, 100} {
		token := strings.Repeat("a", length)
		header := basicAuthHeader(token)

		encoded := strings.TrimPrefix(header, "Basic ")
		// Standard alphabet, padded to a multiple of four
		assert.Zero(t, len(encoded)%4, "token length %d", length)

		decoded, err := base64.StdEncoding.DecodeString(encoded)
		require.NoError(t, err, "token length %d", length)
		assert.Equal(t, "riot:"+token, string(decoded), "token length %d", length)
	}
}

func TestParseEndpoint(t *testing.T) {
	tests := []struct {
		rawPort  string
		wantPort uint16
	}{
		{"0", 0},
		{"9001", 9001},
		{"65535", 65535},
	}

	for _, tt := range tests {
		t.Run(tt.rawPort, func(t *testing.T) {
			endpoint, discErr := parseEndpoint(tt.rawPort)

			require.Nil(t, discErr)
			assert.Equal(t, netip.MustParseAddr("127.0.0.1"), endpoint.Addr())
			assert.Equal(t, tt.wantPort, endpoint.Port())
		})
	}
}

func TestParseEndpoint_String(t *testing.T) {
	endpoint, discErr := parseEndpoint("9001")

	require.Nil(t, discErr)
	assert.Equal(t, "127.0.0.1:9001", endpoint.String())
}

func TestParseEndpoint_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		rawPort string
		reason  string
	}{
		{"non-numeric", "abc", "invalid syntax"},
		{"empty", "", "invalid syntax"},
		{"negative", "-1", "invalid syntax"},
		{"out of range", "65536", "value out of range"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, discErr := parseEndpoint(tt.rawPort)

			require.NotNil(t, discErr)
			assert.True(t, errors.IsPortNotFoundError(discErr))
			// The parse failure's own description becomes the message
			assert.Contains(t, discErr.Reason(), tt.reason)
			// A late validation step, never a lock-file failure
			assert.False(t, discErr.IsLockFileError())
		})
	}
}
