package lcu

import (
	"encoding/base64"
	"net/netip"
	"strconv"

	"github.com/AlsoSylv/samira/pkg/errors"
)

// Encoded credentials fit 36 bytes for tokens up to 22 characters, the
// length the client actually issues. Longer tokens fall back to the heap.
const authHeaderScratchSize = 36

// basicAuthHeader builds the ready-to-send "Basic <base64>" header value for
// riot:<token> credentials.
func basicAuthHeader(authToken string) string {
	userInfo := "riot:" + authToken

	encodedLen := base64.StdEncoding.EncodedLen(len(userInfo))
	var scratch [authHeaderScratchSize]byte
	encoded := scratch[:]
	if encodedLen > len(scratch) {
		encoded = make([]byte, encodedLen)
	}
	base64.StdEncoding.Encode(encoded, []byte(userInfo))

	return "Basic " + string(encoded[:encodedLen])
}

// parseEndpoint turns the raw port string into a loopback endpoint. The
// control API only ever binds 127.0.0.1. Parse failures are reported as a
// missing port carrying the parse error's description, with no lock-file
// marking regardless of which strategy produced the string.
func parseEndpoint(rawPort string) (netip.AddrPort, *errors.Error) {
	port, err := strconv.ParseUint(rawPort, 10, 16)
	if err != nil {
		return netip.AddrPort{}, errors.NewPortNotFoundError(err)
	}
	return netip.AddrPortFrom(netip.AddrFrom4([4]byte{127, 0, 0, 1}), uint16(port)), nil
}
