package compress

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNegotiate(t *testing.T) {
	cases := map[string]string{
		"":                       Identity,
		"gzip":                   Gzip,
		"gzip, deflate, br":      Brotli,
		"gzip;q=1.0, zstd;q=0.5": Gzip,
		"br;q=0, gzip":           Gzip,
		"*":                      Brotli,
		"*;q=0.1, gzip;q=0.5":    Gzip,
		"deflate":                Identity,
		"ZSTD":                   Zstd,
		"identity, gzip;q=0":     Identity,
	}
	for header, want := range cases {
		assert.Equal(t, want, Negotiate(header), "Accept-Encoding %q", header)
	}
}

func TestEncodeDecode(t *testing.T) {
	body := bytes.Repeat([]byte("Position,morning,evening,night,On Leave\n"), 50)
	for _, enc := range []string{Identity, Gzip, Zstd, Brotli} {
		encoded, err := Encode(enc, body)
		require.NoError(t, err, enc)
		if enc != Identity {
			assert.Less(t, len(encoded), len(body), enc)
		}
		decoded, err := Decode(enc, encoded)
		require.NoError(t, err, enc)
		assert.Equal(t, body, decoded, enc)
	}
}

func TestUnsupportedEncoding(t *testing.T) {
	_, err := Encode("deflate", []byte("x"))
	assert.Error(t, err)
}
