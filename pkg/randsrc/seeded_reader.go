package randsrc

import (
	"crypto/sha256"
	"fmt"

	"golang.org/x/crypto/chacha20"
)

// SeededReader is an io.Reader producing an unbounded deterministic
// byte stream derived from a string seed. It is meant for synthesizing
// large fixture content that would be wasteful to hold in memory or
// check in. The same seed always yields the same stream.
type SeededReader struct {
	stream *chacha20.Cipher
}

// NewSeededReader creates a reader for the given seed. The seed is
// hashed to a ChaCha20 key; the nonce is fixed at zero so determinism
// depends on the seed alone.
func NewSeededReader(seed string) *SeededReader {
	key := sha256.Sum256([]byte(seed))
	var nonce [chacha20.NonceSize]byte
	stream, err := chacha20.NewUnauthenticatedCipher(key[:], nonce[:])
	if err != nil {
		panic(fmt.Sprintf("failed to create ChaCha20 stream: %v", err))
	}
	return &SeededReader{stream: stream}
}

// Read fills p with the next bytes of the stream. It never fails and
// never returns a short read.
func (r *SeededReader) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = 0
	}
	r.stream.XORKeyStream(p, p)
	return len(p), nil
}
