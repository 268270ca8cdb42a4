package secrets

import (
	"fmt"

	kerrors "github.com/PolarWolf314/cryptr/internal/errors"
)

// Envelope is the on-disk representation of an encrypted file: a fixed
// IVSize-byte IV followed by the CBC ciphertext. There is no header, magic
// number or version tag.
type Envelope struct {
	IV         []byte
	Ciphertext []byte
}

// ParseEnvelope splits data into its IV prefix and ciphertext. The returned
// slices share memory with data.
func ParseEnvelope(data []byte) (Envelope, error) {
	if len(data) < IVSize {
		return Envelope{}, fmt.Errorf("%w: got %d bytes, need at least %d for the IV",
			kerrors.ErrMalformedEnvelope, len(data), IVSize)
	}

	return Envelope{
		IV:         data[:IVSize:IVSize],
		Ciphertext: data[IVSize:],
	}, nil
}

// Bytes returns IV || Ciphertext as a new slice.
func (e Envelope) Bytes() []byte {
	out := make([]byte, 0, len(e.IV)+len(e.Ciphertext))
	out = append(out, e.IV...)
	return append(out, e.Ciphertext...)
}
