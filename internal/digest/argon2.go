// Package digest encodes passwords as Argon2id PHC strings.
package digest

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"
)

// maxMemory bounds the memory cost (KiB) accepted from an encoded digest.
const maxMemory = 1 << 20

var (
	ErrInvalidFormat       = errors.New("invalid encoded digest format")
	ErrIncompatibleVersion = errors.New("incompatible argon2 version")
	ErrInvalidParams       = errors.New("invalid argon2 parameters")
)

// Params configures Argon2id key derivation.
type Params struct {
	Memory      uint32
	Iterations  uint32
	Parallelism uint8
	SaltLength  uint32
	KeyLength   uint32
}

// DefaultParams returns recommended Argon2id parameters.
func DefaultParams() Params {
	return Params{
		Memory:      64 * 1024,
		Iterations:  3,
		Parallelism: 2,
		SaltLength:  16,
		KeyLength:   32,
	}
}

// Validate rejects parameters argon2.IDKey cannot run with.
func (p Params) Validate() error {
	switch {
	case p.Iterations == 0:
		return fmt.Errorf("%w: iterations must be at least 1", ErrInvalidParams)
	case p.Parallelism == 0:
		return fmt.Errorf("%w: parallelism must be at least 1", ErrInvalidParams)
	case p.Memory < 8*uint32(p.Parallelism):
		return fmt.Errorf("%w: memory %d KiB is below 8*parallelism", ErrInvalidParams, p.Memory)
	case p.Memory > maxMemory:
		return fmt.Errorf("%w: memory %d KiB exceeds %d KiB", ErrInvalidParams, p.Memory, maxMemory)
	case p.SaltLength == 0 || p.KeyLength == 0:
		return fmt.Errorf("%w: salt and key must not be empty", ErrInvalidParams)
	}
	return nil
}

// Digest is a decoded Argon2id PHC string.
type Digest struct {
	Params Params
	Salt   []byte
	Key    []byte
}

// String encodes d as $argon2id$v=19$m=..,t=..,p=..$<salt>$<key>.
func (d Digest) String() string {
	return fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version,
		d.Params.Memory,
		d.Params.Iterations,
		d.Params.Parallelism,
		base64.RawStdEncoding.EncodeToString(d.Salt),
		base64.RawStdEncoding.EncodeToString(d.Key),
	)
}

// Matches reports whether password derives to d's key.
func (d Digest) Matches(password string) bool {
	p := d.Params
	candidate := argon2.IDKey([]byte(password), d.Salt, p.Iterations, p.Memory, p.Parallelism, uint32(len(d.Key)))
	return subtle.ConstantTimeCompare(d.Key, candidate) == 1
}

// Encode derives an Argon2id key for password with DefaultParams and a fresh salt.
func Encode(password string) (string, error) {
	return EncodeWith(password, DefaultParams())
}

// EncodeWith is Encode with explicit parameters.
func EncodeWith(password string, p Params) (string, error) {
	if err := p.Validate(); err != nil {
		return "", err
	}

	salt := make([]byte, p.SaltLength)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("generating salt: %w", err)
	}

	d := Digest{
		Params: p,
		Salt:   salt,
		Key:    argon2.IDKey([]byte(password), salt, p.Iterations, p.Memory, p.Parallelism, p.KeyLength),
	}
	return d.String(), nil
}

// Verify reports whether password matches the encoded digest.
// Malformed or unusable digests return an error instead of a match result.
func Verify(password, encoded string) (bool, error) {
	d, err := Parse(encoded)
	if err != nil {
		return false, err
	}
	return d.Matches(password), nil
}

// Parse decodes and validates a PHC-formatted Argon2id string.
func Parse(encoded string) (Digest, error) {
	parts := strings.Split(strings.TrimSpace(encoded), "$")
	if len(parts) != 6 || parts[0] != "" || parts[1] != "argon2id" {
		return Digest{}, ErrInvalidFormat
	}

	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil {
		return Digest{}, ErrInvalidFormat
	}
	if version != argon2.Version {
		return Digest{}, ErrIncompatibleVersion
	}

	var d Digest
	p := &d.Params
	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &p.Memory, &p.Iterations, &p.Parallelism); err != nil {
		return Digest{}, ErrInvalidFormat
	}

	var err error
	if d.Salt, err = base64.RawStdEncoding.DecodeString(parts[4]); err != nil {
		return Digest{}, ErrInvalidFormat
	}
	if d.Key, err = base64.RawStdEncoding.DecodeString(parts[5]); err != nil {
		return Digest{}, ErrInvalidFormat
	}
	p.SaltLength = uint32(len(d.Salt))
	p.KeyLength = uint32(len(d.Key))

	if err := p.Validate(); err != nil {
		return Digest{}, err
	}
	return d, nil
}
