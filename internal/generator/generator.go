// Package generator builds random passwords from balanced symbol groups
// and rates their strength.
package generator

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
)

// Source yields uniform random integers in [0, n).
type Source interface {
	Intn(n int) (int, error)
}

type cryptoSource struct{}

// Intn picks a uniform index using crypto/rand.
func (cryptoSource) Intn(n int) (int, error) {
	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		return 0, err
	}
	return int(v.Int64()), nil
}

// CryptoSource is the Source used by Generate.
var CryptoSource Source = cryptoSource{}

// Generate creates a password for p using CryptoSource.
func Generate(p Params) (string, error) {
	return GenerateFrom(CryptoSource, p)
}

// GenerateFrom creates a password for p drawing randomness from src.
func GenerateFrom(src Source, p Params) (string, error) {
	if p.Length <= 0 {
		return "", ErrZeroLength
	}
	if len(p.Groups) == 0 {
		return "", ErrNoGroups
	}
	for _, g := range p.Groups {
		if g.Symbols() == "" {
			return "", fmt.Errorf("%w: %s", ErrUnknownGroup, g)
		}
	}

	used := make(map[Group]int, len(p.Groups))
	result := make([]byte, p.Length)

	for i := range result {
		group, err := pickGroup(src, p, used)
		if err != nil {
			return "", err
		}

		ch, err := randChar(src, group.Symbols())
		if err != nil {
			return "", err
		}

		if group == Alphabet {
			flip, err := src.Intn(2)
			if err != nil {
				return "", fmt.Errorf("choosing letter case: %w", err)
			}
			if flip == 1 {
				ch = strings.ToUpper(string(ch))[0]
			}
		}

		result[i] = ch
	}

	return string(result), nil
}

// pickGroup chooses a group uniformly, re-picking while the chosen group
// has already reached length/len(groups)+1 uses.
func pickGroup(src Source, p Params, used map[Group]int) (Group, error) {
	limit := float64(p.Length)/float64(len(p.Groups)) + 1

	for {
		idx, err := src.Intn(len(p.Groups))
		if err != nil {
			return 0, fmt.Errorf("choosing symbol group: %w", err)
		}

		g := p.Groups[idx]
		if float64(used[g]) >= limit {
			continue
		}

		used[g]++
		return g, nil
	}
}

// randChar picks a random character from charset.
func randChar(src Source, charset string) (byte, error) {
	n, err := src.Intn(len(charset))
	if err != nil {
		return 0, fmt.Errorf("choosing symbol: %w", err)
	}
	return charset[n], nil
}
