package generator

import (
	"errors"
	"fmt"
	"strings"
)

const (
	MinLength       = 4
	MaxLength       = 20
	MinStrongLength = 12
	DefaultLength   = 8
)

var (
	ErrZeroLength       = errors.New("cannot generate a password of zero length")
	ErrLengthOutOfRange = errors.New("password length out of range")
	ErrNoGroups         = errors.New("at least one symbol group must be selected")
	ErrUnknownGroup     = errors.New("unknown symbol group")
)

// Group is a named character class used as a sampling bucket.
type Group int

const (
	Alphabet Group = iota
	Digits
	Special
)

// Groups lists every symbol group in resolution order.
var Groups = []Group{Alphabet, Digits, Special}

var groupSymbols = map[Group]string{
	Alphabet: "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ",
	Digits:   "0123456789",
	Special:  "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~",
}

var groupNames = map[Group]string{
	Alphabet: "letters",
	Digits:   "digits",
	Special:  "special characters",
}

// Symbols returns the character set sampled for the group.
func (g Group) Symbols() string {
	return groupSymbols[g]
}

// String returns the human-readable group name.
func (g Group) String() string {
	if name, ok := groupNames[g]; ok {
		return name
	}
	return fmt.Sprintf("group(%d)", int(g))
}

// Options carries the caller's requested settings.
// Nil fields mean "not given" and fall back to defaults.
type Options struct {
	Length   *int
	Alphabet *bool
	Digits   *bool
	Special  *bool
}

// Params are validated generator settings.
type Params struct {
	Length int
	Groups []Group
}

// Describe returns the selected group names joined for display.
func (p Params) Describe() string {
	names := make([]string, len(p.Groups))
	for i, g := range p.Groups {
		names[i] = g.String()
	}
	return strings.Join(names, ", ")
}

// Resolve applies defaults to opts and validates the result.
func Resolve(opts Options) (Params, error) {
	length := DefaultLength
	if opts.Length != nil {
		length = *opts.Length
	}

	if length == 0 {
		return Params{}, ErrZeroLength
	}
	if length < MinLength || length > MaxLength {
		return Params{}, fmt.Errorf("%w: %d is not between %d and %d", ErrLengthOutOfRange, length, MinLength, MaxLength)
	}

	selected := map[Group]*bool{
		Alphabet: opts.Alphabet,
		Digits:   opts.Digits,
		Special:  opts.Special,
	}

	var groups []Group
	for _, g := range Groups {
		if boolOrDefault(selected[g], true) {
			groups = append(groups, g)
		}
	}

	if len(groups) == 0 {
		return Params{}, ErrNoGroups
	}

	return Params{Length: length, Groups: groups}, nil
}

// boolOrDefault returns the dereferenced pointer value, or the fallback if nil.
func boolOrDefault(p *bool, fallback bool) bool {
	if p == nil {
		return fallback
	}
	return *p
}
