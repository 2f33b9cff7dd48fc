package service

import (
	"errors"
	"reflect"
	"testing"
	"unicode"

	"github.com/dhorizons/passgen/internal/digest"
	"github.com/dhorizons/passgen/internal/generator"
	"github.com/dhorizons/passgen/internal/model"
)

func intPtr(n int) *int    { return &n }
func boolPtr(b bool) *bool { return &b }

func TestGenerate_Defaults(t *testing.T) {
	svc := NewGeneratorService()
	resp, err := svc.Generate(model.GenerateRequest{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Length != generator.DefaultLength {
		t.Errorf("expected length %d, got %d", generator.DefaultLength, resp.Length)
	}
	if len(resp.Password) != generator.DefaultLength {
		t.Errorf("expected password length %d, got %d", generator.DefaultLength, len(resp.Password))
	}
	if resp.Strength != generator.High {
		t.Errorf("expected strength High, got %v", resp.Strength)
	}
	wantGroups := []string{"letters", "digits", "special characters"}
	if !reflect.DeepEqual(resp.Groups, wantGroups) {
		t.Errorf("expected groups %v, got %v", wantGroups, resp.Groups)
	}
	if resp.Hash != "" {
		t.Errorf("expected no hash, got %q", resp.Hash)
	}
}

func TestGenerate_CustomOptions(t *testing.T) {
	svc := NewGeneratorService()
	resp, err := svc.Generate(model.GenerateRequest{
		Length:   intPtr(16),
		Alphabet: boolPtr(false),
		Digits:   boolPtr(true),
		Special:  boolPtr(false),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Length != 16 {
		t.Errorf("expected length 16, got %d", resp.Length)
	}
	if resp.Strength != generator.Medium {
		t.Errorf("expected strength Medium, got %v", resp.Strength)
	}
	for _, c := range resp.Password {
		if !unicode.IsDigit(c) {
			t.Errorf("unexpected character %q in digits-only password", c)
		}
	}
}

func TestGenerate_WithHash(t *testing.T) {
	svc := NewGeneratorService()
	resp, err := svc.Generate(model.GenerateRequest{Hash: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	match, err := digest.Verify(resp.Password, resp.Hash)
	if err != nil {
		t.Fatalf("unexpected verify error: %v", err)
	}
	if !match {
		t.Error("hash does not match generated password")
	}
}

func TestGenerate_ValidationErrors(t *testing.T) {
	tests := []struct {
		name    string
		req     model.GenerateRequest
		wantErr error
	}{
		{name: "zero length", req: model.GenerateRequest{Length: intPtr(0)}, wantErr: generator.ErrZeroLength},
		{name: "too short", req: model.GenerateRequest{Length: intPtr(3)}, wantErr: generator.ErrLengthOutOfRange},
		{name: "too long", req: model.GenerateRequest{Length: intPtr(200)}, wantErr: generator.ErrLengthOutOfRange},
		{
			name: "no groups",
			req: model.GenerateRequest{
				Alphabet: boolPtr(false),
				Digits:   boolPtr(false),
				Special:  boolPtr(false),
			},
			wantErr: generator.ErrNoGroups,
		},
	}

	svc := NewGeneratorService()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Generate(tt.req)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}
