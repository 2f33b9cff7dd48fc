package service

import (
	"fmt"
	"log/slog"

	"github.com/dhorizons/passgen/internal/digest"
	"github.com/dhorizons/passgen/internal/generator"
	"github.com/dhorizons/passgen/internal/model"
)

// GeneratorService handles password generation business logic.
type GeneratorService struct {
	src generator.Source
}

// NewGeneratorService creates a GeneratorService backed by crypto/rand.
func NewGeneratorService() *GeneratorService {
	return &GeneratorService{src: generator.CryptoSource}
}

// Generate resolves the request, produces a password and rates it.
func (s *GeneratorService) Generate(req model.GenerateRequest) (model.GenerateResponse, error) {
	params, err := generator.Resolve(generator.Options{
		Length:   req.Length,
		Alphabet: req.Alphabet,
		Digits:   req.Digits,
		Special:  req.Special,
	})
	if err != nil {
		return model.GenerateResponse{}, err
	}

	password, err := generator.GenerateFrom(s.src, params)
	if err != nil {
		return model.GenerateResponse{}, fmt.Errorf("generating password: %w", err)
	}

	resp := model.GenerateResponse{
		Password: password,
		Length:   len(password),
		Groups:   make([]string, len(params.Groups)),
		Strength: generator.Rate(params),
	}
	for i, g := range params.Groups {
		resp.Groups[i] = g.String()
	}

	if req.Hash {
		resp.Hash, err = digest.Encode(password)
		if err != nil {
			return model.GenerateResponse{}, fmt.Errorf("hashing password: %w", err)
		}
	}

	slog.Debug("password generated", "length", params.Length, "groups", params.Describe(), "strength", resp.Strength.String())

	return resp, nil
}
