package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/dhorizons/passgen/internal/config"
	"github.com/dhorizons/passgen/internal/console"
	"github.com/dhorizons/passgen/internal/digest"
	"github.com/dhorizons/passgen/internal/generator"
	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file found, using environment variables")
	}
	slog.SetDefault(config.Load().Logger())

	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run executes the CLI and returns the process exit code.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := pflag.NewFlagSet("passgen", pflag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintln(stderr, "Generate a password of the given length from the selected symbol groups and rate its strength.")
		fmt.Fprintln(stderr)
		fmt.Fprintln(stderr, "Usage: passgen [flags]")
		fmt.Fprintln(stderr, "       passgen --verify <argon2id-hash> < password")
		fs.PrintDefaults()
	}

	length := fs.IntP("length", "l", generator.DefaultLength, "password length")
	alphabet := fs.BoolP("alphabet", "a", true, "use letters")
	digits := fs.BoolP("digits", "d", true, "use digits")
	special := fs.BoolP("special", "s", true, "use special characters")
	hash := fs.Bool("hash", false, "also print an Argon2id hash of the password")
	quiet := fs.BoolP("quiet", "q", false, "print only the password")
	verify := fs.String("verify", "", "check a password read from stdin against an Argon2id hash")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 2
	}

	if fs.Changed("verify") {
		if err := verifyDigest(*verify, stdin, stdout, stderr); err != nil {
			fmt.Fprintf(stderr, "error: %v\n", err)
			return 1
		}
		return 0
	}

	var opts generator.Options
	if fs.Changed("length") {
		opts.Length = length
	}
	if fs.Changed("alphabet") {
		opts.Alphabet = alphabet
	}
	if fs.Changed("digits") {
		opts.Digits = digits
	}
	if fs.Changed("special") {
		opts.Special = special
	}

	if err := generate(opts, *hash, *quiet, stdout); err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}
	return 0
}

func generate(opts generator.Options, withHash, quiet bool, stdout io.Writer) error {
	params, err := generator.Resolve(opts)
	if err != nil {
		return err
	}

	out := newConsole(stdout, !quiet)
	out.Permanent(fmt.Sprintf("A password of \"%d\" characters will be generated from %s", params.Length, params.Describe()))
	out.Dynamic("Generating password...")

	password, err := generator.Generate(params)
	if err != nil {
		out.Clear()
		return fmt.Errorf("generating password: %w", err)
	}
	strength := generator.Rate(params)
	slog.Debug("password generated", "length", params.Length, "groups", params.Describe(), "strength", strength.String())

	var encoded string
	if withHash {
		out.Dynamic("Hashing password...")
		if encoded, err = digest.Encode(password); err != nil {
			out.Clear()
			return fmt.Errorf("hashing password: %w", err)
		}
	}

	if quiet {
		fmt.Fprintln(stdout, password)
		if encoded != "" {
			fmt.Fprintln(stdout, encoded)
		}
		return nil
	}

	out.Permanent("Your password: " + password)
	out.Permanent("Password strength: " + strength.String())
	if encoded != "" {
		out.Permanent("Argon2id hash: " + encoded)
	}
	return nil
}

var errMismatch = errors.New("password does not match the hash")

// verifyDigest reads a password from stdin and checks it against encoded.
func verifyDigest(encoded string, stdin io.Reader, stdout, stderr io.Writer) error {
	d, err := digest.Parse(encoded)
	if err != nil {
		return fmt.Errorf("parsing hash: %w", err)
	}

	if f, ok := stdin.(*os.File); ok && console.IsTerminal(f) {
		fmt.Fprint(stderr, "Password: ")
		defer fmt.Fprintln(stderr)
	}
	password, err := console.ReadSecret(stdin)
	if err != nil {
		return fmt.Errorf("reading password: %w", err)
	}

	if !d.Matches(password) {
		return errMismatch
	}
	fmt.Fprintln(stdout, "Password matches the hash")
	return nil
}

func newConsole(w io.Writer, enabled bool) *console.Manager {
	if f, ok := w.(*os.File); ok {
		return console.ForFile(f, enabled)
	}
	return console.New(w, enabled)
}
