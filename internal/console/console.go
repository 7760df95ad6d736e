// Package console runs an interactive encryption session over a pair of streams.
//
// A session asks for the key once, then keeps asking for an operation
// until the user picks 0 or the input ends:
//
//	Enter key for the gronsfeld cipher: БКД
//	Choose operation (0 - exit, 1 - encrypt, 2 - decrypt): 1
//	Enter text: БГЕЖ
//	Encrypted text: ВНИЗ
package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"golang.org/x/text/unicode/norm"

	"github.com/sergeii/classicrypt/internal/core/ciphers"
	"github.com/sergeii/classicrypt/internal/core/entities/variant"
	"github.com/sergeii/classicrypt/internal/core/usecases/transformtext"
	"github.com/sergeii/classicrypt/internal/settings"
)

const (
	opExit    = 0
	opEncrypt = 1
	opDecrypt = 2
)

type Transformer interface {
	Execute(context.Context, transformtext.Request) (transformtext.Response, error)
}

type Session struct {
	transformer Transformer
	variant     variant.Variant
	settings    settings.Settings
	logger      *zerolog.Logger
}

func New(
	transformer Transformer,
	v variant.Variant,
	settings settings.Settings,
	logger *zerolog.Logger,
) *Session {
	return &Session{
		transformer: transformer,
		variant:     v,
		settings:    settings,
		logger:      logger,
	}
}

// Run returns the key error when the key is rejected,
// nil once the user exits or the input is exhausted.
func (s *Session) Run(ctx context.Context, in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)

	fmt.Fprintf(out, "Enter key for the %s cipher: ", s.variant)
	key, ok := readLine(scanner)
	if !ok {
		return scanner.Err()
	}
	if s.settings.NormalizeInput {
		key = norm.NFC.String(key)
	}
	// the key is checked before any operation is offered
	if _, err := ciphers.New(s.variant, key, s.logger); err != nil {
		fmt.Fprintf(out, "Error: %s\n", err)
		return err
	}

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		fmt.Fprint(out, "Choose operation (0 - exit, 1 - encrypt, 2 - decrypt): ")
		line, ok := readLine(scanner)
		if !ok {
			fmt.Fprintln(out)
			return scanner.Err()
		}

		op, err := strconv.Atoi(line)
		if err != nil {
			fmt.Fprintln(out, "Invalid operation")
			continue
		}

		switch op {
		case opExit:
			return nil
		case opEncrypt, opDecrypt:
			fmt.Fprint(out, "Enter text: ")
			text, ok := readLine(scanner)
			if !ok {
				fmt.Fprintln(out)
				return scanner.Err()
			}
			s.transform(ctx, out, op, key, text)
		default:
			fmt.Fprintln(out, "Invalid operation")
		}
	}
}

func (s *Session) transform(ctx context.Context, out io.Writer, op int, key, text string) {
	req := transformtext.Request{
		Operation: transformtext.Encrypt,
		Variant:   s.variant,
		Key:       key,
		Text:      text,
	}
	label := "Encrypted text"
	if op == opDecrypt {
		req.Operation = transformtext.Decrypt
		label = "Decrypted text"
	}

	resp, err := s.transformer.Execute(ctx, req)
	if err != nil {
		fmt.Fprintf(out, "Error: %s\n", err)
		return
	}

	fmt.Fprintf(out, "%s: %s\n", label, resp.Text)
}

func readLine(scanner *bufio.Scanner) (string, bool) {
	if !scanner.Scan() {
		return "", false
	}
	return strings.TrimSpace(scanner.Text()), true
}
