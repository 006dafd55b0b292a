package order

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"strings"

	"premium-reconciler/internal/domain/user"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidAmount = errors.New("amount must be positive")
	ErrInvalidCode   = errors.New("invalid order code")
)

// suffixBytes random bytes give four upper-case hex characters.
const suffixBytes = 2

// Code is the memo a payer must attach to the transfer.
type Code struct {
	value string
}

// CodeGenerator produces fresh codes; the store decides whether one is unused.
type CodeGenerator interface {
	Generate(owner user.ID) (Code, error)
}

type RandomCodeGenerator struct {
	prefix string
	random io.Reader
}

func NewRandomCodeGenerator(prefix string) *RandomCodeGenerator {
	return &RandomCodeGenerator{prefix: prefix, random: rand.Reader}
}

// NewCodeGeneratorWithReader is used by tests that need deterministic suffixes.
func NewCodeGeneratorWithReader(prefix string, r io.Reader) *RandomCodeGenerator {
	return &RandomCodeGenerator{prefix: prefix, random: r}
}

func (g *RandomCodeGenerator) Generate(owner user.ID) (Code, error) {
	buf := make([]byte, suffixBytes)
	if _, err := io.ReadFull(g.random, buf); err != nil {
		return Code{}, fmt.Errorf("read random suffix: %w", err)
	}
	suffix := strings.ToUpper(hex.EncodeToString(buf))
	return NewCode(fmt.Sprintf("%s-%d-%s", g.prefix, owner.Int64(), suffix))
}

func NewCode(value string) (Code, error) {
	if value == "" || strings.TrimSpace(value) != value {
		return Code{}, ErrInvalidCode
	}
	return Code{value: value}, nil
}

func (c Code) String() string {
	return c.value
}

func (c Code) IsZero() bool {
	return c.value == ""
}

// Amount is a quantity in whole TON with nano (1e-9) precision.
type Amount struct {
	value decimal.Decimal
}

const nanoExp = 9

func NewAmount(v decimal.Decimal) (Amount, error) {
	if !v.IsPositive() {
		return Amount{}, ErrInvalidAmount
	}
	return Amount{value: v}, nil
}

func (a Amount) Decimal() decimal.Decimal {
	return a.value
}

// Nano truncates toward zero, matching how wallets interpret amount links.
func (a Amount) Nano() int64 {
	return a.value.Shift(nanoExp).Truncate(0).IntPart()
}

func (a Amount) String() string {
	return a.value.String()
}
