package payment

import (
	"strconv"
	"strings"

	"premium-reconciler/internal/domain/order"
)

// Links are wallet deep links that prefill the transfer. Every variant is a
// pure function of destination, amount and comment.
type Links struct {
	Native   string
	Tonhub   string
	Telegram string
	Explorer string
}

func BuildLinks(destination string, amount order.Amount, code order.Code) Links {
	return Links{
		Native:   NativeLink(destination, amount, code.String()),
		Tonhub:   TonhubLink(destination, amount, code.String()),
		Telegram: TelegramWalletLink(destination, amount, code.String()),
		Explorer: ExplorerLink(destination),
	}
}

func NativeLink(destination string, amount order.Amount, comment string) string {
	return "ton://transfer/" + destination + "?amount=" + strconv.FormatInt(amount.Nano(), 10) + "&text=" + quote(comment)
}

func TonhubLink(destination string, amount order.Amount, comment string) string {
	return "https://tonhub.com/transfer/" + destination + "?amount=" + strconv.FormatInt(amount.Nano(), 10) + "&text=" + quote(comment)
}

// TelegramWalletLink takes the amount in TON, not nano.
func TelegramWalletLink(destination string, amount order.Amount, comment string) string {
	return "https://t.me/wallet/send/" + destination + "?amount=" + amount.String() + "&asset=TON&text=" + quote(comment)
}

func ExplorerLink(destination string) string {
	return "https://tonviewer.com/" + destination
}

// quote percent-encodes every byte outside ALPHA / DIGIT / "-._~" and '/'.
// url.QueryEscape would turn spaces into '+', and url.PathEscape leaves '&'
// and '=' alone, both of which break the text parameter.
func quote(s string) string {
	const hexDigits = "0123456789ABCDEF"
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if isUnreserved(c) || c == '/' {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(hexDigits[c>>4])
		b.WriteByte(hexDigits[c&0x0f])
	}
	return b.String()
}

func isUnreserved(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	case c == '-', c == '.', c == '_', c == '~':
		return true
	default:
		return false
	}
}
