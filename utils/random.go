package utils

import "math/rand"

// Kode pendek untuk pass & payment ID: alfanumerik kapital (base-36).
const idAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

func randomCode(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = idAlphabet[rand.Intn(len(idAlphabet))]
	}
	return string(b)
}

// NewPassID returns a short human-presentable pass code, e.g. "SB4K2P9XA".
func NewPassID() string {
	return "SB" + randomCode(7)
}

// NewPaymentID returns a short transaction code, e.g. "PAY1A2B3C".
func NewPaymentID() string {
	return "PAY" + randomCode(6)
}
