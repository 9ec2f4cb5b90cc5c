package model_test

import (
	"strings"
	"testing"

	"github.com/Ni2M/dexpy/model"
)

// twoFactorInteractions builds "A + B + ... + AB + AC + ..." over k factors.
func twoFactorInteractions(k int) string {
	a := model.DefaultAlphabet()
	names := make([]string, k)
	for i := range names {
		names[i], _ = a.Name(i)
	}
	parts := append([]string(nil), names...)
	for i := 0; i < k; i++ {
		for j := i + 1; j < k; j++ {
			parts = append(parts, names[i]+"*"+names[j])
		}
	}

	return strings.Join(parts, " + ")
}

// BenchmarkParse_2FI30 parses a 30-factor two-factor-interaction model.
func BenchmarkParse_2FI30(b *testing.B) {
	s := twoFactorInteractions(30)
	p := model.NewParser()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := p.ParseModel(s); err != nil {
			b.Fatalf("ParseModel failed: %v", err)
		}
	}
}

// BenchmarkModel_String renders the same model.
func BenchmarkModel_String(b *testing.B) {
	m, err := model.Parse(twoFactorInteractions(30))
	if err != nil {
		b.Fatalf("Parse failed: %v", err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = m.String()
	}
}
