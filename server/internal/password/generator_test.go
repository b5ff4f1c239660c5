package password

import (
	"math/rand/v2"
	"strings"
	"sync"
	"testing"
	"unicode/utf8"
)

func seeded(seed byte) *rand.Rand {
	var s [32]byte
	s[0] = seed
	return rand.New(rand.NewChaCha8(s))
}

// firstRand always picks index 0 and never shuffles.
type firstRand struct{ shuffles int }

func (f *firstRand) IntN(int) int { return 0 }

func (f *firstRand) Shuffle(int, func(i, j int)) { f.shuffles++ }

// hasAllClasses reports whether pw holds one character of each class.
func hasAllClasses(pw string) bool {
	return countClasses(pw) == len(Classes)
}

func TestGenerate_LengthAndDiversity(t *testing.T) {
	g := NewGenerator(seeded(1))
	for _, n := range []int{4, 5, 8, 12, 16, 17, 32, 64, 128} {
		for i := 0; i < 50; i++ {
			pw := g.Generate(n)
			if len(pw) != n {
				t.Fatalf("Generate(%d): got length %d (%q)", n, len(pw), pw)
			}
			if !hasAllClasses(pw) {
				t.Fatalf("Generate(%d): %q is missing a character class", n, pw)
			}
		}
	}
}

func TestGenerate_RaisesShortLengths(t *testing.T) {
	g := NewGenerator(seeded(2))
	for _, n := range []int{-10, 0, 1, 2, 3} {
		pw := g.Generate(n)
		if len(pw) != MinLength {
			t.Errorf("Generate(%d): got length %d, want %d", n, len(pw), MinLength)
		}
		if !hasAllClasses(pw) {
			t.Errorf("Generate(%d): %q is missing a character class", n, pw)
		}
	}
}

func TestGenerate_OnlyAlphabetCharacters(t *testing.T) {
	g := NewGenerator(seeded(3))
	for i := 0; i < 100; i++ {
		pw := g.Generate(32)
		if !utf8.ValidString(pw) {
			t.Fatalf("invalid UTF-8: %q", pw)
		}
		for _, r := range pw {
			if !strings.ContainsRune(Alphabet, r) {
				t.Fatalf("%q contains %q which is outside the alphabet", pw, r)
			}
		}
	}
}

func TestGenerate_MandatoryThenFiller(t *testing.T) {
	// With a source that always picks the first element and never permutes,
	// the mandatory characters come first in class order, then filler.
	f := &firstRand{}
	pw := NewGenerator(f).Generate(7)
	if pw != "aA0!aaa" {
		t.Errorf("Generate(7): got %q, want %q", pw, "aA0!aaa")
	}
	if f.shuffles != 1 {
		t.Errorf("Shuffle calls: got %d, want 1", f.shuffles)
	}
}

func TestGenerate_SameSeedSameOutput(t *testing.T) {
	a := NewGenerator(seeded(9)).Generate(24)
	b := NewGenerator(seeded(9)).Generate(24)
	if a != b {
		t.Errorf("same seed produced %q and %q", a, b)
	}
}

func TestGenerate_NotConstant(t *testing.T) {
	g := NewGenerator(nil)
	seen := make(map[string]struct{})
	for i := 0; i < 20; i++ {
		seen[g.Generate(16)] = struct{}{}
	}
	if len(seen) < 2 {
		t.Errorf("20 calls produced %d distinct passwords", len(seen))
	}
}

func TestGenerate_FillerCoversAlphabet(t *testing.T) {
	g := NewGenerator(seeded(4))
	counts := make(map[rune]int)
	for i := 0; i < 300; i++ {
		for _, r := range g.Generate(64) {
			counts[r]++
		}
	}
	if len(counts) != len(Alphabet) {
		t.Errorf("distinct characters: got %d, want %d", len(counts), len(Alphabet))
	}
}

func TestGenerate_SecureRandConcurrent(t *testing.T) {
	g := NewGenerator(SecureRand())
	var wg sync.WaitGroup
	errs := make(chan string, 64)
	for i := 0; i < 64; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if pw := g.Generate(20); len(pw) != 20 || !hasAllClasses(pw) {
				errs <- pw
			}
		}()
	}
	wg.Wait()
	close(errs)
	for pw := range errs {
		t.Errorf("invalid password from concurrent Generate: %q", pw)
	}
}
