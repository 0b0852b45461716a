package translate

import "testing"

func TestLongestTermFirst(t *testing.T) {
	rs := Compile(map[string]string{"skin cancer": "피부암", "cancer": "암"})
	got := rs.Apply("skin cancer risk")
	if got != "피부암 risk" {
		t.Fatalf("longest-first failed, got %q", got)
	}
}

func TestWordBoundary(t *testing.T) {
	rs := Compile(map[string]string{"rash": "발진"})
	got := rs.Apply("crash course")
	if got != "crash course" {
		t.Fatalf("boundary not respected, got %q", got)
	}
	got = rs.Apply("a rash appeared")
	if got != "a 발진 appeared" {
		t.Fatalf("bounded term not replaced, got %q", got)
	}
}

func TestHangulAdjacentIsNotABoundary(t *testing.T) {
	rs := Compile(map[string]string{"rash": "발진"})
	// a Korean particle attached to the term keeps it a single word
	if got := rs.Apply("rash는 심해요"); got != "rash는 심해요" {
		t.Fatalf("term replaced inside mixed-script word, got %q", got)
	}
	if got := rs.Apply("심한 rash 있어요"); got != "심한 발진 있어요" {
		t.Fatalf("space-bounded term not replaced, got %q", got)
	}
	if got := rs.Apply("(rash)"); got != "(발진)" {
		t.Fatalf("punctuation-bounded term not replaced, got %q", got)
	}
	if got := rs.Apply("rash"); got != "발진" {
		t.Fatalf("whole-string term not replaced, got %q", got)
	}
}

func TestOrderByCharacterCountNotBytes(t *testing.T) {
	// "test 암" is 6 characters in 8 bytes; "암 검사" is 4 characters in
	// 10 bytes. Character-count order applies the longer term first.
	rs := Compile(map[string]string{"test 암": "T1", "암 검사": "T2"})
	if got := rs.Apply("test 암 검사"); got != "T1 검사" {
		t.Fatalf("byte-length ordering leaked through, got %q", got)
	}
}

func TestCaseInsensitiveVerbatimReplacement(t *testing.T) {
	rs := Compile(map[string]string{"Eczema": "습진"})
	if got := rs.Apply("eczema flare"); got != "습진 flare" {
		t.Fatalf("got %q", got)
	}
	if got := rs.Apply("ECZEMA flare"); got != "습진 flare" {
		t.Fatalf("got %q", got)
	}
}

func TestReplacementIsLiteral(t *testing.T) {
	rs := Compile(map[string]string{"cost": "$1"})
	if got := rs.Apply("the cost"); got != "the $1" {
		t.Fatalf("replacement expanded as template, got %q", got)
	}
}

func TestEmptyAndNoRules(t *testing.T) {
	rs := Compile(map[string]string{"a": "b"})
	if got := rs.Apply(""); got != "" {
		t.Fatalf("empty input changed: %q", got)
	}
	var none Rules
	if got := none.Apply("text"); got != "text" {
		t.Fatalf("no-rule apply changed input: %q", got)
	}
}

func TestIdempotent(t *testing.T) {
	rs := Compile(map[string]string{"skin cancer": "피부암", "cancer": "암", "rash": "발진"})
	in := "skin cancer and a rash near the cancer site"
	once := rs.Apply(in)
	twice := rs.Apply(once)
	if once != twice {
		t.Fatalf("not idempotent: %q vs %q", once, twice)
	}
}

func TestDeterministicOrder(t *testing.T) {
	terms := map[string]string{"aa bb": "X", "cc dd": "Y", "aa": "Z"}
	a := Compile(terms).Apply("aa bb cc dd aa")
	for i := 0; i < 10; i++ {
		if b := Compile(terms).Apply("aa bb cc dd aa"); b != a {
			t.Fatalf("order not deterministic: %q vs %q", a, b)
		}
	}
	if a != "X Y Z" {
		t.Fatalf("got %q", a)
	}
}
