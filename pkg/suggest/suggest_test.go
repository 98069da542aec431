package suggest

import (
	"fmt"
	"reflect"
	"testing"

	"github.com/bastiangx/spelltrie/pkg/trie"
	"github.com/charmbracelet/log"
)

func init() {
	log.SetLevel(log.ErrorLevel)
}

func newSuggester(words ...string) *Suggester {
	idx := trie.New()
	for _, w := range words {
		idx.Insert(w)
	}
	return New(idx)
}

func contains(list []string, word string) bool {
	for _, w := range list {
		if w == word {
			return true
		}
	}
	return false
}

func TestSuggest(t *testing.T) {
	s := newSuggester("cat", "car", "cart", "dog", "bat", "cot", "at", "coat", "scat")

	// testCases lists words that must and must not show up for each input
	testCases := []struct {
		input       string
		mustHave    []string
		mustNotHave []string
		description string
	}{
		{"cta", []string{"cat"}, []string{"dog"}, "Transposition"},
		{"cwt", []string{"cat", "cot"}, []string{"cart"}, "Substitution"},
		{"ct", []string{"cat", "cot"}, nil, "Insertion"},
		{"catt", []string{"cat", "cart"}, nil, "Deletion and substitution"},
		{"cat", []string{"bat", "cot", "car", "cart", "at", "coat", "scat"}, []string{"cat", "dog"}, "Self excluded"},
		{"CTA", []string{"cat"}, nil, "Uppercase input"},
		{"xyzzy", nil, []string{"cat", "dog"}, "Nothing close"},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			got := s.Suggest(tc.input)
			for _, w := range tc.mustHave {
				if !contains(got, w) {
					t.Errorf("Suggest(%q) = %v, missing %q", tc.input, got, w)
				}
			}
			for _, w := range tc.mustNotHave {
				if contains(got, w) {
					t.Errorf("Suggest(%q) = %v, should not contain %q", tc.input, got, w)
				}
			}
		})
	}
}

func TestSuggestSortedAndUnique(t *testing.T) {
	s := newSuggester("bat", "cat", "cot", "cut", "at", "ca")
	got := s.Suggest("cat")
	expected := []string{"at", "bat", "ca", "cot", "cut"}
	if !reflect.DeepEqual(got, expected) {
		t.Errorf("expected %v, got %v", expected, got)
	}
}

// aa -> a by deleting either letter must only be reported once
func TestSuggestDedup(t *testing.T) {
	s := newSuggester("a")
	got := s.Suggest("aa")
	if !reflect.DeepEqual(got, []string{"a"}) {
		t.Errorf("expected [a], got %v", got)
	}
}

func TestSuggestEmptyDictionary(t *testing.T) {
	s := newSuggester()
	for _, w := range []string{"", "a", "cat"} {
		if got := s.Suggest(w); len(got) != 0 {
			t.Errorf("Suggest(%q) on empty dictionary should be empty, got %v", w, got)
		}
	}
}

func TestSuggestEmptyWord(t *testing.T) {
	s := newSuggester("a", "i", "an")
	got := s.Suggest("")
	if !reflect.DeepEqual(got, []string{"a", "i"}) {
		t.Errorf("expected single letter words, got %v", got)
	}
}

func TestScenario(t *testing.T) {
	idx := trie.New()
	for _, w := range []string{"cat", "car", "cart", "dog"} {
		idx.Insert(w)
	}
	s := New(idx)

	if !idx.StartsWith("ca") {
		t.Errorf("StartsWith(ca) should be true")
	}
	if got := idx.Collect("ca"); !reflect.DeepEqual(got, []string{"car", "cart", "cat"}) {
		t.Errorf("Collect(ca) = %v", got)
	}
	if idx.Search("ca") {
		t.Errorf("Search(ca) should be false")
	}
	if got := s.Suggest("cwt"); !contains(got, "cat") {
		t.Errorf("Suggest(cwt) = %v, missing cat", got)
	}
}

func TestCheck(t *testing.T) {
	s := newSuggester("apple", "apply", "banana")

	testCases := []struct {
		input       string
		correct     bool
		suggestions []string
	}{
		{"Apple", true, []string{}},
		{"appla", false, []string{"apple", "apply"}},
		{"bananna", false, []string{"banana"}},
		{"zzz", false, []string{}},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			res := s.Check(tc.input)
			if res.Correct != tc.correct {
				t.Errorf("Check(%q): expected correct=%v, got %v", tc.input, tc.correct, res.Correct)
			}
			if !reflect.DeepEqual(res.Suggestions, tc.suggestions) {
				t.Errorf("Check(%q): expected %v, got %v", tc.input, tc.suggestions, res.Suggestions)
			}
		})
	}
}

func TestEditsCount(t *testing.T) {
	testCases := []struct {
		input    string
		expected int
	}{
		// 26 insertions only
		{"", 26},
		// 1 deletion + 25 substitutions + 52 insertions, minus "aa" inserted twice
		{"a", 1 + 25 + 51},
	}

	for _, tc := range testCases {
		t.Run(fmt.Sprintf("%q", tc.input), func(t *testing.T) {
			if got := len(Edits(tc.input)); got != tc.expected {
				t.Errorf("expected %d edits, got %d", tc.expected, got)
			}
		})
	}
}

func TestEditsNeverContainWord(t *testing.T) {
	for _, w := range []string{"a", "aa", "abc", "book", "zz"} {
		for _, e := range Edits(w) {
			if e == w {
				t.Errorf("Edits(%q) produced the word itself", w)
			}
		}
	}
}

func TestEditsKinds(t *testing.T) {
	edits := Edits("abc")
	for _, want := range []string{"bc", "ac", "ab", "bac", "acb", "xbc", "abz", "zabc", "abcz", "aXbc"} {
		expect := want != "aXbc"
		if contains(edits, want) != expect {
			t.Errorf("Edits(abc) contains %q = %v, expected %v", want, !expect, expect)
		}
	}
}

func BenchmarkSuggest(b *testing.B) {
	idx := trie.New()
	for i := 0; i < 1000; i++ {
		idx.Insert(fmt.Sprintf("word%d", i))
	}
	for _, w := range []string{"there", "their", "the", "apple", "banana", "orange"} {
		idx.Insert(w)
	}
	s := New(idx)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		inputs := []string{"thre", "aple", "bananna", "orang", "wrod"}
		s.Suggest(inputs[i%len(inputs)])
	}
}
