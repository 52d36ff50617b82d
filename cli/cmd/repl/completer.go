package repl

import (
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/sahilm/fuzzy"

	"github.com/ardnew/defiro/lang"
)

// ctrlCommands are the available control-mode commands.
var ctrlCommands = []string{"help", "list", "reset", "edit", "clear", "quit"}

// keywords are the statement keywords offered as completions.
var keywords = []string{lang.TokenLet.String(), lang.TokenInclude.String()}

// ctrlMarker starts a control command typed in eval mode, e.g. ":list".
const ctrlMarker = ':'

// isWordBoundary returns true if the rune is a word delimiter for completion
// purposes: whitespace, punctuation of the language, the statement
// separator, and the control command marker.
func isWordBoundary(r rune) bool {
	switch r {
	case ' ', '\t', '(', ')', ',', '=', ';', ctrlMarker:
		return true
	}

	return false
}

// wordBounds returns the current word at the cursor position and its byte
// boundaries within input.
// Returns an empty word when the cursor sits on a boundary (after a space,
// after an open paren, start of line, etc.).
func wordBounds(input string, cursor int) (word string, start, end int) {
	if cursor > len(input) {
		cursor = len(input)
	}

	// Walk backward from cursor to find word start.
	start = cursor

	for start > 0 {
		r, size := utf8.DecodeLastRuneInString(input[:start])
		if isWordBoundary(r) {
			break
		}

		start -= size
	}

	// Walk forward from cursor to find word end.
	end = cursor

	for end < len(input) {
		r, size := utf8.DecodeRuneInString(input[end:])
		if isWordBoundary(r) {
			break
		}

		end += size
	}

	word = input[start:end]

	return word, start, end
}

// isCtrlWord reports whether the word starting at wordStart is the name of
// a control command typed after the marker at the start of the line.
func isCtrlWord(input string, wordStart int) bool {
	prefix := strings.TrimLeft(input[:wordStart], " \t")

	return prefix == string(ctrlMarker)
}

// evalCandidates returns the names that are valid completions of an
// expression or statement: keywords, builtins, and bound names.
func evalCandidates(env *lang.Env) []string {
	names := make([]string, 0, len(keywords)+len(lang.Builtins())+env.Len())
	names = append(names, keywords...)
	names = append(names, lang.Builtins()...)

	return append(names, env.Names()...)
}

// computeMatches calculates the fuzzy match results for the word at the cursor.
// It returns the matches (ranked best-first), the candidate list, and the word
// boundaries. Empty words and hex literals have no matches.
func (m model) computeMatches() (
	matches fuzzy.Matches,
	candidates []string,
	wordStart, wordEnd int,
) {
	input := m.input.Value()
	cursor := m.input.Position()

	word, ws, we := wordBounds(input, cursor)
	wordStart, wordEnd = ws, we

	if word == "" || strings.HasPrefix(word, "#") {
		return nil, nil, wordStart, wordEnd
	}

	if m.mode == modeCtrl || isCtrlWord(input, wordStart) {
		candidates = ctrlCommands
	} else {
		candidates = evalCandidates(m.env)
	}

	matches = fuzzy.Find(word, candidates)

	return matches, candidates, wordStart, wordEnd
}

// renderCandidateBar builds the single-line completion bar, ellipsized to fit
// within the given terminal width. Each candidate is rendered with its matched
// characters highlighted. The selected candidate (when tabbing) uses the
// selected style.
func renderCandidateBar(
	matches fuzzy.Matches,
	suggIdx int,
	tabActive bool,
	width int,
) string {
	if len(matches) == 0 || width <= 0 {
		return ""
	}

	const sep = "  "

	sepWidth := lipgloss.Width(sep)
	ellipsis := hintStyle.Render("...")
	ellipsisWidth := lipgloss.Width(ellipsis)

	var b strings.Builder

	used := 0

	for i, match := range matches {
		selected := tabActive && i == suggIdx
		rendered := renderCandidate(match, selected)
		candidateWidth := lipgloss.Width(rendered)

		entryWidth := candidateWidth
		if i > 0 {
			entryWidth += sepWidth
		}

		// Check if adding this candidate would exceed width.
		if used+entryWidth+ellipsisWidth > width && i > 0 {
			b.WriteString(sep)
			b.WriteString(ellipsis)

			break
		}

		if i > 0 {
			b.WriteString(sep)
		}

		b.WriteString(rendered)

		used += entryWidth
	}

	return b.String()
}

// renderCandidate renders a single candidate with matched characters
// highlighted. Builtins are displayed with a "()" suffix.
func renderCandidate(match fuzzy.Match, selected bool) string {
	baseStyle := suggestionStyle
	highlightStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("4")).
		Bold(true)

	if selected {
		baseStyle = selectedStyle
		highlightStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("4")).
			Bold(true)
	}

	matchSet := make(map[int]bool, len(match.MatchedIndexes))
	for _, idx := range match.MatchedIndexes {
		matchSet[idx] = true
	}

	var b strings.Builder

	for i, r := range match.Str {
		ch := string(r)
		if matchSet[i] {
			b.WriteString(highlightStyle.Render(ch))
		} else {
			b.WriteString(baseStyle.Render(ch))
		}
	}

	// The suffix is only displayed, never completed.
	if lang.LookupBuiltin(match.Str) != lang.BuiltinUnknown {
		b.WriteString(baseStyle.Render("()"))
	}

	return b.String()
}
