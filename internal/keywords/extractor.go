package keywords

import (
	"math"
	"sort"
	"strings"
	"unicode"
)

const (
	maxRankedTerms = 50
	maxPhrases     = 30
	maxEntities    = 20
)

// Extract produces the full keyword set for one input text. Empty or
// whitespace-only input yields a KeywordSet with all sequences empty;
// extraction never fails.
func Extract(text string) KeywordSet {
	normalized := Normalize(text)
	if normalized == "" {
		return emptySet()
	}

	tokens := Tokenize(normalized)
	terms := rankTerms(tokens)
	skills := detectSkills(normalized)
	verbs := detectActionVerbs(normalized)
	phrases := extractPhrases(tokens)
	entities := extractEntities(text)

	set := KeywordSet{
		Keywords:    unionKeywords(terms, skills, phrases),
		Skills:      skills,
		ActionVerbs: verbs,
		Phrases:     phrases,
		Entities:    entities,
	}
	return set
}

func emptySet() KeywordSet {
	return KeywordSet{
		Keywords:    []string{},
		Skills:      []SkillRecord{},
		ActionVerbs: []VerbRecord{},
		Phrases:     []string{},
		Entities:    []Entity{},
	}
}

// rankTerms ranks tokens by a single-document tf-idf style score: raw
// frequency damped by how common the token is within the document itself.
// Stop words and tokens of length <= 2 are dropped; the top 50 survive.
func rankTerms(tokens []string) []string {
	freq := make(map[string]int, len(tokens))
	total := 0
	for _, tok := range tokens {
		if len(tok) <= 2 || IsStopWord(tok) {
			continue
		}
		freq[tok]++
		total++
	}
	if total == 0 {
		return []string{}
	}

	type scored struct {
		term  string
		score float64
	}
	ranked := make([]scored, 0, len(freq))
	for term, count := range freq {
		tf := float64(count) / float64(total)
		idf := math.Log(float64(total)/float64(1+count)) + 1
		ranked = append(ranked, scored{term: term, score: tf * idf})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].score != ranked[j].score {
			return ranked[i].score > ranked[j].score
		}
		return ranked[i].term < ranked[j].term
	})
	if len(ranked) > maxRankedTerms {
		ranked = ranked[:maxRankedTerms]
	}
	out := make([]string, 0, len(ranked))
	for _, s := range ranked {
		out = append(out, s.term)
	}
	return out
}

// detectSkills matches every dictionary entry whole-word against the
// normalized text. Multi-word entries match as contiguous phrases.
func detectSkills(normalized string) []SkillRecord {
	out := make([]SkillRecord, 0, 16)
	for _, category := range SkillCategories() {
		for _, skill := range skillDictionary[category] {
			count := countWholeWord(normalized, skill)
			if count > 0 {
				out = append(out, SkillRecord{Skill: skill, Category: category, Count: count})
			}
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Count > out[j].Count
	})
	return out
}

func detectActionVerbs(normalized string) []VerbRecord {
	out := make([]VerbRecord, 0, 8)
	for _, verb := range actionVerbs {
		count := countWholeWord(normalized, verb)
		if count > 0 {
			out = append(out, VerbRecord{Verb: verb, Count: count})
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Count > out[j].Count
	})
	return out
}

// countWholeWord counts non-overlapping occurrences of term in text where
// the occurrence is not embedded in a longer word. A manual boundary scan
// is used instead of \b because dictionary terms may end in non-word runes
// ("c++", "c#", ".net").
func countWholeWord(text, term string) int {
	if term == "" {
		return 0
	}
	count := 0
	offset := 0
	for {
		idx := strings.Index(text[offset:], term)
		if idx < 0 {
			break
		}
		start := offset + idx
		end := start + len(term)
		if boundaryBefore(text, start) && boundaryAfter(text, end) {
			count++
		}
		offset = end
	}
	return count
}

func boundaryBefore(text string, start int) bool {
	if start == 0 {
		return true
	}
	return !isWordByte(text[start-1])
}

func boundaryAfter(text string, end int) bool {
	if end >= len(text) {
		return true
	}
	return !isWordByte(text[end])
}

func isWordByte(b byte) bool {
	return b >= 'a' && b <= 'z' || b >= 'A' && b <= 'Z' || b >= '0' && b <= '9'
}

// extractPhrases collects multi-word phrase candidates from maximal runs of
// consecutive non-stop-word tokens: every 2- and 3-token window whose first
// word is not a stop word and whose joined length exceeds 5 characters.
func extractPhrases(tokens []string) []string {
	seen := make(map[string]struct{}, maxPhrases)
	out := make([]string, 0, maxPhrases)

	add := func(phrase string) bool {
		if len(phrase) <= 5 {
			return true
		}
		if _, dup := seen[phrase]; dup {
			return true
		}
		seen[phrase] = struct{}{}
		out = append(out, phrase)
		return len(out) < maxPhrases
	}

	run := make([]string, 0, 8)
	flush := func() bool {
		for size := 2; size <= 3; size++ {
			for i := 0; i+size <= len(run); i++ {
				if !add(strings.Join(run[i:i+size], " ")) {
					return false
				}
			}
		}
		run = run[:0]
		return true
	}

	for _, tok := range tokens {
		if IsStopWord(tok) || !isAlphaToken(tok) {
			if !flush() {
				return out
			}
			continue
		}
		run = append(run, tok)
	}
	flush()
	return out
}

func isAlphaToken(tok string) bool {
	for _, r := range tok {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return len(tok) > 0
}

var orgSuffixes = map[string]struct{}{
	"inc": {}, "llc": {}, "ltd": {}, "corp": {}, "corporation": {},
	"company": {}, "university": {}, "college": {}, "institute": {},
	"technologies": {}, "solutions": {}, "systems": {}, "labs": {},
	"group": {}, "partners": {}, "consulting": {}, "bank": {},
}

// extractEntities collects organization-like and place-like spans from the
// original (case-preserving) text: runs of capitalized words, classified by
// trailing organization suffix or by a preceding "in"/"at" preposition.
func extractEntities(text string) []Entity {
	words := strings.Fields(text)
	out := make([]Entity, 0, maxEntities)
	seen := make(map[string]struct{}, maxEntities)

	span := make([]string, 0, 6)
	prev := ""
	flush := func(before string) {
		if len(span) == 0 {
			return
		}
		value := strings.Join(span, " ")
		span = span[:0]
		if len(value) <= 2 || len(out) >= maxEntities {
			return
		}
		key := strings.ToLower(value)
		if _, dup := seen[key]; dup {
			return
		}
		entityType := classifyEntity(value, before)
		if entityType == "" {
			return
		}
		seen[key] = struct{}{}
		out = append(out, Entity{Type: entityType, Value: value})
	}

	spanStarter := ""
	for _, w := range words {
		trimmed := strings.Trim(w, ".,;:()[]")
		if isCapitalizedWord(trimmed) {
			if len(span) == 0 {
				spanStarter = strings.ToLower(prev)
			}
			span = append(span, trimmed)
		} else {
			flush(spanStarter)
		}
		prev = trimmed
	}
	flush(spanStarter)
	return out
}

func classifyEntity(value, before string) string {
	words := strings.Fields(strings.ToLower(value))
	last := words[len(words)-1]
	if _, ok := orgSuffixes[last]; ok {
		return "organization"
	}
	if before == "in" || before == "near" {
		return "place"
	}
	if before == "at" && len(words) >= 2 {
		return "organization"
	}
	if len(words) >= 2 {
		return "organization"
	}
	return ""
}

func isCapitalizedWord(w string) bool {
	if len(w) < 2 {
		return false
	}
	runes := []rune(w)
	if !unicode.IsUpper(runes[0]) {
		return false
	}
	for _, r := range runes[1:] {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}

// unionKeywords merges ranked terms, skill names, and phrases into one
// deduplicated keyword list. Order is insignificant to callers; insertion
// order is kept so extraction stays deterministic.
func unionKeywords(terms []string, skills []SkillRecord, phrases []string) []string {
	seen := make(map[string]struct{}, len(terms)+len(skills)+len(phrases))
	out := make([]string, 0, len(terms)+len(skills)+len(phrases))
	add := func(kw string) {
		if kw == "" {
			return
		}
		if _, dup := seen[kw]; dup {
			return
		}
		seen[kw] = struct{}{}
		out = append(out, kw)
	}
	for _, t := range terms {
		add(t)
	}
	for _, s := range skills {
		add(s.Skill)
	}
	for _, p := range phrases {
		add(p)
	}
	return out
}
