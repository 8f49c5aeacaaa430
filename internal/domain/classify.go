package domain

import "strings"

// KeywordRule maps a set of substrings to a category.
type KeywordRule struct {
	Category Category
	Keywords []string
}

// Matches reports whether any keyword is contained in the (lowercased) domain.
func (r KeywordRule) Matches(d string) bool {
	for _, k := range r.Keywords {
		if strings.Contains(d, k) {
			return true
		}
	}
	return false
}

// keywordRules is evaluated top to bottom; the first match wins, so order
// decides ambiguous domains ("cybertoolsuite-ai" is tools, not summaries).
var keywordRules = []KeywordRule{
	{CategoryTools, []string{"toolsuite", "toolshed", "toolshub", "webmastertools", "cybertool", "digitaltool"}},
	{CategorySummaries, []string{"ai", "abridged", "summary", "summaries", "condense", "archivewithai", "collector", "zusammenfass"}},
	{CategoryDev, []string{"webdev", "codewith", "aidev", "nextgenwebdev", "futuristwebdev"}},
	{CategoryHustle, []string{"hustle", "sidequest", "neben", "horizonte"}},
	{CategoryExperiments, []string{"experiment", "lab", "erkundung", "ideenexperimente", "neugier"}},
	{CategoryDiscworld, []string{"discworld", "scheibenwelt", "ankh-morpork", "vetinari", "pseudopolisplatz"}},
	{CategoryWhimsy, []string{"gecko", "otter", "vollwieeinotter"}},
	{CategoryTravel, []string{"naechste", "ausfahrt", "entdeckungsreise"}},
	{CategoryCommunity, []string{"community", "forum", "stammtisch", "gemeinschaft", "treffpunkt"}},
	{CategoryProductivity, []string{"productiv", "produktiv", "focus", "fokus", "workflow", "planner"}},
	{CategoryPersonalBrand, []string{"portfolio", "lebenslauf", "resume", "madita"}},
	{CategoryMottoBrand, []string{"motto", "mantra", "slogan", "leitspruch", "credo"}},
}

// KeywordRules returns a copy of the classification table in priority order.
func KeywordRules() []KeywordRule {
	out := make([]KeywordRule, len(keywordRules))
	for i, r := range keywordRules {
		out[i] = KeywordRule{
			Category: r.Category,
			Keywords: append([]string(nil), r.Keywords...),
		}
	}
	return out
}

// Classify returns the category of a domain. It never fails: a domain that
// matches no rule is CategoryGeneric. Matching is plain substring
// containment, so "ai" matches anywhere in the name.
func Classify(d Domain) Category {
	s := strings.ToLower(string(d))
	for _, r := range keywordRules {
		if r.Matches(s) {
			return r.Category
		}
	}
	return CategoryGeneric
}
