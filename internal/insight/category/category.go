// Package category assigns free-text health labels to body-system categories
// via keyword matching.
//
// Two match policies coexist because different screens historically used
// different ones. FirstMatch stops at the first rule whose pattern occurs in
// the text; LastMatch keeps overwriting and returns the final hit. The two
// are not interchangeable for ambiguous names (an area mentioning both
// "tarm" and "hormon" categorizes differently under each), so both are
// exported and every caller is bound to the policy its screen always used.
package category

import "strings"

// Rule pairs a lowercase keyword pattern with the category it selects.
type Rule struct {
	Pattern  string
	Category string
}

// FirstMatch returns the category of the first rule whose pattern is a
// case-insensitive substring of text, or fallback when none match.
func FirstMatch(text string, rules []Rule, fallback string) string {
	lowered := strings.ToLower(text)
	for _, rule := range rules {
		if strings.Contains(lowered, rule.Pattern) {
			return rule.Category
		}
	}
	return fallback
}

// LastMatch scans every rule and returns the category of the last one whose
// pattern is a case-insensitive substring of text, or fallback when none
// match.
func LastMatch(text string, rules []Rule, fallback string) string {
	lowered := strings.ToLower(text)
	result := fallback
	for _, rule := range rules {
		if strings.Contains(lowered, rule.Pattern) {
			result = rule.Category
		}
	}
	return result
}
