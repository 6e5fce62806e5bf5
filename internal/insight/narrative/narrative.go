// Package narrative selects canned explanatory sentences for system
// relationships and builds short scan summaries.
package narrative

import (
	"fmt"
	"strings"
)

// relationships holds pre-written sentences describing how two body systems
// influence each other, keyed by lowercase system name in both directions of
// lookup.
var relationships = map[string]map[string]string{
	"nervesystem": {
		"fordøyelsessystem":  "Nervesystemet og fordøyelsen er tett koblet via vagusnerven; vedvarende stress demper fordøyelsen og kan forstyrre tarmfloraen.",
		"hormonsystem":       "Nervesystemet styrer stressresponsen som igjen regulerer hormonproduksjonen i binyrene.",
		"immunsystem":        "Langvarig aktivering av nervesystemet svekker immunforsvarets evne til å regulere betennelse.",
		"sirkulasjonssystem": "Det autonome nervesystemet regulerer puls og blodtrykk direkte.",
	},
	"hormonsystem": {
		"fordøyelsessystem": "Hormonbalansen påvirker tarmbevegelser og næringsopptak, og tarmfloraen påvirker hormonomsetningen tilbake.",
		"immunsystem":       "Kortisol og andre hormoner demper eller forsterker immunresponsen.",
	},
	"fordøyelsessystem": {
		"immunsystem": "En stor del av immunforsvaret sitter i tarmveggen; ubalanse i tarmfloraen påvirker immunresponsen i hele kroppen.",
	},
	"respirasjonssystem": {
		"sirkulasjonssystem": "Pust og sirkulasjon arbeider sammen om oksygentransporten; grunn pust gir sirkulasjonen mer å kompensere for.",
	},
	"muskelsystem": {
		"nervesystem": "Muskelspenninger og nervesystemet forsterker hverandre; vedvarende spenning holder stressresponsen aktiv.",
	},
}

// DescribeRelationship returns the canned sentence for the pair of systems,
// trying both key orders, or a generic fallback interpolating the names as
// the caller wrote them.
func DescribeRelationship(systemA, systemB string) string {
	a := strings.ToLower(systemA)
	b := strings.ToLower(systemB)

	if inner, ok := relationships[a]; ok {
		if sentence, ok := inner[b]; ok {
			return sentence
		}
	}
	if inner, ok := relationships[b]; ok {
		if sentence, ok := inner[a]; ok {
			return sentence
		}
	}
	return fmt.Sprintf("Det er en fysiologisk sammenheng mellom %s og %s; belastning i det ene systemet påvirker ofte det andre.", systemA, systemB)
}

// Issue is the minimal issue representation the summarizer needs.
type Issue struct {
	Name string
	Load int
}

// nothingSignificant is appended when a scan surfaces no issues.
const nothingSignificant = "Ingen enkeltområder skiller seg ut akkurat nå."

// Summarize builds the one-paragraph scan summary. The body-state phrase is
// derived from score by the supplied describer; when topIssues is non-empty
// the highest-load issue is named in lowercase.
func Summarize(topIssues []Issue, score int, describe func(int) string) string {
	state := ""
	if describe != nil {
		state = describe(score)
	}

	if len(topIssues) == 0 {
		return strings.TrimSpace(state + " " + nothingSignificant)
	}

	top := topIssues[0]
	for _, issue := range topIssues[1:] {
		if issue.Load > top.Load {
			top = issue
		}
	}
	return strings.TrimSpace(fmt.Sprintf("%s Den største belastningen er knyttet til %s.", state, strings.ToLower(top.Name)))
}
