// Package chat answers free-text wellness questions with scripted replies.
package chat

import (
	"context"
	"strings"
)

// Context carries the scan-derived state woven into replies.
type Context struct {
	TopSystem      string
	TopSystemLoad  int
	CoherenceScore int
}

// Client abstracts reply providers.
type Client interface {
	Reply(ctx context.Context, message string, state Context) (string, error)
}

type rule struct {
	patterns []string
	reply    string
}

// ScriptedClient matches keywords in the message against canned replies. The
// first rule with a matching pattern wins, mirroring the issue categorizer.
type ScriptedClient struct {
	rules []rule
}

// NewScriptedClient constructs a ScriptedClient with the built-in rule set.
func NewScriptedClient() *ScriptedClient {
	return &ScriptedClient{rules: []rule{
		{
			patterns: []string{"stress", "uro", "anspent"},
			reply:    "Stress er en naturlig respons, men over tid sliter den på nervesystemet. Korte pustepauser flere ganger om dagen hjelper kroppen å veksle tilbake til hvilemodus.",
		},
		{
			patterns: []string{"søvn", "sove", "trøtt"},
			reply:    "Søvn er grunnmuren for restitusjon. Prøv fast leggetid og dempet lys den siste timen, så faller døgnrytmen lettere på plass.",
		},
		{
			patterns: []string{"mage", "tarm", "fordøyelse"},
			reply:    "Fordøyelsen påvirkes sterkt av stressnivået ditt via vagusnerven. Ro rundt måltidene og regelmessige spisetider gir tarmen bedre arbeidsforhold.",
		},
		{
			patterns: []string{"hormon", "energi"},
			reply:    "Hormonsystemet liker forutsigbarhet. Jevne måltider, dagslys om morgenen og moderat trening støtter en stabil energikurve.",
		},
		{
			patterns: []string{"muskel", "nakke", "rygg", "skulder"},
			reply:    "Spenninger i muskulaturen bygger seg ofte opp ubemerket. Små bevegelsespauser hver time gjør mer enn én lang økt i uken.",
		},
		{
			patterns: []string{"immun", "forkjølet", "syk"},
			reply:    "Immunforsvaret styrkes mest av det enkle: nok søvn, dagslys og lavere totalbelastning over tid.",
		},
	}}
}

// Reply returns the first matching canned answer. When nothing matches, the
// fallback weaves in the user's most belastede system if one is known.
func (c *ScriptedClient) Reply(ctx context.Context, message string, state Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	lower := strings.ToLower(message)
	for _, r := range c.rules {
		for _, pattern := range r.patterns {
			if strings.Contains(lower, pattern) {
				return r.reply, nil
			}
		}
	}
	if state.TopSystem != "" {
		return "Godt spørsmål. Ut fra siste skanning er det " + strings.ToLower(state.TopSystem) +
			" som bærer mest belastning akkurat nå, så små grep der gir ofte størst effekt.", nil
	}
	return "Godt spørsmål. Ta gjerne en skanning først, så kan jeg knytte svaret til hvordan kroppen din faktisk har det.", nil
}
