package core

import (
	"fmt"
	"strings"
)

// Principle is one of the five immutable evaluation principles.
type Principle struct {
	Name       string
	Definition string
	Test       string
}

// Principles, in canonical order. These are code, not weights: they cannot
// be prompt-injected, modified at runtime or overridden by model output.
var Principles = []Principle{
	{
		Name:       "Truth",
		Definition: "Do not distort reality or mislead",
		Test:       "Is this grounded in verifiable evidence or speculative consensus?",
	},
	{
		Name:       "Justice",
		Definition: "Treat sources, people, and statements fairly",
		Test:       "Does this treat all parties fairly, or dismiss without engagement?",
	},
	{
		Name:       "Clarity",
		Definition: "Seek genuine understanding for the reader",
		Test:       "Does this clarify or does it obscure?",
	},
	{
		Name:       "Agency",
		Definition: "The reader should be empowered to decide, not manipulated into compliance",
		Test:       "Does this empower or does it create dependency?",
	},
	{
		Name:       "Identity",
		Definition: "Evaluate claims on their merit, not their origin",
		Test:       "Is this judged by substance or by who said it?",
	},
}

// PITTier describes one tier of the distortion taxonomy.
type PITTier struct {
	Tier               int
	Name               string
	Alias              string
	Description        string
	DistortionPatterns []string
}

// PITTiers, tier 1 through 3.
var PITTiers = []PITTier{
	{
		Tier:  1,
		Name:  "Ideological",
		Alias: "The Source Code",
		Description: "Foundational meta-narratives that define epistemic boundaries. " +
			"Renders incompatible information illegitimate before it is even evaluated.",
		DistortionPatterns: []string{
			"Presupposes a worldview without evidence",
			"Frames dissent as ignorance or bad faith",
			"Conflates correlation with causation",
			"Uses loaded language to predetermine conclusions",
			"Appeals to consensus as a substitute for evidence",
		},
	},
	{
		Tier:  2,
		Name:  "Psychological",
		Alias: "The Compiler",
		Description: "Cognitive and social processes that compile ideological boundaries " +
			"into personal filters. Manages dissonance by favoring confirming data.",
		DistortionPatterns: []string{
			"Uses fear or urgency to motivate compliance",
			"Appeals to authority without substantive argument",
			"Creates false urgency to bypass critical thinking",
			"Frames options as binary when they are not",
			"Uses shame, guilt, or social pressure as a lever",
		},
	},
	{
		Tier:  3,
		Name:  "Institutional",
		Alias: "The Execution",
		Description: "Institutional structures that amplify compliant narratives " +
			"and suppress dissent. Embeds persistence in societal machinery.",
		DistortionPatterns: []string{
			"Cites institutional authority as proof",
			"Appeals to credentials over substance",
			"Dismisses non-institutional sources without engagement",
			"Uses bureaucratic language to obscure meaning",
			"Frames institutional position as inherently neutral",
		},
	},
}

// TierByNumber returns the tier definition, or nil for an unknown tier.
func TierByNumber(n int) *PITTier {
	for i := range PITTiers {
		if PITTiers[i].Tier == n {
			return &PITTiers[i]
		}
	}
	return nil
}

// PrinciplesPrompt renders the frozen principles and tier taxonomy as
// markdown for injection into LLM system prompts.
func PrinciplesPrompt() string {
	var b strings.Builder
	b.WriteString("## TruthLens Frozen Core Principles (Immutable)\n\n")
	for _, p := range Principles {
		fmt.Fprintf(&b, "### %s\n", p.Name)
		fmt.Fprintf(&b, "- **Definition:** %s\n", p.Definition)
		fmt.Fprintf(&b, "- **Test:** %s\n", p.Test)
		b.WriteString("\n")
	}
	b.WriteString("## PIT Distortion Tiers\n\n")
	for _, t := range PITTiers {
		fmt.Fprintf(&b, "### Tier %d: %s (%s)\n", t.Tier, t.Name, t.Alias)
		fmt.Fprintf(&b, "_%s_\n", t.Description)
		for _, dp := range t.DistortionPatterns {
			fmt.Fprintf(&b, "- %s\n", dp)
		}
		b.WriteString("\n")
	}
	return b.String()
}
