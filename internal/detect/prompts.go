package detect

// Domain-specific prompt overlays. Appended to the deep analysis prompt
// so the LLM weights the manipulation patterns typical of each domain.
var domainContext = map[string]string{
	"legal": `## Domain: Legal
You are analyzing text from a legal context (filings, briefs, motions, opinions).
Weight these manipulation patterns HIGHER:
- Procedural manipulation disguised as legal standard
- Weight-of-authority stacking without specific citations
- Sanctions threats used as intimidation rather than legitimate remedy
- "Well-settled" / "plainly meritless" dismissals that substitute rhetoric for argument
- Characterization of opposing position as frivolous without engagement
Flag any attempt to weaponize procedural language to avoid substantive argument.`,
	"media": `## Domain: Media
You are analyzing media content (news articles, editorials, reports).
Weight these manipulation patterns HIGHER:
- Narrative framing that pre-loads conclusions
- Selective sourcing and manufactured consensus
- Emotional anchoring through strategic word choice
- False balance or false binary presentation
- Headline-body disconnect (if detectable from text)
- Institutional authority cited without specific evidence
Flag language designed to manufacture consent rather than inform.`,
	"financial": `## Domain: Financial
You are analyzing financial content (reports, analyses, prospectuses).
Weight these manipulation patterns HIGHER:
- Survivorship bias in performance reporting
- Cherry-picked timeframes for data presentation
- Risk minimization through euphemism ('adjustment' for crash)
- Authority bias via credential stacking
- False precision creating illusion of certainty
- FOMO/urgency language in investment context
Flag language designed to manufacture confidence rather than convey risk.`,
	"political": `## Domain: Political
You are analyzing political content (speeches, policy, campaigns).
Weight these manipulation patterns HIGHER:
- In-group/out-group framing
- Aspirational deflection (goals stated as achievements)
- Scope intimidation (problem made too big to question)
- Manufactured urgency and false deadlines
- Moral framing used to prevent cost-benefit analysis
- Consensus language substituting for evidence
Flag rhetoric designed to mobilize rather than inform.`,
}

// deepAnalysisPrompt drives the LLM co-detector. Substitutions:
// principles, domain context, already-detected local flags, text.
const deepAnalysisPrompt = `You are TruthLens, a bias detection engine operating under the Persistent Influence Theory (PIT) framework.

%s

%s

## Your Task
Analyze the following text for bias, distortion, and rhetorical manipulation. Be thorough - detect ALL distortions, not just obvious ones. Institutional rhetoric, moral framing, aspirational language used to prevent scrutiny, and consensus manufacturing all count.

## Already Detected (by the deterministic engine)
These patterns were already found - do NOT duplicate them:
%s

## Analysis Requirements
Return a JSON object with:
1. "knowledge_type" - "sense" | "revelation" | "mixed" | "neutral"
2. "bias_detected" - boolean
3. "bias_types" - array from: ["authority_bias", "groupthink", "confirmation_bias", "framing_bias", "appeal_to_consensus", "false_urgency", "institutional_bias", "false_binary", "emotional_manipulation", "credential_appeal", "moral_framing", "aspirational_deflection", "manufactured_consensus", "scope_intimidation", "none"]
4. "pit_tier" - "tier_1_ideological" | "tier_2_psychological" | "tier_3_institutional" | "none"
5. "pit_tier_detail" - specific distortion pattern identified
6. "confidence" - float 0.0 to 1.0
7. "explanation" - 2-3 sentences on what was detected and why it matters
8. "severity" - "none" | "low" | "moderate" | "high" | "critical"
9. "flags" - array of NEW distortions not already detected. Each object:
   - "pattern_id": short_snake_case name (e.g. "moral_authority_framing", "manufactured_urgency")
   - "matched_text": the EXACT substring from the input text
   - "severity": "low" | "moderate" | "high" | "critical"
   - "pit_tier": 1 | 2 | 3
   - "category": "structural"
   Only include patterns NOT in the already-detected list above.

## Text to Analyze
%s

Return ONLY valid JSON.`

// impactProjectionPrompt asks for two divergent futures when a scan
// finds meaningful bias. Substitutions: text, audit summary.
const impactProjectionPrompt = `Based on the text and bias audit below, predict two divergent futures:

1. PATH A - "The Trap": What happens if the reader accepts this biased framing?
   Focus on: missed opportunities, false security, strategic paralysis, cascading errors.

2. PATH B - "The Leverage": What happens if the reader sees through the bias?
   Focus on: competitive advantage, clarity, decisiveness, strategic positioning.

## Original Text
%s

## Detected Bias
%s

Return ONLY valid JSON with:
- "path_a_title": 3-6 word title for the trap
- "path_a_desc": 2-3 sentence description
- "path_b_title": 3-6 word title for the leverage
- "path_b_desc": 2-3 sentence description`
