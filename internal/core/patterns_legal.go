package core

// Legal-domain structural patterns, loaded when domain is "legal" (or
// "auto"). These target rhetorical moves common in briefs and motions:
// dismissal without engagement, authority stacking, procedural
// gatekeeping, sanctions threats used as silencing tools.

var legalPatterns = []*StructuralPattern{
	{
		ID:   "LEGAL_SETTLED_DISMISSAL",
		Name: "Settled Law Dismissal",
		Description: "Uses 'well-settled law' or equivalent to dismiss a legal argument " +
			"without engaging its substance. Often used by opposing counsel to " +
			"avoid actually arguing the merits.",
		PITTier:   3,
		Severity:  SeverityHigh,
		Principle: "Justice",
		Indicators: []string{
			`\b(?:well[- ]settled(?:\s+law|\s+that|\s+principle)?|` +
				`(?:clearly|plainly)\s+(?:established|settled|erroneous)|` +
				`black[- ]letter\s+law|hornbook\s+law|` +
				`settled\s+(?:law|principle|precedent|authority)|` +
				`controlling\s+authority\s+(?:is\s+)?clear)\b`,
		},
		MinMatches: 1,
	},
	{
		ID:   "LEGAL_MERIT_DISMISSAL",
		Name: "Merit Dismissed Without Engagement",
		Description: "Dismisses a legal argument as frivolous, meritless, or vexatious " +
			"without substantively addressing the argument itself.",
		PITTier:   3,
		Severity:  SeverityCritical,
		Principle: "Justice",
		Indicators: []string{
			`\b(?:plainly\s+meritless|wholly\s+(?:without\s+merit|frivolous)|` +
				`patently\s+frivolous|(?:clearly|obviously)\s+frivolous|` +
				`vexatious\s+(?:litigant|litigation|filing)|` +
				`(?:no|lacks?\s+any)\s+(?:legal\s+)?merit|` +
				`fails?\s+as\s+a\s+matter\s+of\s+law|` +
				`no\s+reasonable\s+(?:jury|judge|court|person)\s+` +
				`(?:could|would)\s+(?:find|conclude|agree))\b`,
		},
		MinMatches: 1,
	},
	{
		ID:   "LEGAL_WEIGHT_STACKING",
		Name: "Authority Weight Stacking",
		Description: "Piles on institutional citations or authority references to create " +
			"an impression of overwhelming consensus, substituting volume of " +
			"authority for strength of reasoning.",
		PITTier:   3,
		Severity:  SeverityModerate,
		Principle: "Truth",
		Indicators: []string{
			`\b(?:(?:the\s+)?(?:weight|overwhelming\s+weight|vast\s+majority|` +
				`great\s+weight)\s+of\s+(?:authority|case\s+law|precedent|the\s+law)|` +
				`(?:every|all|virtually\s+(?:every|all))\s+(?:court|jurisdiction|circuit)\s+` +
				`(?:to\s+(?:have\s+)?(?:address|consider)|that\s+has\s+(?:addressed|considered))|` +
				`(?:no\s+(?:court|jurisdiction|circuit)\s+has\s+(?:ever\s+)?(?:held|found|ruled)))\b`,
		},
		MinMatches: 1,
	},
	{
		ID:   "LEGAL_SANCTIONS_THREAT",
		Name: "Sanctions Threat as Silencing Tool",
		Description: "Threatens Rule 11 sanctions or similar penalties not to enforce " +
			"legitimate standards but to intimidate a party into abandoning " +
			"a non-frivolous argument.",
		PITTier:   2,
		Severity:  SeverityHigh,
		Principle: "Agency",
		Indicators: []string{
			// Explicit sanctions rule references.
			`\b(?:rule\s+11|28\s+U\.?S\.?C\.?\s+§?\s*1927|` +
				`(?:inherent|statutory)\s+(?:authority|power)\s+to\s+sanction)\b`,
			// Sanctions action language.
			`\b(?:sanctions?\s+(?:are|may\s+be|should\s+be|will\s+be|must\s+be)\s+` +
				`(?:warranted|appropriate|imposed|sought|considered|pursued|explored)|` +
				`(?:filing|seeking|imposing|requesting)\s+sanctions?\s+` +
				`(?:against|for|should|is|are|may|will)|` +
				`(?:subject\s+to|warrants?|merit(?:s|ing)?|justify|justifies)\s+` +
				`sanctions?)\b`,
			// Frivolous/vexatious only when directly paired with sanctions.
			`\b(?:(?:frivolous|vexatious)\s+(?:(?:and|or)\s+(?:sanctions?-?able|` +
				`warrant(?:s|ing)\s+sanctions?))|` +
				`vexatious\s+(?:litigation|filing|action|claim|motion)\s+` +
				`(?:warrant(?:s|ing)|merit(?:s|ing)?|justif(?:y|ies|ying))\s+sanctions?)\b`,
			// Sanctions plus referral to disciplinary bodies.
			`\b(?:(?:refer(?:ring|ral)?|report(?:ing)?)\s+(?:to\s+)?(?:the\s+)?` +
				`(?:disciplinary|bar|ethics)\s+(?:committee|board|authority|counsel)|` +
				`sanctions?\s+should\s+be\s+(?:considered|imposed|explored))\b`,
		},
		MinMatches: 1,
	},
	{
		ID:   "LEGAL_PROCEDURAL_GATEKEEPING",
		Name: "Procedural Gatekeeping to Avoid Substance",
		Description: "Uses procedural arguments (waiver, preservation, standing, timeliness) " +
			"to avoid addressing the substantive merits of an argument. Distinct from " +
			"legitimate procedural objections because the procedural claim is used as " +
			"the SOLE basis for dismissal without any engagement with the underlying issue.",
		PITTier:   3,
		Severity:  SeverityModerate,
		Principle: "Justice",
		Indicators: []string{
			`\b(?:(?:failed|failure)\s+to\s+(?:properly\s+)?(?:preserve|raise|exhaust|` +
				`assert|present|brief|argue|plead)|` +
				`(?:not\s+(?:properly|timely)\s+)?(?:before\s+(?:this|the)\s+(?:court|tribunal)|` +
				`preserved\s+(?:for|on)\s+(?:appeal|review))|` +
				`(?:waived|forfeited|abandoned|conceded)\s+(?:this|that|the|any)\s+` +
				`(?:argument|claim|issue|objection|right|contention|point)|` +
				`(?:procedurally?\s+(?:barred?|default(?:ed)?|foreclosed?|precluded?))|` +
				`(?:lacks?\s+(?:standing|capacity|authority|jurisdiction)\s+to\s+` +
				`(?:raise|assert|bring|maintain|pursue)))\b`,
		},
		MinMatches: 1,
	},
	{
		ID:   "LEGAL_STRAW_MAN",
		Name: "Straw Man Mischaracterization",
		Description: "Mischaracterizes the opposing party's argument - typically by overstating, " +
			"oversimplifying, or fabricating a position - then attacks the distorted " +
			"version rather than the actual argument.",
		PITTier:   2,
		Severity:  SeverityHigh,
		Principle: "Truth",
		Indicators: []string{
			// Absolutist mischaracterization framing.
			`\b(?:(?:plaintiff|defendant|petitioner|respondent|appellant|appellee|` +
				`(?:opposing|other)\s+(?:party|side|counsel))\s+` +
				`(?:argues?|claims?|contends?|suggests?|asserts?|maintains?|would\s+have\s+` +
				`(?:this|the)\s+(?:court|jury)\s+believe)\s+(?:that\s+)?` +
				`(?:all|every|any|no|never|always|each\s+and\s+every|absolutely|` +
				`the\s+entirety\s+of|(?:without\s+)?any\s+exception))\b`,
			// Reductive mischaracterization.
			`\b(?:(?:is\s+)?(?:essentially|effectively|really|actually|in\s+(?:effect|essence))\s+` +
				`(?:arguing|asking|claiming|demanding|suggesting|requesting|contending)\s+(?:that\s+)?` +
				`(?:this\s+(?:court|jury)|(?:we|the\s+(?:defendant|plaintiff)))\s+` +
				`(?:should|must|(?:would\s+)?have\s+to))\b`,
		},
		MinMatches: 1,
	},
}
