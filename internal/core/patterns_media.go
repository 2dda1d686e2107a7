package core

// Media-domain structural patterns, loaded when domain is "media" (or
// "auto"): editorializing disguised as reporting, anonymous attribution,
// weasel quantifiers, false balance, buried qualifiers.

var mediaPatterns = []*StructuralPattern{
	{
		ID:   "MEDIA_EDITORIAL_AS_NEWS",
		Name: "Editorializing Disguised as Reporting",
		Description: "Uses loaded adjectives, value judgments, or editorial framing in what " +
			"is presented as straight news reporting. The judgment is embedded in " +
			"the description rather than attributed to a source.",
		PITTier:   1,
		Severity:  SeverityModerate,
		Principle: "Truth",
		Indicators: []string{
			`\b(?:the|a|an)\s+(?:controversial|embattled|beleaguered|troubled|` +
				`divisive|polarizing|contentious|ill[- ]fated|misguided|reckless|` +
				`ill[- ]conceived|widely[- ]criticized|much[- ]maligned|` +
				`disgraced|scandal[- ]plagued|under[- ]fire|` +
				`so[- ]called|self[- ]styled|self[- ]proclaimed)\s+` +
				`(?:\w+\s+)?` +
				`(?:policy|proposal|plan|initiative|program|measure|decision|move|` +
				`leader|official|executive|figure|group|organization|company|bill|law)\b`,
		},
		MinMatches: 1,
	},
	{
		ID:   "MEDIA_ANONYMOUS_ATTRIBUTION",
		Name: "Anonymous or Unverifiable Source Attribution",
		Description: "Attributes claims to unnamed, vague, or unverifiable sources. " +
			"While legitimate anonymous sourcing exists, this pattern detects " +
			"cases where the vagueness itself substitutes for evidence.",
		PITTier:   3,
		Severity:  SeverityModerate,
		Principle: "Truth",
		Indicators: []string{
			`\b(?:(?:unnamed|anonymous|unidentified)\s+` +
				`(?:sources?|officials?|insiders?|aides?|staffers?|people|persons?)|` +
				`(?:sources?\s+(?:close\s+to|familiar\s+with|with\s+(?:knowledge|insight)))|` +
				`(?:(?:people|those|individuals)\s+(?:familiar\s+with|briefed\s+on|` +
				`close\s+to)\s+(?:the\s+)?(?:matter|situation|discussions?|negotiations?|deliberations?))|` +
				`(?:critics?\s+(?:say|argue|claim|contend|charge|allege|maintain)\b)|` +
				`(?:insiders?\s+(?:say|reveal|claim|warn|suggest|report)))\b`,
		},
		MinMatches:      1,
		SuppressIfCited: true,
	},
	{
		ID:   "MEDIA_WEASEL_QUANTIFIERS",
		Name: "Weasel Words / Vague Quantifiers",
		Description: "Uses vague quantifiers to imply broader agreement or evidence " +
			"than actually exists. 'Many believe,' 'some experts,' 'it is widely " +
			"thought' - these create an impression of consensus without committing " +
			"to a verifiable claim.",
		PITTier:   2,
		Severity:  SeverityLow,
		Principle: "Clarity",
		Indicators: []string{
			`\b(?:(?:many|some|numerous|several|various|countless|growing\s+number\s+of)\s+` +
				`(?:experts?|analysts?|observers?|critics?|commentators?|researchers?|` +
				`officials?|insiders?|people|believe|say|argue|think|feel|suggest|contend|claim)|` +
				`it\s+(?:is|has\s+been)\s+(?:widely|broadly|generally|commonly|frequently|often)\s+` +
				`(?:believed|thought|assumed|accepted|reported|noted|observed|suggested|argued|felt)|` +
				`(?:there\s+(?:is|are)\s+(?:growing|mounting|increasing|widespread|` +
				`broad|considerable))\s+` +
				`(?:concern|evidence|support|sentiment|consensus|agreement|belief|feeling|sense))\b`,
		},
		// A single weasel word is common in legitimate writing.
		MinMatches: 2,
	},
	{
		ID:   "MEDIA_FALSE_BALANCE",
		Name: "False Balance / Both-Sidesism",
		Description: "Gives equal presentation weight to a fringe or discredited position " +
			"alongside a well-established position, creating a false impression " +
			"of legitimate debate. Distinct from genuine balanced reporting.",
		PITTier:   1,
		Severity:  SeverityHigh,
		Principle: "Justice",
		Indicators: []string{
			`\b(?:(?:some|others?|a\s+(?:few|handful|minority))\s+` +
				`(?:say|believe|argue|claim|contend|insist|maintain)\s+` +
				`(?:that\s+)?.{10,80}?` +
				`(?:while|but|however|although|yet)\s+` +
				`(?:(?:most|mainstream|the\s+majority\s+of|established|leading)\s+)?` +
				`(?:scientists?|experts?|researchers?|doctors?|economists?|scholars?|` +
				`the\s+scientific\s+community)` +
				`.{0,60}?` +
				`(?:say|disagree|reject|dispute|counter|point\s+out|emphasize|note|maintain))\b`,
		},
		MinMatches: 1,
	},
	{
		ID:   "MEDIA_EMOTIONAL_LEAD",
		Name: "Emotional Lead / Hook",
		Description: "Opens a news piece with emotionally charged framing designed to " +
			"create a visceral reaction before facts are presented. The emotional " +
			"frame then colors interpretation of subsequent information.",
		PITTier:   2,
		Severity:  SeverityLow,
		Principle: "Clarity",
		Indicators: []string{
			// Position matters here: emotional framing within the first ~50 chars.
			`^.{0,50}(?:shocking|heartbreaking|devastating|horrifying|terrifying|` +
				`outrageous|stunning|alarming|disturbing|chilling|sickening|` +
				`gut[- ]wrenching|jaw[- ]dropping|eye[- ]opening|mind[- ]boggling|` +
				`bombshell|explosive|damning|damaging|scathing|searing|blistering|` +
				`firestorm|backlash|uproar|outcry|fury)\b`,
		},
		MinMatches: 1,
	},
	{
		ID:   "MEDIA_BURIED_QUALIFIER",
		Name: "Buried Qualifier / Buried Denial",
		Description: "Places critical qualifying information - corrections, denials, " +
			"caveats, or exculpatory context - deep in the text after the " +
			"dominant framing has been established. The reader absorbs the " +
			"frame before encountering the complication.",
		PITTier:   2,
		Severity:  SeverityModerate,
		Principle: "Justice",
		Indicators: []string{
			// Transition word followed by qualifying content that undermines
			// the preceding narrative, at least 200 chars into the text. The
			// capture group is the reported fragment.
			`^.{200,}?(\b(?:` +
				`(?:however|but|although|though|nevertheless|nonetheless|that\s+said)` +
				`,?\s+.{5,150}?` +
				`(?:no\s+(?:evidence|proof|indication|link|connection|basis)|` +
				`not\s+(?:confirmed?|verified|established|proven|supported|substantiated)|` +
				`denied|disputed|rejected|retracted|corrected|clarified|` +
				`could\s+not\s+(?:be\s+)?(?:confirmed?|verified|corroborated)|` +
				`remains?\s+(?:unclear|unproven|unverified|disputed|contested))` +
				`)\b)`,
		},
		MinMatches: 1,
	},
	{
		ID:   "MEDIA_SELECTIVE_QUOTATION",
		Name: "Scare Quotes / Selective Quotation",
		Description: "Uses single words or very short fragments in quotation marks to " +
			"editorialize - implying doubt, irony, or dismissal without making " +
			"an explicit argument. Distinct from legitimate quotation of sources.",
		PITTier:   1,
		Severity:  SeverityLow,
		Principle: "Truth",
		Indicators: []string{
			// Matches straight quotes, curly quotes and so-called framing.
			`(?:` +
				`(?:so[- ]called\s+)?["\x{201c}][a-z]{3,15}["\x{201d}]` +
				`|` +
				`(?:their|the|its|his|her)\s+["\x{201c}][a-z]{3,20}["\x{201d}]` +
				`|` +
				`["\x{201c}][a-z]+["\x{201d}]\s+(?:policy|plan|reform|solution|approach|strategy|theory|claim)` +
				`)`,
		},
		// A single scare quote can be legitimate; the pattern is repeated use.
		MinMatches: 2,
	},
	{
		ID:   "MEDIA_ASYMMETRIC_ATTRIBUTION",
		Name: "Asymmetric Source Attribution",
		Description: "Uses neutral verbs ('said', 'stated', 'explained') for one side " +
			"and loaded verbs ('claimed', 'alleged', 'insisted', 'admitted') for " +
			"the other. The verb choice signals credibility to the reader before " +
			"the substance is evaluated.",
		PITTier:   1,
		Severity:  SeverityModerate,
		Principle: "Justice",
		Indicators: []string{
			`\b(?:claimed|alleged|insisted|admitted|conceded|boasted|` +
				`ranted|lashed\s+out|snapped|fired\s+back|hit\s+back|` +
				`doubled\s+down|refused\s+to\s+(?:say|comment|acknowledge)|` +
				`grudgingly\s+(?:acknowledged|accepted|admitted)|` +
				`tried\s+to\s+(?:claim|argue|justify|explain\s+away))\b`,
		},
		// A single loaded verb is normal; the pattern requires repeated use.
		MinMatches: 2,
	},
	{
		ID:   "MEDIA_SPECULATIVE_FRAMING",
		Name: "Speculation Presented as Likely",
		Description: "Presents speculative outcomes, predictions, or possibilities as " +
			"near-certainties using hedged but directional language. 'Could face', " +
			"'is expected to', 'is likely to', 'may soon' - these create an " +
			"expectation without committing to a verifiable claim.",
		PITTier:   2,
		Severity:  SeverityLow,
		Principle: "Clarity",
		Indicators: []string{
			`\b(?:` +
				`(?:is|are|was|were)\s+(?:expected|likely|poised|set|slated|` +
				`widely\s+expected|all\s+but\s+certain|virtually\s+certain)\s+to\b|` +
				`(?:could|may|might)\s+(?:soon|eventually|ultimately|well)\s+` +
				`(?:face|lead\s+to|result\s+in|mean|signal|spell|trigger|cause|bring)|` +
				`(?:raises?\s+(?:the\s+)?(?:specter|prospect|possibility|threat|fear|question)\s+(?:of|that))|` +
				`(?:fueling\s+(?:speculation|concerns?|fears?|worries|expectations?)\s+(?:that|about|of))|` +
				`(?:(?:signs?|indications?|signals?)\s+(?:point(?:ing)?|suggest(?:ing)?)\s+(?:to|toward|that))` +
				`)\b`,
		},
		// A single speculative phrase is normal journalism.
		MinMatches: 2,
	},
}
