package core

// Financial-domain structural patterns, loaded when domain is "financial"
// (or "auto"): survivorship bias, anchoring, cherry-picked timeframes,
// projections sold as facts, recency extrapolation.

var financialPatterns = []*StructuralPattern{
	{
		ID:   "FIN_SURVIVORSHIP_BIAS",
		Name: "Survivorship Bias",
		Description: "Draws conclusions from winners/successes while ignoring failures, " +
			"dropouts, or non-survivors. Creates a distorted picture of probability " +
			"by only examining the surviving sample.",
		PITTier:   1,
		Severity:  SeverityHigh,
		Principle: "Truth",
		Indicators: []string{
			`\b(?:` +
				`(?:(?:top|best|most\s+successful|leading|outperforming|winning)\s+` +
				`(?:funds?|stocks?|companies|firms?|portfolios?|managers?|investors?|traders?)` +
				`.{0,30}?` +
				`(?:all|each|consistently|always|invariably|without\s+exception|every\s+one)\s+` +
				`(?:show|demonstrate|prove|have|share|follow|use|employ))|` +
				`(?:(?:every|all)\s+(?:successful|top|great|legendary|billionaire)\s+` +
				`(?:\w+\s+)?` +
				`(?:investors?|traders?|fund\s+managers?|CEOs?|entrepreneurs?)` +
				`.{0,30}?` +
				`(?:has|have|did|does|follows?|uses?|swears?\s+by|recommends?|bought|held|` +
				`studied|followed|shared|adopted|employed|practiced))|` +
				`(?:(?:if\s+you\s+had\s+invested|a\s+\$?\d[\d,]*\s+investment)\s+(?:in|into)\s+` +
				`.{5,60}?(?:would\s+(?:now\s+)?be\s+worth|would\s+have\s+(?:grown|returned|become)))` +
				`)\b`,
		},
		MinMatches: 1,
	},
	{
		ID:   "FIN_ANCHORING",
		Name: "Arbitrary Anchoring",
		Description: "Sets an arbitrary reference point that biases evaluation of subsequent " +
			"numbers. A stock 'down 50% from highs' or 'up 200% from lows' conveys " +
			"different impressions of the same price depending on the anchor chosen.",
		PITTier:   2,
		Severity:  SeverityModerate,
		Principle: "Clarity",
		Indicators: []string{
			`\b(?:` +
				`(?:(?:down|off|fallen|declined|dropped|lost|crashed)\s+` +
				`(?:\d+%|[\d.]+\s*percent)\s+(?:from|since|off)\s+` +
				`(?:(?:its?|the)\s+)?(?:all[- ]time|52[- ]week|record|recent|pandemic|peak)\s+` +
				`(?:high|peak|top|record|maximum))|` +
				`(?:(?:up|gained|risen|surged|soared|rallied|jumped)\s+` +
				`(?:\d+%|[\d.]+\s*percent)\s+(?:from|since|off)\s+` +
				`(?:(?:its?|the)\s+)?(?:all[- ]time|52[- ]week|record|recent|pandemic|march\s+2020)\s+` +
				`(?:low|bottom|trough|minimum|lows?))|` +
				`(?:(?:trading|priced|valued|selling)\s+at\s+(?:just|only|merely|a\s+fraction\s+of)\s+` +
				`(?:\d+%|[\d.]+\s*percent|a\s+\w+)\s+of\s+` +
				`(?:(?:its?|the)\s+)?(?:book|intrinsic|fair|replacement|peak)\s+(?:value|worth|price))` +
				`)\b`,
		},
		MinMatches: 1,
	},
	{
		ID:   "FIN_CHERRY_PICKED_TIMEFRAME",
		Name: "Cherry-Picked Timeframe",
		Description: "Selects a specific date range that supports the desired conclusion " +
			"while obscuring what happens with different start/end dates. The choice " +
			"of timeframe IS the argument rather than supporting it.",
		PITTier:   1,
		Severity:  SeverityHigh,
		Principle: "Truth",
		Indicators: []string{
			`\b(?:` +
				`(?:(?:since|starting\s+(?:from|in)|over\s+the\s+(?:past|last))\s+` +
				`(?:january|february|march|april|may|june|july|august|september|october|` +
				`november|december|\d{4}|the\s+(?:crash|correction|bottom|peak|pandemic|crisis|dip))` +
				`.{0,40}?` +
				`(?:(?:returned?|gained?|lost|delivered|produced|generated|averaged)\s+` +
				`(?:an?\s+)?(?:annualized\s+)?(?:\d+%|[\d.]+\s*percent)))|` +
				`(?:(?:in\s+the\s+(?:last|past)\s+(?:\d+|one|two|three|five|ten|twenty)\s+` +
				`(?:years?|months?|quarters?|decades?|trading\s+days?))` +
				`.{0,30}?` +
				`(?:outperform|beat|trounce|crush|lag|trail|underperform))` +
				`)`,
		},
		MinMatches: 1,
	},
	{
		ID:   "FIN_PROJECTION_AS_FACT",
		Name: "Projection Presented as Fact",
		Description: "Presents forecasts, estimates, or models as established facts rather " +
			"than probabilistic estimates. 'Revenue will reach' vs 'Revenue is " +
			"projected to reach' - the missing qualifier hides uncertainty.",
		PITTier:   2,
		Severity:  SeverityModerate,
		Principle: "Clarity",
		Indicators: []string{
			`\b(?:` +
				`(?:(?:the\s+(?:stock|market|economy|sector|industry|company|price|index))\s+` +
				`(?:will|is\s+going\s+to|is\s+set\s+to|is\s+destined\s+to)\s+` +
				`(?:reach|hit|surge|soar|crash|plunge|double|triple|decline|grow|rise|fall)\b)|` +
				`(?:(?:revenue|earnings|profits?|sales|growth|GDP|returns?|prices?)\s+` +
				`(?:will|is\s+going\s+to)\s+` +
				`(?:reach|hit|exceed|surpass|top|double|decline|fall|drop|grow)\s+` +
				`(?:\$?[\d,.]+\s*(?:billion|million|trillion|percent|%|bps)?))|` +
				`(?:(?:guaranteed|certain|assured|inevitable|can(?:no|')?t\s+(?:fail|lose|miss))\s+` +
				`(?:returns?|gains?|profits?|growth|income|appreciation|yield))` +
				`)\b`,
		},
		MinMatches: 1,
	},
	{
		ID:   "FIN_RECENCY_EXTRAPOLATION",
		Name: "Recency Bias / Trend Extrapolation",
		Description: "Extrapolates recent short-term performance into indefinite future " +
			"expectations. 'The fund returned 40% last year' implies it will " +
			"continue, but the conclusion is unstated rather than argued.",
		PITTier:   2,
		Severity:  SeverityModerate,
		Principle: "Truth",
		Indicators: []string{
			`\b(?:` +
				`(?:(?:has|have)\s+(?:consistently|always|never\s+failed\s+to|` +
				`(?:year\s+after\s+year|quarter\s+after\s+quarter))\s+` +
				`(?:outperformed?|beaten?|delivered|generated|produced|returned))|` +
				`(?:(?:continues?\s+(?:to|its)\s+(?:streak|run|track\s+record|` +
				`winning\s+ways|momentum|trajectory|trend))\b)|` +
				`(?:(?:there(?:'s|\s+is)\s+no\s+(?:reason|sign|indication)\s+` +
				`(?:to\s+(?:think|believe|expect|assume)\s+)?` +
				`(?:this|the|it)\s+(?:will|would|could|should)\s+` +
				`(?:stop|end|slow|change|reverse)))` +
				`)\b`,
		},
		MinMatches: 1,
	},
}
