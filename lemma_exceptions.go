package moodreview

// lemmaExceptions holds irregular forms that suffix rules cannot reach, or
// would reach wrongly. Keyed by category so "better" is "good" as an
// adjective but "well" as an adverb.
var lemmaExceptions = map[POS]map[string]string{
	Noun: {
		"children":  "child",
		"feet":      "foot",
		"teeth":     "tooth",
		"mice":      "mouse",
		"geese":     "goose",
		"oxen":      "ox",
		"lice":      "louse",
		"dice":      "die",
		"wives":     "wife",
		"knives":    "knife",
		"lives":     "life",
		"leaves":    "leaf",
		"halves":    "half",
		"shelves":   "shelf",
		"thieves":   "thief",
		"analyses":  "analysis",
		"crises":    "crisis",
		"criteria":  "criterion",
		"phenomena": "phenomenon",
	},
	Verb: {
		"am": "be", "is": "be", "are": "be", "was": "be", "were": "be", "been": "be", "being": "be",
		"has": "have", "had": "have", "having": "have",
		"does": "do", "did": "do", "done": "do",
		"ran": "run", "went": "go", "gone": "go", "goes": "go",
		"made": "make", "got": "get", "gotten": "get", "bought": "buy",
		"brought": "bring", "thought": "think", "came": "come", "took": "take",
		"taken": "take", "saw": "see", "seen": "see", "said": "say",
		"told": "tell", "gave": "give", "given": "give", "broke": "break",
		"broken": "break", "wrote": "write", "written": "write", "ate": "eat",
		"eaten": "eat", "felt": "feel", "found": "find", "kept": "keep",
		"left": "leave", "lost": "lose", "paid": "pay", "sent": "send",
		"spent": "spend", "stood": "stand", "sold": "sell", "began": "begin",
		"begun": "begin", "chose": "choose", "chosen": "choose", "drove": "drive",
		"driven": "drive", "fell": "fall", "fallen": "fall", "forgot": "forget",
		"forgotten": "forget", "knew": "know", "known": "know", "won": "win",
		"wore": "wear", "worn": "wear", "meant": "mean", "built": "build",
		"held": "hold", "led": "lead", "met": "meet",
		"rose": "rise", "risen": "rise", "wound": "wind", "ground": "grind",
		"bore": "bear", "lain": "lie",
		"dying": "die", "lying": "lie", "tied": "tie", "tying": "tie",
	},
	Adjective: {
		"better":   "good",
		"best":     "good",
		"worse":    "bad",
		"worst":    "bad",
		"further":  "far",
		"farther":  "far",
		"furthest": "far",
		"farthest": "far",
		"elder":    "old",
		"eldest":   "old",
		"less":     "little",
		"least":    "little",
	},
	Adverb: {
		"better":  "well",
		"best":    "well",
		"deeper":  "deeply",
		"farther": "far",
		"further": "far",
		"harder":  "hard",
		"hardest": "hard",
	},
}
