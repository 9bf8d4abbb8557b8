// Package normalise repairs noisy Thai OCR output: literal corrections for
// frequent misreadings, optional fuzzy repair of unit abbreviations against
// the canonical vocabulary, and whitespace/punctuation cleanup.
package normalise

import (
	"regexp"
	"sort"
	"strings"
	"unicode"

	"github.com/adrg/strutil"
	"github.com/adrg/strutil/metrics"

	"sarabun-assist/internal/config"
	"sarabun-assist/pkg/logger"
)

type rule struct {
	from string
	to   string
}

// Normaliser applies the configured correction pipeline to OCR text.
// Deterministic for a given input when fuzzy repair is disabled.
type Normaliser struct {
	rules     []rule
	vocab     []string
	fuzzy     bool
	threshold float64
	minToken  int
	log       *logger.Logger
}

var (
	tokenRe      = regexp.MustCompile(`[\p{L}\p{M}\p{N}_.\-]+`)
	spaceRunRe   = regexp.MustCompile(`\s+`)
	spaceDotRe   = regexp.MustCompile(`\s+\.`)
	dashRunRe    = regexp.MustCompile(`\-{3,}`)
	starRunRe    = regexp.MustCompile(`\*{2,}`)
	strayDashRe  = regexp.MustCompile(`\s- `)
	quoteReplace = strings.NewReplacer("“", `"`, "”", `"`, "‘", "'", "’", "'")
)

// New builds a Normaliser from the embedded correction data and the given
// tuning parameters.
func New(cfg config.NormaliseConfig, log *logger.Logger) *Normaliser {
	return NewWithRules(correctionPairs, cfg, log)
}

// NewWithRules builds a Normaliser over a caller-supplied correction map.
func NewWithRules(pairs map[string]string, cfg config.NormaliseConfig, log *logger.Logger) *Normaliser {
	rules := make([]rule, 0, len(pairs))
	for from, to := range pairs {
		rules = append(rules, rule{from: from, to: to})
	}
	// Longest key first so long misreadings win over their substrings.
	// Ties break lexicographically to keep the order deterministic.
	sort.Slice(rules, func(i, j int) bool {
		if len(rules[i].from) != len(rules[j].from) {
			return len(rules[i].from) > len(rules[j].from)
		}
		return rules[i].from < rules[j].from
	})

	return &Normaliser{
		rules:     rules,
		vocab:     UnitAbbreviations,
		fuzzy:     cfg.FuzzyEnabled,
		threshold: cfg.FuzzyThreshold,
		minToken:  cfg.MinTokenLength,
		log:       log,
	}
}

// Apply normalises raw OCR text.
func (n *Normaliser) Apply(text string) string {
	if text == "" {
		return ""
	}

	for _, r := range n.rules {
		text = strings.ReplaceAll(text, r.from, r.to)
	}

	if n.fuzzy {
		text = n.fuzzyRepair(text)
	}

	return cleanup(text)
}

// fuzzyRepair rewrites abbreviation-shaped tokens in place to their
// closest vocabulary entry when the similarity clears the threshold.
// Everything between tokens is left untouched.
func (n *Normaliser) fuzzyRepair(text string) string {
	sim := metrics.NewJaroWinkler()
	return tokenRe.ReplaceAllStringFunc(text, func(tok string) string {
		if !n.looksLikeAbbreviation(tok) {
			return tok
		}
		best, score := "", 0.0
		for _, abbr := range n.vocab {
			if s := strutil.Similarity(tok, abbr, sim); s > score {
				best, score = abbr, s
			}
		}
		if best == "" || score < n.threshold {
			return tok
		}
		if best != tok {
			n.log.WithField("token", tok).WithField("corrected", best).Debug("Fuzzy corrected abbreviation")
		}
		return best
	})
}

// looksLikeAbbreviation is the heuristic for tokens worth fuzzy repair:
// contains a dot, an uppercase letter, long enough, not purely numeric.
func (n *Normaliser) looksLikeAbbreviation(tok string) bool {
	if len([]rune(tok)) < n.minToken || !strings.Contains(tok, ".") {
		return false
	}
	hasUpper, allDigits := false, true
	for _, r := range tok {
		if unicode.IsUpper(r) {
			hasUpper = true
		}
		if !unicode.IsDigit(r) && r != '.' {
			allDigits = false
		}
	}
	return hasUpper && !allDigits
}

func cleanup(text string) string {
	text = strings.ReplaceAll(text, "\n", " ")
	text = quoteReplace.Replace(text)
	text = dashRunRe.ReplaceAllString(text, "")
	text = starRunRe.ReplaceAllString(text, "")
	text = strayDashRe.ReplaceAllString(text, " ")
	text = strings.ReplaceAll(text, "#", "")
	text = strings.ReplaceAll(text, "|", "")
	text = spaceRunRe.ReplaceAllString(text, " ")
	text = spaceDotRe.ReplaceAllString(text, ".")
	return strings.TrimSpace(text)
}
