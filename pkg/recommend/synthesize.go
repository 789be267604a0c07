package recommend

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sort"
	"strings"
	"time"

	"github.com/artem13815/devadvisor/pkg/activity"
	"github.com/artem13815/devadvisor/pkg/llm"
	"github.com/artem13815/devadvisor/pkg/nlp"
)

// DefaultMaxRecommendations bounds the synthesized list.
const DefaultMaxRecommendations = 6

const defaultProposerTimeout = 20 * time.Second

// proposalScore ranks generative candidates below every rule-table weight.
const proposalScore = 1

// Synthesizer turns aggregated activity plus a stated goal and domain into a
// ranked, deduplicated, bounded recommendation list. The rule table is the
// deterministic core; the optional chat model only augments it and can never
// fail a run.
type Synthesizer struct {
	chat            llm.ChatModel // nil: rule table only
	maxRecs         int
	proposerTimeout time.Duration
}

func NewSynthesizer(chat llm.ChatModel, maxRecs int, proposerTimeout time.Duration) *Synthesizer {
	if maxRecs <= 0 {
		maxRecs = DefaultMaxRecommendations
	}
	if proposerTimeout <= 0 {
		proposerTimeout = defaultProposerTimeout
	}
	return &Synthesizer{chat: chat, maxRecs: maxRecs, proposerTimeout: proposerTimeout}
}

type candidate struct {
	rec   Recommendation
	score int
}

// Synthesize never returns an empty list: when no candidate matches, the
// fixed fallback set is returned instead.
func (s *Synthesizer) Synthesize(ctx context.Context, agg activity.Aggregated, goal, domain string) []Recommendation {
	sig := extractSignals(agg)
	goalN := nlp.Normalize(goal)
	domainN := nlp.Normalize(domain)

	key := func(r Recommendation) string { return string(r.Type) + "|" + r.Title }
	seen := map[string]struct{}{}
	var cands []candidate

	for _, r := range ruleTable {
		if !r.match(sig, goalN, domainN) {
			continue
		}
		if _, dup := seen[key(r.rec)]; dup {
			continue
		}
		seen[key(r.rec)] = struct{}{}
		cands = append(cands, candidate{rec: r.rec, score: r.weight})
	}

	// Generative refinement is best effort: failures, timeouts and malformed
	// output all degrade to the rule-table candidates alone. On a (type,title)
	// conflict the rule-table version wins.
	if s.chat != nil {
		for _, rec := range s.propose(ctx, agg, goal, domain) {
			if _, dup := seen[key(rec)]; dup {
				continue
			}
			seen[key(rec)] = struct{}{}
			cands = append(cands, candidate{rec: rec, score: proposalScore})
		}
	}

	if len(cands) == 0 {
		out := make([]Recommendation, len(fallbackSet))
		copy(out, fallbackSet)
		return out
	}

	sort.SliceStable(cands, func(i, j int) bool {
		if cands[i].score != cands[j].score {
			return cands[i].score > cands[j].score
		}
		return difficultyOrder(cands[i].rec.Difficulty) < difficultyOrder(cands[j].rec.Difficulty)
	})
	if len(cands) > s.maxRecs {
		cands = cands[:s.maxRecs]
	}

	out := make([]Recommendation, 0, len(cands))
	for _, c := range cands {
		out = append(out, c.rec)
	}
	return out
}

func (s *Synthesizer) propose(ctx context.Context, agg activity.Aggregated, goal, domain string) []Recommendation {
	ctx, cancel := context.WithTimeout(ctx, s.proposerTimeout)
	defer cancel()

	payload, err := json.MarshalIndent(agg, "", "  ")
	if err != nil {
		return nil
	}
	system := "You are a programming mentor. Return the result strictly as JSON with no commentary."
	user := fmt.Sprintf(
		"Developer activity analysis.\n\nGoal: %s\nDomain: %s\n\nActivity data:\n%s\n\nSuggest specific, actionable next steps for this developer.\nReturn STRICTLY one JSON array of objects with fields:\n- \"type\": \"project\" | \"problem\" | \"skill\" | \"learning\"\n- \"title\": string\n- \"description\": string\n- \"difficulty\": \"beginner\" | \"intermediate\" | \"advanced\"\n- \"time_estimate\": string\n- \"resources\": string[] of helpful links\n\nRules:\n- No markdown, no extra fields\n- Empty lists as [], never null\n",
		goal, domain, payload,
	)
	raw, err := s.chat.Ask(ctx, system, user)
	if err != nil {
		log.Printf("recommend: chat model unavailable, rule table only: %v", err)
		return nil
	}
	return parseProposals(raw)
}

// parseProposals extracts and validates candidates from a model reply.
// Malformed entries are dropped, never propagated.
func parseProposals(raw string) []Recommendation {
	raw = strings.TrimSpace(raw)
	var recs []Recommendation
	if err := json.Unmarshal([]byte(raw), &recs); err != nil {
		// try to extract the array from surrounding prose or a fenced block
		i := strings.Index(raw, "[")
		j := strings.LastIndex(raw, "]")
		if i < 0 || j <= i {
			return nil
		}
		if err := json.Unmarshal([]byte(raw[i:j+1]), &recs); err != nil {
			return nil
		}
	}
	var out []Recommendation
	for _, r := range recs {
		if !ValidType(r.Type) || !ValidDifficulty(r.Difficulty) {
			continue
		}
		if strings.TrimSpace(r.Title) == "" || strings.TrimSpace(r.Description) == "" {
			continue
		}
		if r.Resources == nil {
			r.Resources = []string{}
		}
		out = append(out, r)
	}
	return out
}
