package resolving

import (
	"sort"

	"github.com/jonathan/draft-board/internal/config"
	"github.com/jonathan/draft-board/internal/db"
	"github.com/jonathan/draft-board/internal/normalizing"
)

// Outcome classifies a resolution result.
type Outcome int

const (
	// OutcomeMatched means the record belongs to an existing prospect.
	OutcomeMatched Outcome = iota
	// OutcomeNew means no existing prospect is close enough; create one.
	OutcomeNew
	// OutcomeUnresolved means the top candidates could not be separated.
	OutcomeUnresolved
)

// Resolution is the resolver's verdict for one record. Confidence is always
// populated so it can be persisted for auditing regardless of branch.
type Resolution struct {
	Outcome    Outcome
	Prospect   *db.Prospect // set when Outcome == OutcomeMatched
	Confidence int          // 0-100
	TopScore   float64
	RunnerUp   float64
}

// positionEquivalents lists adjacent canonical positions considered when
// restricting the candidate pool. Sources disagree on where hybrid players
// line up (DE vs OLB, RB vs FB), so adjacent groups are searched too.
var positionEquivalents = map[string][]string{
	db.PositionRB:   {db.PositionFB},
	db.PositionFB:   {db.PositionRB},
	db.PositionDL:   {db.PositionEDGE},
	db.PositionEDGE: {db.PositionDL, db.PositionLB},
	db.PositionLB:   {db.PositionEDGE},
}

// CandidatePositions returns the canonical positions searched for a record at
// the given position: the position itself plus its equivalence group.
func CandidatePositions(position string) []string {
	return append([]string{position}, positionEquivalents[position]...)
}

// Resolver scores candidates under a tunable match policy.
type Resolver struct {
	policy config.MatchConfig
}

// NewResolver creates a resolver. Zero-valued policy fields fall back to the
// package defaults so a bare config still resolves sanely.
func NewResolver(policy config.MatchConfig) *Resolver {
	if policy.NameWeight == 0 && policy.CollegeWeight == 0 {
		policy.NameWeight = config.DefaultNameWeight
		policy.CollegeWeight = config.DefaultCollegeWeight
	}
	if policy.AcceptThreshold == 0 {
		policy.AcceptThreshold = config.DefaultAcceptThreshold
	}
	if policy.NewThreshold == 0 {
		policy.NewThreshold = config.DefaultNewThreshold
	}
	if policy.Margin == 0 {
		policy.Margin = config.DefaultMargin
	}
	return &Resolver{policy: policy}
}

// Score computes the weighted identity score between a record and one
// canonical prospect, on [0, 100].
func (r *Resolver) Score(rec *normalizing.Record, p *db.Prospect) float64 {
	nameScore := Similarity(CanonicalName(rec.Name), CanonicalName(p.Name))
	collegeScore := Similarity(CanonicalCollege(rec.College), CanonicalCollege(p.College))

	total := r.policy.NameWeight + r.policy.CollegeWeight
	return (nameScore*r.policy.NameWeight + collegeScore*r.policy.CollegeWeight) / total
}

type scoredCandidate struct {
	prospect *db.Prospect
	score    float64
}

// Resolve matches a normalized record against the candidate set. Candidates
// must already be restricted by position (see CandidatePositions); an empty
// set trivially resolves to a new prospect. Resolution is deterministic:
// candidates are ordered by (score desc, id asc) before any comparison.
func (r *Resolver) Resolve(rec *normalizing.Record, candidates []db.Prospect) (*Resolution, error) {
	if len(candidates) == 0 {
		return &Resolution{Outcome: OutcomeNew, Confidence: 100}, nil
	}

	scored := make([]scoredCandidate, 0, len(candidates))
	for i := range candidates {
		scored = append(scored, scoredCandidate{
			prospect: &candidates[i],
			score:    r.Score(rec, &candidates[i]),
		})
	}
	sort.Slice(scored, func(i, j int) bool {
		if scored[i].score != scored[j].score {
			return scored[i].score > scored[j].score
		}
		return scored[i].prospect.ID.String() < scored[j].prospect.ID.String()
	})

	top := scored[0]
	runnerUp := 0.0
	if len(scored) > 1 {
		runnerUp = scored[1].score
	}

	switch {
	case top.score >= r.policy.AcceptThreshold:
		return &Resolution{
			Outcome:    OutcomeMatched,
			Prospect:   top.prospect,
			Confidence: clampConfidence(top.score),
			TopScore:   top.score,
			RunnerUp:   runnerUp,
		}, nil

	case top.score < r.policy.NewThreshold:
		return &Resolution{
			Outcome:    OutcomeNew,
			Confidence: 100,
			TopScore:   top.score,
			RunnerUp:   runnerUp,
		}, nil

	case top.score-runnerUp >= r.policy.Margin:
		// Ambiguous band, but the leader is clearly ahead
		return &Resolution{
			Outcome:    OutcomeMatched,
			Prospect:   top.prospect,
			Confidence: clampConfidence(top.score),
			TopScore:   top.score,
			RunnerUp:   runnerUp,
		}, nil

	default:
		return &Resolution{
				Outcome:    OutcomeUnresolved,
				Confidence: clampConfidence(top.score),
				TopScore:   top.score,
				RunnerUp:   runnerUp,
			}, &AmbiguousMatchError{
				Name:         rec.Name,
				College:      rec.College,
				TopScore:     top.score,
				RunnerUp:     runnerUp,
				TopCandidate: top.prospect.Name,
			}
	}
}

func clampConfidence(score float64) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return int(score + 0.5)
}
