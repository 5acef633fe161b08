package assessment

import (
	"assessment-assistant-be/internal/constant"
	"assessment-assistant-be/internal/entity"

	"github.com/google/uuid"
)

// NewCandidate builds a candidate with every canonical dimension present
// at the scale midpoint.
func NewCandidate(name string) entity.Candidate {
	dims := make(map[string]int, len(constant.DimensionKeys))
	for _, key := range constant.DimensionKeys {
		dims[key] = constant.DimensionDefault
	}
	return entity.Candidate{
		Id:         uuid.New(),
		Name:       name,
		Dimensions: dims,
	}
}

// ClampDimension forces a value onto the 1-7 scale.
func ClampDimension(v int) int {
	if v < constant.DimensionMin {
		return constant.DimensionMin
	}
	if v > constant.DimensionMax {
		return constant.DimensionMax
	}
	return v
}

// NormalizeDimensions returns a map with exactly the canonical nine keys:
// given values clamped to [1,7], missing keys at the default, foreign keys
// dropped. Also used by the extraction service on model output.
func NormalizeDimensions(in map[string]int) map[string]int {
	out := make(map[string]int, len(constant.DimensionKeys))
	for _, key := range constant.DimensionKeys {
		if v, ok := in[key]; ok {
			out[key] = ClampDimension(v)
		} else {
			out[key] = constant.DimensionDefault
		}
	}
	return out
}

// AddCandidate appends a fresh candidate to the live session.
func (s *Store) AddCandidate(name string) entity.Candidate {
	s.mu.Lock()
	defer s.mu.Unlock()

	cand := NewCandidate(name)
	s.session.Candidates = append(s.session.Candidates, cand)
	s.persistSession()

	return cloneCandidates([]entity.Candidate{cand})[0]
}

// UpdateCandidate merges a partial update into the matching candidate.
// Dimension entries are merged key-by-key and clamped; unknown dimension
// keys are ignored. A missing id is a silent no-op.
func (s *Store) UpdateCandidate(id uuid.UUID, patch entity.CandidatePatch) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.session.Candidates {
		if s.session.Candidates[i].Id != id {
			continue
		}
		if patch.Name != nil {
			s.session.Candidates[i].Name = *patch.Name
		}
		for key, v := range patch.Dimensions {
			if _, ok := s.session.Candidates[i].Dimensions[key]; ok {
				s.session.Candidates[i].Dimensions[key] = ClampDimension(v)
			}
		}
		s.persistSession()
		return
	}
	s.debug("update candidate skipped, id not found", id)
}

// RemoveCandidate filters the candidate out of the session.
func (s *Store) RemoveCandidate(id uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.session.Candidates[:0]
	for _, c := range s.session.Candidates {
		if c.Id == id {
			continue
		}
		kept = append(kept, c)
	}
	s.session.Candidates = kept
	s.persistSession()
}
