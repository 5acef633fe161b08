package assessment

import (
	"testing"

	"assessment-assistant-be/internal/constant"
	"assessment-assistant-be/internal/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCandidateHasAllNineDimensionsAtMidpoint(t *testing.T) {
	cand := NewCandidate("Anna Muster")

	assert.NotEqual(t, uuid.Nil, cand.Id)
	require.Len(t, cand.Dimensions, 9)
	for _, key := range constant.DimensionKeys {
		assert.Equal(t, constant.DimensionDefault, cand.Dimensions[key], key)
	}
}

func TestClampDimension(t *testing.T) {
	assert.Equal(t, 1, ClampDimension(0))
	assert.Equal(t, 1, ClampDimension(-3))
	assert.Equal(t, 7, ClampDimension(8))
	assert.Equal(t, 4, ClampDimension(4))
}

func TestNormalizeDimensions(t *testing.T) {
	out := NormalizeDimensions(map[string]int{
		constant.DimensionIchStaerke: 9,
		constant.DimensionAntrieb:    0,
		"UNBEKANNT":                  3,
	})

	require.Len(t, out, 9)
	assert.Equal(t, 7, out[constant.DimensionIchStaerke])
	assert.Equal(t, 1, out[constant.DimensionAntrieb])
	assert.Equal(t, constant.DimensionDefault, out[constant.DimensionMotivation])
	_, hasForeign := out["UNBEKANNT"]
	assert.False(t, hasForeign)
}

func TestAddAndUpdateCandidateScenario(t *testing.T) {
	s := newTestStore()

	cand := s.AddCandidate("Anna Muster")
	s.UpdateCandidate(cand.Id, entity.CandidatePatch{
		Dimensions: map[string]int{constant.DimensionIchStaerke: 7},
	})

	sess := s.Session()
	require.Len(t, sess.Candidates, 1)
	got := sess.Candidates[0]
	assert.Equal(t, 7, got.Dimensions[constant.DimensionIchStaerke])
	for _, key := range constant.DimensionKeys {
		if key == constant.DimensionIchStaerke {
			continue
		}
		assert.Equal(t, constant.DimensionDefault, got.Dimensions[key], key)
	}
}

func TestUpdateCandidateClampsAndIgnoresForeignKeys(t *testing.T) {
	s := newTestStore()
	cand := s.AddCandidate("Anna Muster")

	s.UpdateCandidate(cand.Id, entity.CandidatePatch{
		Name: strPtr("Anna M."),
		Dimensions: map[string]int{
			constant.DimensionEmpathie: 99,
			"FREMD":                    2,
		},
	})

	got := s.Session().Candidates[0]
	assert.Equal(t, "Anna M.", got.Name)
	assert.Equal(t, 7, got.Dimensions[constant.DimensionEmpathie])
	assert.Len(t, got.Dimensions, 9)
}

func TestUpdateCandidateUnknownIdIsSilentNoop(t *testing.T) {
	s := newTestStore()
	s.AddCandidate("Anna Muster")

	s.UpdateCandidate(uuid.New(), entity.CandidatePatch{Name: strPtr("Niemand")})

	assert.Equal(t, "Anna Muster", s.Session().Candidates[0].Name)
}

func TestRemoveCandidate(t *testing.T) {
	s := newTestStore()
	a := s.AddCandidate("Anna Muster")
	b := s.AddCandidate("Bernd Beispiel")

	s.RemoveCandidate(a.Id)

	sess := s.Session()
	require.Len(t, sess.Candidates, 1)
	assert.Equal(t, b.Id, sess.Candidates[0].Id)
}
