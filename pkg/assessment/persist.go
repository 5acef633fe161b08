package assessment

import (
	"context"
	"encoding/json"

	"assessment-assistant-be/internal/constant"
	"assessment-assistant-be/internal/entity"

	"github.com/google/uuid"
)

// Persister writes slot payloads to durable storage. Implementations must
// be safe for concurrent use; the store never waits on them and never
// propagates their errors.
type Persister interface {
	SaveSlot(ctx context.Context, workspaceId uuid.UUID, slot string, payload []byte) error
	DeleteSlot(ctx context.Context, workspaceId uuid.UUID, slot string) error
}

type modelPref struct {
	Model string `json:"model"`
}

const persistQueueSize = 64

// persistOp is one queued durable write. Delete ops carry no payload.
type persistOp struct {
	slot    string
	payload []byte
	delete  bool
}

// persistLoop drains the store's persist queue one op at a time, so
// writes reach durable storage in issue order and a slow earlier write
// can never overwrite a later snapshot.
func (s *Store) persistLoop(ch <-chan persistOp) {
	for op := range ch {
		s.runPersistOp(op)
	}
}

func (s *Store) runPersistOp(op persistOp) {
	var err error
	if op.delete {
		err = s.persister.DeleteSlot(context.Background(), s.workspaceId, op.slot)
	} else {
		err = s.persister.SaveSlot(context.Background(), s.workspaceId, op.slot, op.payload)
	}
	if err != nil {
		s.warnPersist(op.slot, err)
	}
}

// enqueuePersist hands an op to the worker. Callers hold the store lock,
// which also serializes against Close; the worker itself never takes the
// lock, so a full queue drains independently. After Close the op runs
// inline as a last best effort.
func (s *Store) enqueuePersist(op persistOp) {
	if s.persistCh == nil {
		s.runPersistOp(op)
		return
	}
	s.persistCh <- op
}

// persistSlot marshals under the store lock, then hands the bytes to the
// persist worker. Failures are logged and swallowed; a persistence error
// never fails a store operation.
func (s *Store) persistSlot(slot string, payload interface{}) {
	if s.persister == nil {
		return
	}
	data, err := json.Marshal(payload)
	if err != nil {
		s.warnPersist(slot, err)
		return
	}
	s.enqueuePersist(persistOp{slot: slot, payload: data})
}

func (s *Store) persistSession() {
	s.persistSlot(constant.SlotSession, s.session)
}

func (s *Store) deleteSlot(slot string) {
	if s.persister == nil {
		return
	}
	s.enqueuePersist(persistOp{slot: slot, delete: true})
}

func (s *Store) warnPersist(slot string, err error) {
	if s.logger == nil {
		return
	}
	s.logger.Warn("SessionStore", "slot persistence failed", map[string]interface{}{
		"workspace_id": s.workspaceId.String(),
		"slot":         slot,
		"error":        err.Error(),
	})
}

// RestoreSlot loads one persisted slot into the store. Decoding is
// defensive: a record that fails to decode or lacks a recognizable id
// (and, for analyses, a name) is dropped silently and logged; a payload
// that is not valid JSON leaves the slot empty rather than failing.
func (s *Store) RestoreSlot(slot string, payload []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch slot {
	case constant.SlotAnalyses:
		s.analyses = decodeRecords[entity.Analysis](s, slot, payload, func(a *entity.Analysis) bool {
			return a.Id != uuid.Nil && a.Name != ""
		})
	case constant.SlotInterpretations:
		s.interpretations = decodeRecords[entity.Interpretation](s, slot, payload, func(in *entity.Interpretation) bool {
			return in.Id != uuid.Nil
		})
		for _, in := range s.interpretations {
			in.Candidates = normalizeCandidates(in.Candidates)
		}
	case constant.SlotInterviews:
		s.interviews = decodeRecords[entity.Interview](s, slot, payload, func(iv *entity.Interview) bool {
			return iv.Id != uuid.Nil
		})
		for _, iv := range s.interviews {
			iv.Candidates = normalizeCandidates(iv.Candidates)
		}
	case constant.SlotOnboardings:
		s.onboardings = decodeRecords[entity.Onboarding](s, slot, payload, func(ob *entity.Onboarding) bool {
			return ob.Id != uuid.Nil
		})
		for _, ob := range s.onboardings {
			ob.Candidates = normalizeCandidates(ob.Candidates)
		}
	case constant.SlotSession:
		var sess entity.Session
		if err := json.Unmarshal(payload, &sess); err != nil {
			s.warnRestore(slot, err)
			return
		}
		hasKey := s.session.HasApiKey
		model := s.session.SelectedModel
		s.session = normalizeSession(sess)
		s.session.HasApiKey = hasKey
		s.session.SelectedModel = model
	case constant.SlotModelPref:
		var pref modelPref
		if err := json.Unmarshal(payload, &pref); err != nil {
			s.warnRestore(slot, err)
			return
		}
		s.session.SelectedModel = pref.Model
	}
}

// decodeRecords decodes a persisted array element by element so that one
// malformed entry cannot poison the whole collection.
func decodeRecords[T any](s *Store, slot string, payload []byte, valid func(*T) bool) []*T {
	var raw []json.RawMessage
	if err := json.Unmarshal(payload, &raw); err != nil {
		s.warnRestore(slot, err)
		return nil
	}

	out := make([]*T, 0, len(raw))
	dropped := 0
	for _, item := range raw {
		rec := new(T)
		if err := json.Unmarshal(item, rec); err != nil {
			dropped++
			continue
		}
		if !valid(rec) {
			dropped++
			continue
		}
		out = append(out, rec)
	}
	if dropped > 0 && s.logger != nil {
		s.logger.Warn("SessionStore", "dropped malformed persisted records", map[string]interface{}{
			"workspace_id": s.workspaceId.String(),
			"slot":         slot,
			"dropped":      dropped,
		})
	}
	return out
}

// normalizeCandidates re-establishes the dimension invariant on restored
// candidates: exactly the canonical nine keys, values clamped to [1,7].
// A hand-edited or partially corrupt payload cannot smuggle in a nil
// dimensions map, foreign keys or out-of-range values.
func normalizeCandidates(cands []entity.Candidate) []entity.Candidate {
	for i := range cands {
		cands[i].Dimensions = NormalizeDimensions(cands[i].Dimensions)
	}
	return cands
}

// normalizeSession replaces nil collections from an older or partial
// snapshot with empty ones, so append-only transcript handling holds.
func normalizeSession(sess entity.Session) entity.Session {
	if sess.RequirementsChat == nil {
		sess.RequirementsChat = []entity.ChatMessage{}
	}
	if sess.InterpretationChat == nil {
		sess.InterpretationChat = []entity.ChatMessage{}
	}
	if sess.InterviewChat == nil {
		sess.InterviewChat = []entity.ChatMessage{}
	}
	if sess.OnboardingChat == nil {
		sess.OnboardingChat = []entity.ChatMessage{}
	}
	if sess.Candidates == nil {
		sess.Candidates = []entity.Candidate{}
	} else {
		sess.Candidates = normalizeCandidates(sess.Candidates)
	}
	return sess
}

func (s *Store) warnRestore(slot string, err error) {
	if s.logger == nil {
		return
	}
	s.logger.Warn("SessionStore", "failed to restore persisted slot", map[string]interface{}{
		"workspace_id": s.workspaceId.String(),
		"slot":         slot,
		"error":        err.Error(),
	})
}
