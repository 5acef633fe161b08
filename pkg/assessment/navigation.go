package assessment

import (
	"assessment-assistant-be/internal/constant"
)

// NextModule advances the session along the standard-process order and
// returns the new module name. It returns ok=false without mutating
// anything when the session is not a standard process or already at the
// last stage. A session sitting in the optional onboarding stage advances
// to export.
func (s *Store) NextModule() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.session.IsStandardProcess {
		return "", false
	}

	if s.session.CurrentModule == constant.ModuleOnboarding {
		s.session.CurrentModule = constant.ModuleExport
		s.persistSession()
		return constant.ModuleExport, true
	}

	order := constant.StandardModuleOrder
	for i, m := range order {
		if m != s.session.CurrentModule {
			continue
		}
		if i == len(order)-1 {
			return "", false
		}
		s.session.CurrentModule = order[i+1]
		s.persistSession()
		return s.session.CurrentModule, true
	}
	return "", false
}

// CanAccessModule is a pure navigation gate, not a security boundary.
func (s *Store) CanAccessModule(module string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch module {
	case constant.ModuleRequirementsAnalysis:
		return true
	case constant.ModuleInterpretation, constant.ModuleInterview:
		return s.session.Requirements != "" || s.session.SelectedAnalysisId != nil
	case constant.ModuleOnboarding:
		return s.session.Interpretation != "" || s.session.SelectedInterpretationId != nil
	case constant.ModuleExport:
		return s.session.Requirements != "" ||
			s.session.Interpretation != "" ||
			s.session.InterviewGuide != ""
	}
	return false
}
