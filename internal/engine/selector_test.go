package engine

import (
	"testing"

	"github.com/habitloop/adherence-engine/internal/domain"
)

func TestSelectInterventions_Struggling(t *testing.T) {
	m := strugglingSnapshot()
	in := SelectionInput{
		Snapshot:  m,
		RiskLevel: domain.RiskHigh,
		Triggers:  DetectTriggers(m),
	}

	got := SelectInterventions(in, nil)
	if len(got) != MaxInterventionCandidates {
		t.Fatalf("SelectInterventions() returned %d candidates, want %d", len(got), MaxInterventionCandidates)
	}

	// High risk puts direct outreach first; the priority-9 tie between push
	// and protocol adjustment breaks on catalogue order.
	want := []domain.InterventionType{
		domain.InterventionAgentOutreach,
		domain.InterventionPushNotification,
		domain.InterventionProtocolAdjustment,
	}
	for i, typ := range want {
		if got[i].Type != typ {
			t.Errorf("candidate[%d] = %v (priority %d), want %v", i, got[i].Type, got[i].Priority, typ)
		}
	}

	for i := 1; i < len(got); i++ {
		if got[i].Priority > got[i-1].Priority {
			t.Errorf("candidates not sorted by priority: %+v", got)
		}
	}
}

func TestSelectInterventions_HealthyStillHasBaseline(t *testing.T) {
	m := healthySnapshot()
	got := SelectInterventions(SelectionInput{Snapshot: m, RiskLevel: domain.RiskVeryLow}, nil)

	if len(got) == 0 {
		t.Fatal("selector must never return an empty list")
	}
	if got[0].Type != domain.InterventionAutomatedMessage {
		t.Errorf("baseline candidate = %v, want automated_message", got[0].Type)
	}
}

func TestSelectInterventions_AdvisoryMerge(t *testing.T) {
	m := strugglingSnapshot()
	in := SelectionInput{
		Snapshot:  m,
		RiskLevel: domain.RiskHigh,
		Triggers:  DetectTriggers(m),
	}

	advisory := []domain.InterventionCandidate{
		{Type: domain.InterventionSocialSupport, Reasoning: "peer group", Priority: 10},
		// Lower priority than the deterministic proposal for the same type;
		// the deterministic one must win.
		{Type: domain.InterventionAgentOutreach, Reasoning: "call them", Priority: 1},
		{Type: domain.InterventionType("bribe"), Reasoning: "invalid", Priority: 10},
	}

	got := SelectInterventions(in, advisory)
	if len(got) != MaxInterventionCandidates {
		t.Fatalf("got %d candidates, want %d", len(got), MaxInterventionCandidates)
	}

	byType := make(map[domain.InterventionType]domain.InterventionCandidate)
	for _, c := range got {
		if !c.Type.Valid() {
			t.Errorf("invalid type %q survived selection", c.Type)
		}
		byType[c.Type] = c
	}

	if c, ok := byType[domain.InterventionSocialSupport]; !ok || c.Priority != 10 {
		t.Errorf("advisory social_support candidate missing or wrong priority: %+v", got)
	}
	if c, ok := byType[domain.InterventionAgentOutreach]; !ok || c.Priority != 10 {
		t.Errorf("deterministic agent_outreach should keep priority 10: %+v", got)
	}
}

func TestSelectInterventions_ModerateGetsPersonalization(t *testing.T) {
	m := healthySnapshot()
	got := SelectInterventions(SelectionInput{Snapshot: m, RiskLevel: domain.RiskModerate}, nil)

	found := false
	for _, c := range got {
		if c.Type == domain.InterventionContentPersonalization {
			found = true
		}
	}
	if !found {
		t.Errorf("candidates = %+v, want content_personalization at moderate risk", got)
	}
}
