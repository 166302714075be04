package entities

import (
	"testing"
	"time"
)

func TestProposalStatus_CanTransitionTo(t *testing.T) {
	cases := []struct {
		from, to ProposalStatus
		want     bool
	}{
		{ProposalStatusPending, ProposalStatusAccepted, true},
		{ProposalStatusPending, ProposalStatusRejected, true},
		{ProposalStatusPending, ProposalStatusExpired, true},
		{ProposalStatusAccepted, ProposalStatusPending, false},
		{ProposalStatusAccepted, ProposalStatusAccepted, true},
		{ProposalStatusRejected, ProposalStatusAccepted, false},
		{ProposalStatusExpired, ProposalStatusAccepted, true},
		{ProposalStatusExpired, ProposalStatusPending, false},
	}
	for _, tc := range cases {
		if got := tc.from.CanTransitionTo(tc.to); got != tc.want {
			t.Fatalf("%s -> %s: expected %v, got %v", tc.from, tc.to, tc.want, got)
		}
	}
}

func TestProposal_ChargeAmount(t *testing.T) {
	down := 250.0
	p := Proposal{Cost: 1000, PaymentType: PaymentTypePartial, DownPayment: &down}
	if p.ChargeAmount() != 250 {
		t.Fatalf("expected down payment, got %v", p.ChargeAmount())
	}
	p.PaymentType = PaymentTypeFull
	if p.ChargeAmount() != 1000 {
		t.Fatalf("expected full cost, got %v", p.ChargeAmount())
	}
}

func TestQuestionnaire_ShouldExpire(t *testing.T) {
	now := time.Now().UTC()
	q := Questionnaire{Status: QuestionnaireStatusSent, ExpiresAt: now.Add(-time.Second)}
	if !q.ShouldExpire(now) {
		t.Fatalf("expected sent questionnaire past expiry to expire")
	}
	q.Status = QuestionnaireStatusCompleted
	if q.ShouldExpire(now) {
		t.Fatalf("completed questionnaires never expire")
	}
	q.Status = QuestionnaireStatusInProgress
	q.ExpiresAt = now.Add(time.Hour)
	if q.ShouldExpire(now) {
		t.Fatalf("questionnaire within validity must not expire")
	}
}

func TestQuestionResponse_IsEmpty(t *testing.T) {
	if !(QuestionResponse{Answer: ""}).IsEmpty() || !(QuestionResponse{}).IsEmpty() || !(QuestionResponse{Answer: []any{}}).IsEmpty() {
		t.Fatalf("expected empty answers")
	}
	if (QuestionResponse{Answer: "yes"}).IsEmpty() || (QuestionResponse{Answer: []any{"a"}}).IsEmpty() {
		t.Fatalf("expected non-empty answers")
	}
}

func TestContentItem_VisibleTo(t *testing.T) {
	open := ContentItem{}
	if !open.VisibleTo("p-1") {
		t.Fatalf("items without allow-list are visible to all")
	}
	restricted := ContentItem{ClientIDs: []string{"p-2"}}
	if restricted.VisibleTo("p-1") || !restricted.VisibleTo("p-2") {
		t.Fatalf("allow-list not honoured")
	}
}

func TestClientFromPortal(t *testing.T) {
	c := ClientFromPortal(ClientPortal{ID: "p-1", ClientEmail: "a@b.com", ClientName: "Ann", IsActive: true})
	if c.Kind != ClientKindPortal || c.Phone != "" || c.Email != "a@b.com" || c.Name != "Ann" || !c.PortalActive {
		t.Fatalf("unexpected mapping: %+v", c)
	}
}

func TestTrackingEvent_CounterField(t *testing.T) {
	if got := (TrackingEvent{Event: "open"}).CounterField(); got != "open_count" {
		t.Fatalf("unexpected field %s", got)
	}
	if got := (TrackingEvent{Event: "view", Section: "reports"}).CounterField(); got != "reports_view_count" {
		t.Fatalf("unexpected field %s", got)
	}
}
