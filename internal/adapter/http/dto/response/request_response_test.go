package response

import (
	"testing"
	"time"

	"cleanmatch/internal/domain/entities"
)

func TestFromRequest(t *testing.T) {
	now := time.Now().UTC()
	accepted := now.Add(time.Hour)
	r := entities.Request{
		ID:          "req-1",
		ClientID:    "client-1",
		CleanerID:   "cleaner-1",
		RequestType: entities.RequestTypeSpecific,
		Status:      entities.RequestStatusAccepted,
		Service:     "deep-clean",
		Date:        "2025-06-09",
		StartTime:   "09:00",
		EndTime:     "12:00",
		Applications: []entities.Application{
			{CleanerID: "cleaner-2", AppliedAt: now},
		},
		AcceptedAt: &accepted,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	res := FromRequest(r)
	if res.ID != "req-1" || res.ClientID != "client-1" || res.CleanerID != "cleaner-1" {
		t.Fatalf("unexpected ids: %+v", res)
	}
	if res.RequestType != "specific" || res.Status != "accepted" {
		t.Fatalf("unexpected lifecycle fields: %+v", res)
	}
	if len(res.Applications) != 1 || res.Applications[0].CleanerID != "cleaner-2" {
		t.Fatalf("unexpected applications: %+v", res.Applications)
	}
	if res.AcceptedAt == nil || !res.AcceptedAt.Equal(accepted) {
		t.Fatalf("unexpected accepted_at: %+v", res.AcceptedAt)
	}
}

func TestFromRequests(t *testing.T) {
	out := FromRequests(nil)
	if out == nil || len(out) != 0 {
		t.Fatalf("expected empty non-nil slice, got %+v", out)
	}
}
