package response

import (
	"encoding/json"
	"strings"
	"testing"

	"cleanmatch/internal/domain/entities"
)

func TestFromCleaner(t *testing.T) {
	c := entities.Cleaner{
		ID:           "cleaner-1",
		Username:     "maria",
		Name:         "Maria Silva",
		Email:        "maria@example.com",
		Gender:       "female",
		Age:          34,
		Service:      []string{"deep-clean"},
		HourlyPrice:  22.5,
		Stars:        4.5,
		RatingCount:  12,
		Password:     "$2a$10$secret-hash",
		Schedule:     entities.Schedule{"Monday": {StartTime: "08:00", EndTime: "17:00"}},
		ScheduleType: entities.ScheduleTypeStrict,
	}

	res := FromCleaner(c)
	if res.ID != "cleaner-1" || res.Username != "maria" {
		t.Fatalf("unexpected identity fields: %+v", res)
	}
	if res.Stars != 4.5 || res.RatingCount != 12 {
		t.Fatalf("unexpected rating fields: %+v", res)
	}
	if res.ScheduleType != "STRICT" {
		t.Fatalf("expected schedule type STRICT, got %q", res.ScheduleType)
	}
	w, ok := res.Schedule["Monday"]
	if !ok || w.StartTime != "08:00" || w.EndTime != "17:00" {
		t.Fatalf("unexpected schedule: %+v", res.Schedule)
	}

	body, err := json.Marshal(res)
	if err != nil {
		t.Fatalf("expected marshal to succeed, got %v", err)
	}
	if strings.Contains(string(body), "secret-hash") || strings.Contains(string(body), "password") {
		t.Fatalf("credentials leaked into response: %s", body)
	}
}

func TestFromCleanersEmpty(t *testing.T) {
	out := FromCleaners(nil)
	if out == nil || len(out) != 0 {
		t.Fatalf("expected empty non-nil slice, got %+v", out)
	}
}
