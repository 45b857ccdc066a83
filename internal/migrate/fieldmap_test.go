package migrate

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestToSnakeCase(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"householdId", "household_id"},
		{"dueDate", "due_date"},
		{"actionURL", "action_url"},
		{"isRead", "is_read"},
		{"splitAmong", "split_among"},
		{"amount", "amount"},
		{"HTTPTimeout", "http_timeout"},
		{"already_snake", "already_snake"},
		{"", ""},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, ToSnakeCase(tc.in), "input %q", tc.in)
	}
}

func TestMapKeys_Recursive(t *testing.T) {
	dueDate := time.Date(2025, time.March, 1, 8, 30, 0, 0, time.FixedZone("CET", 3600))

	got := MapKeys(map[string]any{
		"householdId": "h1",
		"dueDate":     dueDate,
		"splitDetail": map[string]any{
			"splitAmong": []any{"u1", "u2"},
			"perPerson":  30.5,
		},
		"lineItems": []any{
			map[string]any{"itemName": "electric", "isShared": true},
		},
	})

	want := map[string]any{
		"household_id": "h1",
		"due_date":     "2025-03-01T07:30:00Z",
		"split_detail": map[string]any{
			"split_among": []any{"u1", "u2"},
			"per_person":  30.5,
		},
		"line_items": []any{
			map[string]any{"item_name": "electric", "is_shared": true},
		},
	}
	assert.Equal(t, want, got)
}

func TestMapKeys_Nil(t *testing.T) {
	assert.Nil(t, MapKeys(nil))
}
