package api

import (
	"encoding/json"
	"testing"
)

func TestItemsDecodesBothShapes(t *testing.T) {
	type row struct {
		ID string `json:"id"`
	}

	testCases := []struct {
		name  string
		body  string
		want  int
		first string
	}{
		{name: "bare array", body: `[{"id":"a1"},{"id":"a2"}]`, want: 2, first: "a1"},
		{name: "envelope", body: `{"items":[{"id":"a3"}]}`, want: 1, first: "a3"},
		{name: "leading space", body: ` [{"id":"a4"}]`, want: 1, first: "a4"},
		{name: "empty array", body: `[]`, want: 0},
		{name: "empty envelope", body: `{"items":[]}`, want: 0},
		{name: "envelope without items", body: `{}`, want: 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var got items[row]
			if err := json.Unmarshal([]byte(tc.body), &got); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if len(got.list) != tc.want {
				t.Fatalf("got %d rows, want %d", len(got.list), tc.want)
			}
			if tc.want > 0 && got.list[0].ID != tc.first {
				t.Errorf("first row = %q, want %q", got.list[0].ID, tc.first)
			}
		})
	}
}

func TestItemsRejectsGarbage(t *testing.T) {
	var got items[struct{}]
	if err := json.Unmarshal([]byte(`"neither"`), &got); err == nil {
		t.Error("a non-list, non-envelope body should fail to decode")
	}
}

func TestHistoryShapesEquivalent(t *testing.T) {
	// the transactions field accepts either shape inside the same response
	type hist struct {
		Transactions items[struct {
			ID string `json:"id"`
		}] `json:"transactions"`
	}

	var bare, enveloped hist
	if err := json.Unmarshal([]byte(`{"transactions":[{"id":"t1"}]}`), &bare); err != nil {
		t.Fatalf("bare: %v", err)
	}
	if err := json.Unmarshal([]byte(`{"transactions":{"items":[{"id":"t1"}]}}`), &enveloped); err != nil {
		t.Fatalf("enveloped: %v", err)
	}
	if len(bare.Transactions.list) != 1 || len(enveloped.Transactions.list) != 1 {
		t.Fatal("both shapes should decode to the same single row")
	}
	if bare.Transactions.list[0].ID != enveloped.Transactions.list[0].ID {
		t.Error("both shapes should decode to the same row")
	}
}
