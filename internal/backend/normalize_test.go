package backend

import (
	"encoding/json"
	"testing"

	"github.com/mastersolis/site-gateway/internal/core/domain"
)

func TestNormalizeList_BareArrayPassesThrough(t *testing.T) {
	raw := json.RawMessage(`[{"id":1},{"id":2}]`)
	got := NormalizeList(raw)
	if string(got) != string(raw) {
		t.Fatalf("expected pass-through, got %s", got)
	}
}

func TestNormalizeList_WrapperPrecedence(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"data", `{"data":[1,2]}`, `[1,2]`},
		{"items", `{"items":[3]}`, `[3]`},
		{"result", `{"result":[4]}`, `[4]`},
		{"data wins over items", `{"items":[3],"data":[1,2]}`, `[1,2]`},
		{"items wins over result", `{"result":[4],"items":[3]}`, `[3]`},
		{"null data falls through to items", `{"data":null,"items":[3]}`, `[3]`},
		{"all null", `{"data":null,"items":null,"result":null}`, `[]`},
		{"no known key", `{"things":[9]}`, `[]`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := NormalizeList(json.RawMessage(tc.in))
			if string(got) != tc.want {
				t.Fatalf("NormalizeList(%s) = %s, want %s", tc.in, got, tc.want)
			}
		})
	}
}

func TestNormalizeList_NonListShapesYieldEmptyArray(t *testing.T) {
	for _, in := range []string{`null`, `42`, `"text"`, `true`, ``} {
		got := NormalizeList(json.RawMessage(in))
		if string(got) != "[]" {
			t.Fatalf("NormalizeList(%q) = %s, want []", in, got)
		}
	}
}

func TestNormalizeList_Idempotent(t *testing.T) {
	inputs := []string{
		`{"data":[{"id":1}]}`,
		`[{"id":1}]`,
		`null`,
		`{"unrelated":true}`,
	}
	for _, in := range inputs {
		once := NormalizeList(json.RawMessage(in))
		twice := NormalizeList(once)
		if string(once) != string(twice) {
			t.Fatalf("not idempotent for %s: %s vs %s", in, once, twice)
		}
	}
}

func TestDecodeList_ToleratesUnknownFieldsAndFlexIDs(t *testing.T) {
	raw := json.RawMessage(`{"data":[
		{"id":7,"title":"a","extra":"ignored"},
		{"id":"abc","title":"b"}
	]}`)

	posts, err := DecodeList[domain.Post](raw)
	if err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if len(posts) != 2 {
		t.Fatalf("expected 2 posts, got %d", len(posts))
	}
	if posts[0].ID.String() != "7" || posts[1].ID.String() != "abc" {
		t.Fatalf("unexpected ids: %s, %s", posts[0].ID, posts[1].ID)
	}
}

func TestExtractField(t *testing.T) {
	fallback := json.RawMessage(`[]`)

	got := extractField(json.RawMessage(`{"services":[{"id":1}]}`), "services", fallback)
	if string(got) != `[{"id":1}]` {
		t.Fatalf("unexpected field value: %s", got)
	}

	for _, in := range []string{`{"services":null}`, `{"other":[]}`, `[1,2]`, `null`} {
		got := extractField(json.RawMessage(in), "services", fallback)
		if string(got) != "[]" {
			t.Fatalf("extractField(%s) = %s, want fallback", in, got)
		}
	}
}
