package entities

import (
	"encoding/json"
	"math"
	"testing"
)

func TestTimestamp_Unmarshal(t *testing.T) {
	var seg Segment
	if err := json.Unmarshal([]byte(`{"text":"hi","start":"12.50","speaker":"SPEAKER_00"}`), &seg); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if v, err := seg.Start.Seconds(); err != nil || v != 12.5 {
		t.Fatalf("unexpected start %v, %v", v, err)
	}

	if err := json.Unmarshal([]byte(`{"text":"hi","start":3,"speaker":"SPEAKER_00"}`), &seg); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if v, err := seg.Start.Seconds(); err != nil || v != 3 {
		t.Fatalf("unexpected start %v, %v", v, err)
	}
}

func TestTimestamp_Seconds(t *testing.T) {
	cases := []struct {
		in      Timestamp
		want    float64
		wantErr bool
	}{
		{"1", 1, false},
		{" 2.25 ", 2.25, false},
		{"1e2", 100, false},
		{"", 0, true},
		{"soon", 0, true},
		{"NaN", 0, true},
		{"inf", math.Inf(1), false},
		{"1e400", math.Inf(1), false},
		{"-1e400", math.Inf(-1), false},
		{"true", 0, true},
	}
	for _, tc := range cases {
		got, err := tc.in.Seconds()
		if (err != nil) != tc.wantErr {
			t.Errorf("Seconds(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
			continue
		}
		if !tc.wantErr && got != tc.want {
			t.Errorf("Seconds(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestSegment_UnmarshalWrongTypes(t *testing.T) {
	cases := []struct {
		doc   string
		field string
	}{
		{`{"text": 5, "start": 1, "speaker": "SPEAKER_00"}`, "text"},
		{`{"text": "hi", "start": 1, "speaker": ["a"]}`, "speaker"},
		{`[1, 2]`, "segment"},
	}
	for _, tc := range cases {
		var seg Segment
		if err := json.Unmarshal([]byte(tc.doc), &seg); err != nil {
			t.Fatalf("unmarshal %s: %v", tc.doc, err)
		}
		bad := seg.Invalid()
		if bad == nil || bad.Field != tc.field {
			t.Fatalf("%s: expected invalid %s, got %v", tc.doc, tc.field, bad)
		}
		if seg.String() != tc.doc {
			t.Fatalf("expected raw segment, got %s", seg.String())
		}
	}

	var seg Segment
	if err := json.Unmarshal([]byte(`{"text": null, "start": null}`), &seg); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if seg.Invalid() != nil || seg.Text != nil || seg.Start != nil || seg.Speaker != nil {
		t.Fatalf("null fields should decode as missing: %+v", seg)
	}
}

func TestSegment_String(t *testing.T) {
	text := "hi"
	bad := Timestamp("later")
	seg := Segment{Text: &text, Start: &bad}
	want := `{"text":"hi","start":"later","speaker":null}`
	if got := seg.String(); got != want {
		t.Fatalf("got %s want %s", got, want)
	}

	if got := NewSegment("ok", 1.5, "SPEAKER_01").String(); got != `{"text":"ok","start":1.5,"speaker":"SPEAKER_01"}` {
		t.Fatalf("unexpected %s", got)
	}
}

func TestSpeakerLabelMap(t *testing.T) {
	if NewSpeakerLabelMap(nil) != nil {
		t.Fatal("empty label list should give a nil map")
	}

	m := NewSpeakerLabelMap([]string{"Alice", "Bob"})
	cases := map[string]string{
		"SPEAKER_00": "Alice",
		"SPEAKER_01": "Bob",
		"SPEAKER_02": "SPEAKER_02",
		"SPEAKER_1":  "SPEAKER_1",
		"A":          "A",
	}
	for raw, want := range cases {
		if got := m.Resolve(raw); got != want {
			t.Errorf("Resolve(%q) = %q, want %q", raw, got, want)
		}
	}

	var none SpeakerLabelMap
	if got := none.Resolve("SPEAKER_00"); got != "SPEAKER_00" {
		t.Fatalf("nil map should pass ids through, got %q", got)
	}
	if RawSpeakerID(12) != "SPEAKER_12" {
		t.Fatalf("unexpected id %s", RawSpeakerID(12))
	}
}
