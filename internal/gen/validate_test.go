package gen

import (
	"encoding/json"
	"errors"
	"reflect"
	"testing"
)

func validInsights() JobInsights {
	return JobInsights{
		RoleSummary:                "Own backend services end to end.",
		RequiredSkills:             []string{"Go", "SQL", "Kubernetes"},
		InterviewTopics:            []string{"System design", "Concurrency", "Databases"},
		CodingFocusAreas:           []string{"Algorithms", "API design", "Testing"},
		SuggestedPracticeQuestions: []string{"Design a rate limiter", "Explain goroutines", "Model a chat schema"},
		Plan: PhasePlan{
			First30Days: []string{"Review fundamentals", "Mock interviews"},
			Days31To60:  []string{"System design drills", "Build a side project"},
			Days61To90:  []string{"Company research", "Negotiation prep"},
		},
	}
}

func TestDecodeArtifact_RoundTrip(t *testing.T) {
	want := validInsights()
	b, err := json.Marshal(want)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	raw, err := ExtractJSON(string(b))
	if err != nil {
		t.Fatalf("extract: %v", err)
	}

	got := JobInsights{}
	if err := decodeArtifact(raw, &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("round trip mismatch:\n got %+v\nwant %+v", got, want)
	}
}

func TestDecodeArtifact_UnknownFieldsTolerated(t *testing.T) {
	b, _ := json.Marshal(validInsights())
	var m map[string]any
	_ = json.Unmarshal(b, &m)
	m["confidence"] = 0.93
	m["notes"] = []string{"extra"}
	b, _ = json.Marshal(m)

	got := JobInsights{}
	if err := decodeArtifact(b, &got); err != nil {
		t.Fatalf("decode with extra fields: %v", err)
	}
}

func TestDecodeArtifact_TooFewSkills(t *testing.T) {
	in := validInsights()
	in.RequiredSkills = []string{"Go", "SQL"}
	b, _ := json.Marshal(in)

	err := decodeArtifact(b, &JobInsights{})
	if !errors.Is(err, ErrSchemaViolation) {
		t.Fatalf("expected ErrSchemaViolation, got %v", err)
	}

	var se *SchemaError
	if !errors.As(err, &se) {
		t.Fatalf("expected *SchemaError, got %T", err)
	}
	if se.Path == "" || se.Expect != "min=3" {
		t.Fatalf("unexpected detail: path=%q expect=%q", se.Path, se.Expect)
	}
}

func TestDecodeArtifact_MissingField(t *testing.T) {
	in := validInsights()
	in.RoleSummary = ""
	b, _ := json.Marshal(in)

	err := decodeArtifact(b, &JobInsights{})
	if !errors.Is(err, ErrSchemaViolation) {
		t.Fatalf("expected ErrSchemaViolation, got %v", err)
	}
}

func TestDecodeArtifact_WrongFieldType(t *testing.T) {
	err := decodeArtifact([]byte(`{"overallAssessment":"ok","strengths":"not an array","gaps":["a","b"],"rewriteSuggestions":["a","b"],"atsTips":["a","b"]}`), &ResumeFeedback{})
	if !errors.Is(err, ErrSchemaViolation) {
		t.Fatalf("expected ErrSchemaViolation, got %v", err)
	}
	var se *SchemaError
	if !errors.As(err, &se) || se.Path == "" {
		t.Fatalf("expected path detail, got %v", err)
	}
}

func TestDecodeArtifact_ResumeFeedbackBounds(t *testing.T) {
	fb := ResumeFeedback{
		OverallAssessment:  "Solid foundation, weak on impact metrics.",
		Strengths:          []string{"Clear structure", "Relevant stack"},
		Gaps:               []string{"No metrics", "No leadership signals"},
		RewriteSuggestions: []string{"Quantify outcomes", "Lead with impact"},
		ATSTips:            []string{"Use standard headings", "Mirror job keywords"},
	}
	b, _ := json.Marshal(fb)
	got := ResumeFeedback{}
	if err := decodeArtifact(b, &got); err != nil {
		t.Fatalf("decode: %v", err)
	}

	fb.ATSTips = []string{"only one"}
	b, _ = json.Marshal(fb)
	if err := decodeArtifact(b, &ResumeFeedback{}); !errors.Is(err, ErrSchemaViolation) {
		t.Fatalf("expected ErrSchemaViolation, got %v", err)
	}
}
