package prompts

import (
	"strings"
	"testing"
)

func TestRegistryPersonas(t *testing.T) {
	submission, ok := Get(SubmissionAgent)
	if !ok || submission == "" {
		t.Fatal("SUBMISSION_AGENT persona missing")
	}
	if !strings.Contains(submission, "README") {
		t.Errorf("submission persona should mention README files")
	}
	if !strings.Contains(submission, "150 words") {
		t.Errorf("submission persona should carry the hard word cap")
	}

	guidance, ok := Get(GuidanceAgent)
	if !ok || guidance == "" {
		t.Fatal("GUIDANCE_AGENT persona missing")
	}
	if !strings.Contains(guidance, "hackathons") {
		t.Errorf("guidance persona should mention hackathons")
	}
}

func TestRegistryUnknownPersona(t *testing.T) {
	if _, ok := Get("REVIEW_AGENT"); ok {
		t.Error("unknown persona should not resolve")
	}
}
