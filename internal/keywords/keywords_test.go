package keywords

import (
	"testing"

	"github.com/bnema/athena-partnership/internal/domain"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestCamelCaseTokens(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		text string
		want []string
	}{
		{name: "upper camel", text: "Refactor the PartnershipCoordinator now", want: []string{"PartnershipCoordinator"}},
		{name: "lower camel", text: "call coordinatePartnership()", want: []string{"coordinatePartnership"}},
		{name: "acronym prefix", text: "wrap HTTPServer", want: []string{"HTTPServer"}},
		{name: "acronym suffix", text: "use parseJSON", want: []string{"parseJSON"}},
		{name: "digit boundary", text: "HTTP2Client", want: []string{"HTTP2Client"}},
		{name: "plain acronym ignored", text: "JSON API", want: []string{}},
		{name: "capitalised word ignored", text: "Hello World", want: []string{}},
		{name: "hyphen splits", text: "HaltCheckpoint-ErrorPattern", want: []string{"HaltCheckpoint", "ErrorPattern"}},
		{name: "snake case ignored", text: "halt_checkpoint", want: []string{}},
		{name: "empty", text: "", want: []string{}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if diff := cmp.Diff(tt.want, CamelCaseTokens(tt.text)); diff != "" {
				t.Errorf("CamelCaseTokens(%q) mismatch (-want +got):\n%s", tt.text, diff)
			}
		})
	}
}

func TestMessageWords(t *testing.T) {
	t.Parallel()

	got := MessageWords("Please migrate the well-known session store, again! v2storage")
	assert.Equal(t, []string{"migrate", "known", "session", "store", "storage"}, got)
}

func TestMessageWordsDropsShortWords(t *testing.T) {
	t.Parallel()

	assert.Empty(t, MessageWords("do it now, fix bug"))
}

func TestExtractDeduplicatesAcrossSources(t *testing.T) {
	t.Parallel()

	mesh := &domain.MeshIntelligence{
		Goals:   []string{" Reliability ", "session"},
		Domains: []string{"Storage"},
	}

	got := Extract("Harden SessionStore writes", "The sessionstore loses session data", mesh)
	want := []string{"sessionstore", "loses", "session", "reliability", "storage"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("Extract mismatch (-want +got):\n%s", diff)
	}
}

func TestExtractWithoutMesh(t *testing.T) {
	t.Parallel()

	got := Extract("", "", nil)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestOverlap(t *testing.T) {
	t.Parallel()

	assert.InDelta(t, 0.5, Overlap([]string{"a", "b"}, []string{"a", "c"}), 1e-9)
	assert.InDelta(t, 1.0, Overlap([]string{"a", "b", "c"}, []string{"a", "b"}), 1e-9)
	assert.Zero(t, Overlap([]string{"a"}, nil))
}
