package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTemplate(t *testing.T) {
	tests := []struct {
		in      string
		want    Template
		wantErr bool
	}{
		{"", TemplateSummary, false},
		{"summary", TemplateSummary, false},
		{" Timeline ", TemplateTimeline, false},
		{"haiku", "", true},
	}
	for _, tt := range tests {
		got, err := ParseTemplate(tt.in)
		if tt.wantErr {
			require.ErrorIs(t, err, ErrInvalidInput)
			continue
		}
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}
}

func TestBuildMessages(t *testing.T) {
	const transcript = "0.0: hello\n12.5: 100% {not a template} %s"

	for _, tpl := range []Template{TemplateSummary, TemplateTimeline} {
		t.Run(string(tpl), func(t *testing.T) {
			msgs, err := BuildMessages(tpl, "dQw4w9WgXcQ", transcript)
			require.NoError(t, err)
			require.Len(t, msgs, 2)

			assert.Equal(t, RoleSystem, msgs[0].Role)
			assert.Contains(t, msgs[0].Content, "The video ID is dQw4w9WgXcQ.")
			assert.Contains(t, msgs[0].Content, transcript)
			assert.Contains(t, msgs[0].Content, "https://www.youtube.com/watch?v=dQw4w9WgXcQ&t=")
			assert.NotContains(t, msgs[0].Content, "%!")

			assert.Equal(t, RoleUser, msgs[1].Role)
			assert.NotContains(t, msgs[1].Content, "dQw4w9WgXcQ")
			assert.NotContains(t, msgs[1].Content, "hello")
		})
	}
}

func TestBuildMessages_FixedUserMessage(t *testing.T) {
	a, err := BuildMessages(TemplateSummary, "aaaaaaaaaaa", "0.0: one")
	require.NoError(t, err)
	b, err := BuildMessages(TemplateSummary, "bbbbbbbbbbb", "5.0: two")
	require.NoError(t, err)
	assert.Equal(t, a[1], b[1])
}

func TestBuildMessages_UnknownTemplate(t *testing.T) {
	_, err := BuildMessages("haiku", "dQw4w9WgXcQ", "")
	require.ErrorIs(t, err, ErrInvalidInput)
}
