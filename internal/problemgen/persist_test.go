package problemgen

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/scoreprep/internal/store"
)

func TestSaveResult_RoundTrip(t *testing.T) {
	s, err := store.Open(filepath.Join(t.TempDir(), "persist.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })

	p, err := NewPipeline(WithClock(func() time.Time { return fixedNow }))
	require.NoError(t, err)
	res := p.Run(context.Background(), pipelineReport, 4)
	require.Len(t, res.Questions, 4)

	id, err := SaveResult(context.Background(), s.QuestionRepo(), "student-7", "march.pdf", res)
	require.NoError(t, err)
	require.NotEmpty(t, id)

	set, err := s.QuestionRepo().GetQuestionSet(context.Background(), id)
	require.NoError(t, err)
	require.NotNil(t, set)
	assert.Equal(t, "student-7", set.UserID)
	assert.Equal(t, "march.pdf", set.Source)
	assert.Equal(t, string(SourceFallback), set.Origin)
	assert.Equal(t, res.Questions, FromStored(set.Questions))
}

func TestSaveResult_RequiresUser(t *testing.T) {
	s, err := store.Open(filepath.Join(t.TempDir(), "persist.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })

	_, err = SaveResult(context.Background(), s.QuestionRepo(), "", "x", &Result{})
	require.Error(t, err)
}
