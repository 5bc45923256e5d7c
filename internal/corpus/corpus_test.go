package corpus

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestLoad_MissingFile_DegradesToEmpty(t *testing.T) {
	c := Load(filepath.Join(t.TempDir(), "nope.json"), zap.NewNop())

	assert.Equal(t, 0, c.Len())
	assert.Empty(t, NewRetriever(c).Retrieve("passport"))
}

func TestLoad_MalformedFile_DegradesToEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kb.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	c := Load(path, zap.NewNop())

	assert.Equal(t, 0, c.Len())
}

func TestLoad_ValidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kb.json")
	data := `[
		{"id": "kb-001", "topic": "Passport", "content": "Apply in Freetown.", "keywords": ["passport"]},
		{"id": "kb-002", "topic": "Emergency", "content": "Dial 117.", "keywords": ["emergency", "police"]}
	]`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	c := Load(path, zap.NewNop())

	require.Equal(t, 2, c.Len())
	assert.Equal(t, "kb-001", c.Entries()[0].ID)
}

func TestExactKeywordMatch(t *testing.T) {
	c := testCorpus()

	content, ok := c.ExactKeywordMatch("Is AGRICULTURE still funded?")
	assert.True(t, ok)
	assert.Equal(t, "Feed Salone is the national agriculture programme.", content)

	_, ok = c.ExactKeywordMatch("completely unrelated question")
	assert.False(t, ok)
}
