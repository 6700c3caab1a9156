package course_sections

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCourseSectionSeeds(t *testing.T) {
	content := []byte(`[
		{"course_id":"6f1f8a44-2b7e-4c1a-9d55-0c3f4a2e9b10","date":"2026-10-13","name":"Orientasi"},
		{"course_id":"bukan-uuid","date":"2026-10-14","name":"Rusak"},
		{"course_id":"6f1f8a44-2b7e-4c1a-9d55-0c3f4a2e9b10","date":"14/10/2026","name":"Rusak"}
	]`)

	rows, err := ParseCourseSectionSeeds(content)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Orientasi", rows[0].CourseSectionName)
	assert.Equal(t, time.Date(2026, 10, 13, 0, 0, 0, 0, time.UTC), time.Time(rows[0].CourseSectionDate))

	_, err = ParseCourseSectionSeeds([]byte("{"))
	assert.Error(t, err)
}

func TestBundledSeedFileParses(t *testing.T) {
	content, err := os.ReadFile("data_course_sections.json")
	require.NoError(t, err)

	rows, err := ParseCourseSectionSeeds(content)
	require.NoError(t, err)
	assert.Len(t, rows, 4)
}
