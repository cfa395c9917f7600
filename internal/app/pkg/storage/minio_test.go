package storage

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestObjectNameSanitizes(t *testing.T) {
	name := ObjectName("My Scan.PNG")

	parts := strings.SplitN(name, "_", 2)
	assert.Len(t, parts, 2)

	_, err := uuid.Parse(parts[0])
	assert.NoError(t, err)

	assert.Equal(t, "my-scan.png", parts[1])
}

func TestObjectNameUnique(t *testing.T) {
	assert.NotEqual(t, ObjectName("a.txt"), ObjectName("a.txt"))
}

func TestSanitizeFileName(t *testing.T) {
	assert.Equal(t, "report", sanitizeFileName("Report"))
	assert.Equal(t, "a-b", sanitizeFileName("a b"))
	assert.Equal(t, "file", sanitizeFileName("@@@"))
	assert.Equal(t, "x", sanitizeFileName("--x--"))
}
