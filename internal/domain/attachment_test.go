package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAllowedAttachmentName(t *testing.T) {
	allowed := []string{"scan.png", "photo.JPG", "form.jpeg", "report.docx", "manual.pdf"}
	for _, name := range allowed {
		require.True(t, AllowedAttachmentName(name), name)
	}
	rejected := []string{"script.exe", "archive.zip", "notes.txt", "noextension", "double.pdf.sh"}
	for _, name := range rejected {
		require.False(t, AllowedAttachmentName(name), name)
	}
}

func TestAttachmentKeySwitchesWithIdentity(t *testing.T) {
	local := NewLocalAttachment("scan.png", 128, []byte("x"))
	require.Equal(t, "name:scan.png", local.Key())
	require.False(t, local.Persisted())

	persisted := NewPersistedAttachment(77, "scan.png", 128, "/files/77")
	require.Equal(t, "id:77", persisted.Key())
	require.True(t, persisted.Persisted())
}
