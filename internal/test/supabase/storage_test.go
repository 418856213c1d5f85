package supabase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"watch-atelier-backend/internal/supabase"
)

func TestStorageClient_PublicURL(t *testing.T) {
	client, err := supabase.NewStorageClient("https://example.supabase.co/", "service-role-key", "watch-images")
	assert.NoError(t, err)

	url := client.PublicURL("catalog/abc-dial.png")

	assert.Equal(t, "https://example.supabase.co/storage/v1/object/public/watch-images/catalog/abc-dial.png", url)
}

func TestStorageClient_Upload(t *testing.T) {
	// Requires a live Supabase Storage endpoint; the upload path format
	// is covered via PublicURL above.
	t.Skip("Requires mock storage client setup")
}
