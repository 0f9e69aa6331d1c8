package template_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/notifykit/pkg/template"
)

func broadcastRecord(content string) template.Record {
	return template.Record{Type: template.TypeBroadcast, Content: content}
}

func TestBroadcastLimits(t *testing.T) {
	t.Run("pure gsm at the limit", func(t *testing.T) {
		b, err := template.NewBroadcast(broadcastRecord(strings.Repeat("a", 1395)))
		require.NoError(t, err)
		assert.Equal(t, 1395, b.EncodedContentCount())
		assert.Equal(t, template.MaxBroadcastGSM, b.MaxContentCount())
		assert.False(t, b.ContentTooLong())
	})

	t.Run("pure gsm over the limit", func(t *testing.T) {
		b, err := template.NewBroadcast(broadcastRecord(strings.Repeat("a", 1396)))
		require.NoError(t, err)
		assert.True(t, b.ContentTooLong())
	})

	t.Run("extended gsm counts twice", func(t *testing.T) {
		b, err := template.NewBroadcast(broadcastRecord(strings.Repeat("a", 1394) + "€"))
		require.NoError(t, err)
		assert.Equal(t, 1395, b.ContentCount())
		assert.Equal(t, 1396, b.EncodedContentCount())
		assert.True(t, b.ContentTooLong())
	})

	t.Run("ucs2 at and over the limit", func(t *testing.T) {
		b, err := template.NewBroadcast(broadcastRecord(strings.Repeat("ŵ", 615)))
		require.NoError(t, err)
		assert.Equal(t, 615, b.EncodedContentCount())
		assert.Equal(t, template.MaxBroadcastUCS2, b.MaxContentCount())
		assert.False(t, b.ContentTooLong())

		b, err = template.NewBroadcast(broadcastRecord(strings.Repeat("ŵ", 616)))
		require.NoError(t, err)
		assert.True(t, b.ContentTooLong())
	})
}

func TestBroadcastMessageTooLong(t *testing.T) {
	b, err := template.NewBroadcast(broadcastRecord(strings.Repeat("b", 917) + "((foo))"))
	require.NoError(t, err)

	b.SetValues(map[string]any{"foo": "cc"})
	assert.Equal(t, 919, b.ContentCount())
	assert.True(t, b.IsMessageTooLong())

	b.SetValues(map[string]any{"foo": "c"})
	assert.Equal(t, 918, b.ContentCount())
	assert.False(t, b.IsMessageTooLong())
}

func TestBroadcastNonGSMCharacters(t *testing.T) {
	b, err := template.NewBroadcast(broadcastRecord("Mae'n ŵyl ŷd"))
	require.NoError(t, err)
	assert.Equal(t, []rune{'ŵ', 'ŷ'}, b.NonGSMCharacters())

	b, err = template.NewBroadcast(broadcastRecord("plain text"))
	require.NoError(t, err)
	assert.Empty(t, b.NonGSMCharacters())
}

func TestBroadcastFactories(t *testing.T) {
	t.Run("from content", func(t *testing.T) {
		b := template.BroadcastFromContent("Flooding expected in your area")
		assert.Equal(t, "Flooding expected in your area", b.String())
		assert.Empty(t, b.Placeholders())
	})

	t.Run("from event", func(t *testing.T) {
		b, err := template.BroadcastFromEvent(map[string]any{
			"transmitted_content": map[string]any{"body": "Severe weather warning"},
		})
		require.NoError(t, err)
		assert.Equal(t, "Severe weather warning", b.String())
	})

	t.Run("from event without body", func(t *testing.T) {
		_, err := template.BroadcastFromEvent(map[string]any{})
		assert.ErrorIs(t, err, template.ErrMissingEventBody)
	})
}

func TestBroadcastPreview(t *testing.T) {
	p, err := template.NewBroadcastPreview(broadcastRecord("Stay indoors"))
	require.NoError(t, err)
	assert.Equal(t,
		`<div class="broadcast-message-wrapper"><h2 class="broadcast-message-heading">Emergency alert</h2>Stay indoors</div>`,
		p.String(),
	)
}
