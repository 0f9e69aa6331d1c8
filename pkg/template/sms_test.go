package template_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/notifykit/pkg/template"
)

func smsRecord(content string) template.Record {
	return template.Record{Type: template.TypeSMS, Content: content}
}

func TestSMSMessageRendering(t *testing.T) {
	t.Run("substitutes values", func(t *testing.T) {
		msg, err := template.NewSMSMessage(smsRecord("Hi ((name))"))
		require.NoError(t, err)
		msg.SetValues(map[string]any{"name": "Jo"})
		assert.Equal(t, "Hi Jo", msg.String())
	})

	t.Run("missing values render as plain markers", func(t *testing.T) {
		msg, err := template.NewSMSMessage(smsRecord("Hi ((name))"))
		require.NoError(t, err)
		msg.SetValues(map[string]any{"other": "x"})
		assert.Equal(t, "Hi ((name))", msg.String())
	})

	t.Run("prefix prepended with separator", func(t *testing.T) {
		msg, err := template.NewSMSMessage(smsRecord("hello"), template.WithPrefix("Sample"))
		require.NoError(t, err)
		assert.Equal(t, "Sample: hello", msg.String())
	})

	t.Run("downgrades to gsm", func(t *testing.T) {
		msg, err := template.NewSMSMessage(smsRecord("Open 9am – 5pm…"))
		require.NoError(t, err)
		assert.Equal(t, "Open 9am - 5pm...", msg.String())
	})

	t.Run("whitespace collapsed and newlines capped", func(t *testing.T) {
		msg, err := template.NewSMSMessage(smsRecord("a  b\n\n\n\nc\t d "))
		require.NoError(t, err)
		assert.Equal(t, "a b\n\nc d", msg.String())
	})
}

func TestSMSMessageCounting(t *testing.T) {
	t.Run("content count includes prefix", func(t *testing.T) {
		msg, err := template.NewSMSMessage(smsRecord("hello"), template.WithPrefix("Sample"))
		require.NoError(t, err)
		assert.Equal(t, 13, msg.ContentCount())
		assert.Equal(t, 5, msg.ContentCountWithoutPrefix())
	})

	t.Run("empty message", func(t *testing.T) {
		msg, err := template.NewSMSMessage(smsRecord(""))
		require.NoError(t, err)
		assert.True(t, msg.IsMessageEmpty())

		msg, err = template.NewSMSMessage(smsRecord("hi"))
		require.NoError(t, err)
		assert.False(t, msg.IsMessageEmpty())
	})

	t.Run("too long over 918 characters", func(t *testing.T) {
		msg, err := template.NewSMSMessage(smsRecord(strings.Repeat("a", 919)))
		require.NoError(t, err)
		assert.True(t, msg.IsMessageTooLong())

		msg, err = template.NewSMSMessage(smsRecord(strings.Repeat("a", 918)))
		require.NoError(t, err)
		assert.False(t, msg.IsMessageTooLong())
	})
}

func TestSMSFragmentCount(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		expected int
	}{
		{name: "empty", content: "", expected: 0},
		{name: "one gsm fragment", content: strings.Repeat("a", 160), expected: 1},
		{name: "two gsm fragments", content: strings.Repeat("a", 161), expected: 2},
		{name: "extended gsm not double counted", content: "€" + strings.Repeat("a", 159), expected: 1},
		{name: "extended gsm over the boundary", content: "€" + strings.Repeat("a", 160), expected: 2},
		{name: "one ucs2 fragment", content: strings.Repeat("ŵ", 70), expected: 1},
		{name: "two ucs2 fragments", content: strings.Repeat("ŵ", 71), expected: 2},
		{name: "long gsm uses 153 per fragment", content: strings.Repeat("a", 307), expected: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg, err := template.NewSMSMessage(smsRecord(tt.content))
			require.NoError(t, err)
			assert.Equal(t, tt.expected, msg.FragmentCount())
		})
	}
}

func TestSMSFragmentCountMonotonic(t *testing.T) {
	previous := 0
	for n := 1; n <= 500; n += 7 {
		msg, err := template.NewSMSMessage(smsRecord(strings.Repeat("a", n)))
		require.NoError(t, err)
		count := msg.FragmentCount()
		assert.GreaterOrEqual(t, count, previous, "length %d", n)
		previous = count
	}
}

func TestSMSBodyPreview(t *testing.T) {
	t.Run("redacts missing personalisation", func(t *testing.T) {
		preview, err := template.NewSMSBodyPreview(smsRecord("Hi ((name))"))
		require.NoError(t, err)
		assert.Equal(t, "Hi [hidden]", preview.String())
	})

	t.Run("escapes substituted values", func(t *testing.T) {
		preview, err := template.NewSMSBodyPreview(smsRecord("Hi ((name))"))
		require.NoError(t, err)
		preview.SetValues(map[string]any{"name": "<b>Jo</b>"})
		assert.Equal(t, "Hi &lt;b&gt;Jo&lt;/b&gt;", preview.String())
	})
}

func TestSMSPreview(t *testing.T) {
	t.Run("wraps message with sender", func(t *testing.T) {
		preview, err := template.NewSMSPreview(smsRecord("Hello\nworld"), template.WithSender("GOVUK"))
		require.NoError(t, err)
		assert.Equal(t,
			`<div class="sms-message-wrapper"><span class="sms-message-sender">GOVUK</span>Hello<br>world</div>`,
			preview.String(),
		)
	})

	t.Run("downgrade can be disabled", func(t *testing.T) {
		preview, err := template.NewSMSPreview(smsRecord("“quoted”"))
		require.NoError(t, err)
		assert.Contains(t, preview.String(), `"quoted"`)

		preview, err = template.NewSMSPreview(smsRecord("“quoted”"), template.WithoutDowngrade())
		require.NoError(t, err)
		assert.Contains(t, preview.String(), "“quoted”")
	})

	t.Run("redacted personalisation", func(t *testing.T) {
		preview, err := template.NewSMSPreview(smsRecord("Hi ((name))"), template.WithRedactedPersonalisation())
		require.NoError(t, err)
		assert.Contains(t, preview.String(), "<span class='placeholder-redacted'>hidden</span>")
	})
}
