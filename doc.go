// Package notifykit provides the building blocks for a multi-channel
// notification service: template rendering, personalisation, recipient
// parsing and validation.
//
// The library is organised as independent packages under pkg/, each
// covering one concern:
//
//   - pkg/template: SMS, email, letter and broadcast templates with
//     ((placeholder)) substitution, previews and channel limits
//   - pkg/field: the placeholder grammar, substitution and redaction
//   - pkg/markdown: email and letter Markdown rendering
//   - pkg/charset: GSM 03.38 downgrade and character counting
//   - pkg/recipients: bulk-send CSV parsing and per-row validation
//   - pkg/validate: phone number, email address and postcode checks
//   - pkg/postal: postal address normalisation and postage
//   - pkg/countries: country name lookup and postage zones
//   - pkg/insensitive: case and punctuation insensitive keying
//   - pkg/pipeline: string transform composition
//   - pkg/config: environment-backed service limits
//
// Basic Usage:
//
//	record, err := template.RecordFromMap(map[string]any{
//		"template_type": "sms",
//		"content":       "Hi ((name)), your code is ((code))",
//	})
//	if err != nil {
//		return err
//	}
//
//	msg, err := template.NewSMSMessage(record)
//	if err != nil {
//		return err
//	}
//	msg.SetValues(map[string]any{"name": "Jo", "code": "1234"})
//
//	body := msg.String()
//	fragments := msg.FragmentCount()
//
// Bulk sends pair a template with uploaded CSV data:
//
//	sheet := recipients.New(rawCSV, msg)
//	if sheet.HasErrors() {
//		// surface sheet.InitialRowsWithErrors() to the uploader
//	}
//
// Packages do not depend on any transport or storage. Callers wire the
// rendered output into their own delivery pipeline.
package notifykit
