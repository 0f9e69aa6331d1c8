// Package template renders stored notification templates for dispatch and
// for on-screen previews.
//
// A stored template is a Record with a Type of sms, email, letter or
// broadcast. Each channel has a family of rendering types wrapping a
// Record plus personalisation values:
//
//	r, _ := template.RecordFromMap(doc)
//	msg, err := template.NewSMSMessage(r, template.WithPrefix("My service"))
//	msg.SetValues(map[string]any{"name": "Alice"})
//	body := msg.String()
//
// SMS and broadcast types expose the counting predicates downstream send
// decisions need (fragment counts, content counts, too-long flags). Email
// exposes the HTML document, the plain-text alternative, the preheader and
// a byte-size policy. Letter assembles the address block from the values,
// derives postage from the destination country, and renders preview, print
// and page-image variants.
//
// Every type reports Placeholders, MissingData and AdditionalData, and can
// be diffed against an earlier version with DiffFrom.
package template
