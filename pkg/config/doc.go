// Package config loads the notification core's tunable limits from the
// environment.
//
// Limits carries the policy numbers the rendering and validation packages
// take as parameters: the recipient file row cap, the email size cap, the
// SMS character cap and the preview listing bounds. Each has a default
// matching production behaviour, so a zero-configuration process behaves
// the same as a fully configured one:
//
//	var limits config.Limits
//	config.MustLoad(&limits)
//	c := recipients.New(data, tpl, recipients.WithMaxRows(limits.MaxCSVRows))
//
// Parsing is delegated to github.com/caarlos0/env with a .env file read via
// github.com/joho/godotenv when one exists. Each struct type parses once
// per process and is cached.
package config
