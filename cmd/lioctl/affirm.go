package main

import (
	"fmt"

	"github.com/lioapp/lio-api/internal/app"
	"github.com/lioapp/lio-api/internal/domain"
)

// AffirmCmd generates affirmations through the pipeline, personalized with
// the user's profile when --user is given.
type AffirmCmd struct {
	Count int    `help:"Number of affirmations." default:"5"`
	User  string `help:"User whose profile personalizes the prompt."`
}

func (c *AffirmCmd) Validate() error {
	if c.Count < 1 || c.Count > 20 {
		return fmt.Errorf("--count must be between 1 and 20")
	}
	return nil
}

func (c *AffirmCmd) Run(ctx *Context) error {
	return withApp(ctx, func(a *app.App) error {
		var profile domain.UserProfile
		if c.User != "" {
			profile = a.Profiles.Get(ctx, c.User)
		}

		var batch []domain.Affirmation
		if c.Count == 1 {
			batch = []domain.Affirmation{a.Pipeline.GenerateSingle(ctx, profile)}
		} else {
			batch = a.Pipeline.GenerateBatch(ctx, profile, c.Count)
		}

		if ctx.JSON {
			return writeJSON(ctx.Out, batch)
		}
		for _, item := range batch {
			if _, err := fmt.Fprintln(ctx.Out, item.Text); err != nil {
				return err
			}
		}
		return nil
	})
}
