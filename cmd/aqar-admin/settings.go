package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/Muhamedyehya/aqar-admin/internal/bootstrap"
	"github.com/Muhamedyehya/aqar-admin/internal/domain/model"
)

func runSettingsShow(cmdCtx *commandContext, _ []string) error {
	return withConsole(cmdCtx, func(c *bootstrap.Console) error {
		if err := c.Admin.LoadSettings(cmdCtx.Ctx); err != nil {
			return err
		}
		return printSettings(cmdCtx, c.Admin.State().Settings)
	})
}

func printSettings(cmdCtx *commandContext, s model.Settings) error {
	if err := writef(cmdCtx.Out, "Hero title:    %s\n", dash(s.HeroTitle)); err != nil {
		return err
	}
	return writef(cmdCtx.Out, "Hero subtitle: %s\n", dash(s.HeroSubtitle))
}

func parseSettingsSaveFlags(args []string) (map[string]string, error) {
	fs := flag.NewFlagSet("settings-save", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	title := fs.String("hero-title", "", "Hero title")
	subtitle := fs.String("hero-subtitle", "", "Hero subtitle")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	fields := make(map[string]string)
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "hero-title":
			fields[model.FieldHeroTitle] = *title
		case "hero-subtitle":
			fields[model.FieldHeroSubtitle] = *subtitle
		}
	})
	if len(fields) == 0 {
		return nil, errors.New("at least one of --hero-title or --hero-subtitle is required")
	}
	return fields, nil
}

func runSettingsSave(cmdCtx *commandContext, args []string) error {
	fields, err := parseSettingsSaveFlags(args)
	if err != nil {
		return err
	}

	return withConsole(cmdCtx, func(c *bootstrap.Console) error {
		// the record is saved wholesale, so start from the current one
		if err := c.Admin.LoadSettings(cmdCtx.Ctx); err != nil {
			return fmt.Errorf("load current settings: %w", err)
		}
		for _, name := range []string{model.FieldHeroTitle, model.FieldHeroSubtitle} {
			if v, ok := fields[name]; ok {
				if err := c.Admin.UpdateSettingsField(name, v); err != nil {
					return err
				}
			}
		}
		saveErr := c.Admin.SaveSettings(cmdCtx.Ctx)
		if err := printMessage(cmdCtx, c.Admin.State().Message); err != nil {
			return err
		}
		if saveErr != nil {
			return saveErr
		}
		return printSettings(cmdCtx, c.Admin.State().Settings)
	})
}
