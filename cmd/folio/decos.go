package main

import (
	"fmt"

	"github.com/goccy/go-yaml"
	"github.com/scott-cotton/cli"

	"github.com/folio-lang/folio/deco"
)

func decosRun(cfg *DecosConfig, cc *cli.Context, args []string) error {
	if cfg.Y {
		type entry struct {
			Deco      deco.Decoration `yaml:"deco"`
			Token     string          `yaml:"token"`
			Modifiers []string        `yaml:"modifiers,omitempty"`
		}
		entries := make([]entry, 0, len(deco.Decorations()))
		for _, d := range deco.Decorations() {
			e := entry{Deco: d, Token: string(d.SemanticToken())}
			for _, m := range d.SemanticModifiers() {
				e.Modifiers = append(e.Modifiers, string(m))
			}
			entries = append(entries, e)
		}
		d, err := yaml.Marshal(entries)
		if err != nil {
			return err
		}
		_, err = cc.Out.Write(d)
		return err
	}
	for _, d := range deco.Decorations() {
		if _, err := fmt.Fprintf(cc.Out, "%-16s %s\n", d, d.SemanticToken()); err != nil {
			return err
		}
	}
	return nil
}
