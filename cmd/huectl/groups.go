package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/samber/lo"
	"github.com/urfave/cli/v2"
	"github.com/wheelibin/huelib/bridge"
	"github.com/wheelibin/huelib/resource"
)

func findGroup(ctx context.Context, b *bridge.Bridge, query string) (string, error) {
	// group 0 holds every light and is not listed by the bridge
	if query == "0" || query == "all" {
		return "0", nil
	}
	groups, err := b.GetAllGroups(ctx)
	if err != nil {
		return "", err
	}
	return bestMatch(query, lo.Associate(groups, func(g resource.Group) (string, string) { return g.ID, g.Name }))
}

func setGroup(c *cli.Context, query string, m *resource.GroupStateModifier) error {
	if query == "" {
		return fmt.Errorf("group not specified")
	}
	b, err := connect()
	if err != nil {
		return err
	}
	id, err := findGroup(c.Context, b, query)
	if err != nil {
		return err
	}
	responses, err := b.SetGroupState(c.Context, id, m)
	if err != nil {
		return fmt.Errorf("failed to update group %s: %w", id, err)
	}
	return responses.IntoResult()
}

var groupsCommand = cli.Command{
	Name:    "groups",
	Aliases: []string{"g"},
	Usage:   "Manage rooms, zones and other groups",
	Subcommands: []*cli.Command{
		{
			Name:  "list",
			Usage: "List all groups",
			Action: func(c *cli.Context) error {
				b, err := connect()
				if err != nil {
					return err
				}
				groups, err := b.GetAllGroups(c.Context)
				if err != nil {
					return err
				}

				w := newTable()
				defer w.Flush()
				fmt.Fprintf(w, "id\tname\ttype\tany on\tlights\n")
				for _, g := range groups {
					fmt.Fprintf(w, "%s\t%s\t%s\t%t\t%s\n", g.ID, g.Name, g.Type, g.State.AnyOn, strings.Join(g.Lights, ","))
				}
				return nil
			},
		},
		{
			Name:      "on",
			Usage:     "Turn every light in a group on",
			ArgsUsage: "<group>",
			Action: func(c *cli.Context) error {
				return setGroup(c, c.Args().First(), resource.NewGroupStateModifier().On(true))
			},
		},
		{
			Name:      "off",
			Usage:     "Turn every light in a group off",
			ArgsUsage: "<group>",
			Action: func(c *cli.Context) error {
				return setGroup(c, c.Args().First(), resource.NewGroupStateModifier().On(false))
			},
		},
	},
}

var scenesCommand = cli.Command{
	Name:    "scenes",
	Aliases: []string{"s"},
	Usage:   "Manage scenes",
	Subcommands: []*cli.Command{
		{
			Name:  "list",
			Usage: "List all scenes",
			Action: func(c *cli.Context) error {
				b, err := connect()
				if err != nil {
					return err
				}
				scenes, err := b.GetAllScenes(c.Context)
				if err != nil {
					return err
				}

				w := newTable()
				defer w.Flush()
				fmt.Fprintf(w, "id\tname\ttype\tgroup\tlights\n")
				for _, s := range scenes {
					fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", s.ID, s.Name, s.Type, s.Group, strings.Join(s.Lights, ","))
				}
				return nil
			},
		},
		{
			Name:      "recall",
			Usage:     "Recall a scene",
			ArgsUsage: "<scene>",
			Action: func(c *cli.Context) error {
				query := c.Args().First()
				if query == "" {
					return fmt.Errorf("scene not specified")
				}
				b, err := connect()
				if err != nil {
					return err
				}
				scenes, err := b.GetAllScenes(c.Context)
				if err != nil {
					return err
				}
				id, err := bestMatch(query, lo.Associate(scenes, func(s resource.Scene) (string, string) { return s.ID, s.Name }))
				if err != nil {
					return err
				}

				// group scenes are recalled on their own group, others on group 0
				scene, _ := lo.Find(scenes, func(s resource.Scene) bool { return s.ID == id })
				group := "0"
				if scene.Group != "" {
					group = scene.Group
				}
				responses, err := b.SetGroupState(c.Context, group, resource.NewGroupStateModifier().Scene(id))
				if err != nil {
					return err
				}
				return responses.IntoResult()
			},
		},
	},
}
