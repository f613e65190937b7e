package main

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/samber/lo"
	"github.com/urfave/cli/v2"
	"github.com/wheelibin/huelib/bridge"
	"github.com/wheelibin/huelib/internal/concurrency"
	"github.com/wheelibin/huelib/internal/constants"
	"github.com/wheelibin/huelib/modifier"
	"github.com/wheelibin/huelib/resource"
)

// parseAdjustment reads "200" as an override, "+20" as an increment and
// "-20" as a decrement.
func parseAdjustment(s string, max int) (modifier.Type, int, error) {
	t := modifier.Override
	digits := s
	switch {
	case strings.HasPrefix(s, "+"):
		t, digits = modifier.Increment, s[1:]
	case strings.HasPrefix(s, "-"):
		t, digits = modifier.Decrement, s[1:]
	}
	v, err := strconv.Atoi(digits)
	if err != nil || v < 0 || v > max {
		return t, 0, fmt.Errorf("invalid value %q, expected 0-%d optionally prefixed with + or -", s, max)
	}
	return t, v, nil
}

var coordinateTypes = map[string]modifier.CoordinateType{
	"set":    modifier.CoordinateOverride,
	"inc":    modifier.CoordinateIncrement,
	"dec":    modifier.CoordinateDecrement,
	"incdec": modifier.CoordinateIncrementDecrement,
	"decinc": modifier.CoordinateDecrementIncrement,
}

func findLight(ctx context.Context, b *bridge.Bridge, query string) (string, error) {
	lights, err := b.GetAllLights(ctx)
	if err != nil {
		return "", err
	}
	return bestMatch(query, lo.Associate(lights, func(l resource.Light) (string, string) { return l.ID, l.Name }))
}

// setLight applies m to the light matching the first argument.
func setLight(c *cli.Context, m *resource.LightStateModifier) error {
	query := c.Args().First()
	if query == "" {
		return fmt.Errorf("light not specified")
	}

	b, err := connect()
	if err != nil {
		return err
	}
	id, err := findLight(c.Context, b, query)
	if err != nil {
		return err
	}

	responses, err := b.SetLightState(c.Context, id, m)
	if err != nil {
		return fmt.Errorf("failed to update light %s: %w", id, err)
	}
	return responses.IntoResult()
}

func switchLights(on bool) cli.ActionFunc {
	return func(c *cli.Context) error {
		m := resource.NewLightStateModifier().On(on)
		if c.IsSet("transition") {
			m.TransitionTime(uint16(c.Uint("transition")))
		}
		if !c.Bool("all") {
			return setLight(c, m)
		}

		b, err := connect()
		if err != nil {
			return err
		}
		lights, err := b.GetAllLights(c.Context)
		if err != nil {
			return err
		}

		worker := concurrency.NewThrottledWorker(constants.CommandInterval, func(ctx context.Context, id string) error {
			responses, err := b.SetLightState(ctx, id, m)
			if err != nil {
				return err
			}
			return responses.IntoResult()
		})
		return worker.Run(c.Context, lo.Map(lights, func(l resource.Light, _ int) string { return l.ID }))
	}
}

var transitionFlag = &cli.UintFlag{
	Name:  "transition",
	Usage: "transition time in multiples of 100ms",
}

var lightsCommand = cli.Command{
	Name:    "lights",
	Aliases: []string{"l"},
	Usage:   "Manage lights",
	Subcommands: []*cli.Command{
		{
			Name:  "list",
			Usage: "List all lights",
			Action: func(c *cli.Context) error {
				b, err := connect()
				if err != nil {
					return err
				}
				lights, err := b.GetAllLights(c.Context)
				if err != nil {
					return err
				}

				w := newTable()
				defer w.Flush()
				fmt.Fprintf(w, "id\tname\ton\tbri\treachable\ttype\n")
				for _, l := range lights {
					bri := "-"
					if l.State.Brightness != nil {
						bri = strconv.Itoa(int(*l.State.Brightness))
					}
					fmt.Fprintf(w, "%s\t%s\t%t\t%s\t%t\t%s\n", l.ID, l.Name, l.State.On, bri, l.State.Reachable, l.Type)
				}
				return nil
			},
		},
		{
			Name:      "on",
			Usage:     "Turn a light on",
			ArgsUsage: "<light>",
			Flags:     []cli.Flag{transitionFlag, &cli.BoolFlag{Name: "all", Usage: "turn every light on"}},
			Action:    switchLights(true),
		},
		{
			Name:      "off",
			Usage:     "Turn a light off",
			ArgsUsage: "<light>",
			Flags:     []cli.Flag{transitionFlag, &cli.BoolFlag{Name: "all", Usage: "turn every light off"}},
			Action:    switchLights(false),
		},
		{
			Name:      "bri",
			Usage:     "Set or adjust the brightness of a light",
			ArgsUsage: "<light> <value|+delta|-delta>",
			Flags:     []cli.Flag{transitionFlag},
			Action: func(c *cli.Context) error {
				t, v, err := parseAdjustment(c.Args().Get(1), 254)
				if err != nil {
					return err
				}
				m := resource.NewLightStateModifier().Brightness(t, uint8(v))
				if c.IsSet("transition") {
					m.TransitionTime(uint16(c.Uint("transition")))
				}
				return setLight(c, m)
			},
		},
		{
			Name:      "color",
			Usage:     "Set or shift the CIE xy color of a light",
			ArgsUsage: "<light> <x> <y>",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:  "mode",
					Value: "set",
					Usage: "one of set, inc, dec, incdec, decinc",
				},
			},
			Action: func(c *cli.Context) error {
				t, ok := coordinateTypes[c.String("mode")]
				if !ok {
					return fmt.Errorf("unknown mode %q", c.String("mode"))
				}
				x, err := strconv.ParseFloat(c.Args().Get(1), 64)
				if err != nil {
					return fmt.Errorf("invalid x: %w", err)
				}
				y, err := strconv.ParseFloat(c.Args().Get(2), 64)
				if err != nil {
					return fmt.Errorf("invalid y: %w", err)
				}
				return setLight(c, resource.NewLightStateModifier().ColorSpaceCoordinates(t, x, y))
			},
		},
		{
			Name:      "rename",
			Usage:     "Rename a light",
			ArgsUsage: "<light> <name>",
			Action: func(c *cli.Context) error {
				name := c.Args().Get(1)
				if name == "" {
					return fmt.Errorf("name not specified")
				}
				b, err := connect()
				if err != nil {
					return err
				}
				id, err := findLight(c.Context, b, c.Args().First())
				if err != nil {
					return err
				}
				responses, err := b.SetLightAttribute(c.Context, id, resource.NewLightAttributeModifier().Name(name))
				if err != nil {
					return err
				}
				return responses.IntoResult()
			},
		},
	},
}
