package main

import (
	"fmt"
	"time"

	"github.com/urfave/cli/v2"
	"github.com/wheelibin/huelib/internal/events"
	"github.com/wheelibin/huelib/internal/schedule"
	"github.com/wheelibin/huelib/resource"
)

var schedulesCommand = cli.Command{
	Name:  "schedules",
	Usage: "Manage bridge schedules",
	Subcommands: []*cli.Command{
		{
			Name:  "list",
			Usage: "List all schedules",
			Action: func(c *cli.Context) error {
				b, err := connect()
				if err != nil {
					return err
				}
				schedules, err := b.GetAllSchedules(c.Context)
				if err != nil {
					return err
				}

				w := newTable()
				defer w.Flush()
				fmt.Fprintf(w, "id\tname\tstatus\tlocaltime\tcommand\n")
				for _, s := range schedules {
					fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s %s\n", s.ID, s.Name, s.Status, s.LocalTime, s.Command.Method, s.Command.Address)
				}
				return nil
			},
		},
		{
			Name:      "sun",
			Usage:     "Switch a group at the next sunrise, sunset or clock time",
			ArgsUsage: "<group> <sunrise|sunset[+-offset]|HH:MM>",
			Flags: []cli.Flag{
				&cli.BoolFlag{Name: "off", Usage: "turn the group off instead of on"},
				&cli.StringFlag{Name: "sunrise-min", Usage: "earliest sunrise (HH:MM)"},
				&cli.StringFlag{Name: "sunrise-max", Usage: "latest sunrise (HH:MM)"},
				&cli.StringFlag{Name: "sunset-min", Usage: "earliest sunset (HH:MM)"},
				&cli.StringFlag{Name: "sunset-max", Usage: "latest sunset (HH:MM)"},
			},
			Action: func(c *cli.Context) error {
				pattern := c.Args().Get(1)
				if pattern == "" {
					return fmt.Errorf("time not specified")
				}
				lat, lng, err := cfg.Coordinates()
				if err != nil {
					return err
				}

				b, err := connect()
				if err != nil {
					return err
				}
				group, err := findGroup(c.Context, b, c.Args().First())
				if err != nil {
					return err
				}

				command, err := resource.NewAction(
					fmt.Sprintf("/api/%s/groups/%s/action", b.Username, group),
					resource.ActionMethodPut,
					resource.NewGroupStateModifier().On(!c.Bool("off")),
				)
				if err != nil {
					return err
				}

				bounds := schedule.Bounds{
					SunriseMin: c.String("sunrise-min"),
					SunriseMax: c.String("sunrise-max"),
					SunsetMin:  c.String("sunset-min"),
					SunsetMax:  c.String("sunset-max"),
				}
				srv := schedule.NewScheduleService(logger, lat, lng)
				creator, err := srv.SunSchedule(fmt.Sprintf("huectl %s", pattern), pattern, bounds, time.Now(), command)
				if err != nil {
					return err
				}

				id, err := b.CreateSchedule(c.Context, creator)
				if err != nil {
					return err
				}
				fmt.Printf("created schedule %s at %s\n", id, creator.LocalTime)
				return nil
			},
		},
		{
			Name:      "delete",
			Usage:     "Delete a schedule",
			ArgsUsage: "<id>",
			Action: func(c *cli.Context) error {
				id := c.Args().First()
				if id == "" {
					return fmt.Errorf("schedule not specified")
				}
				b, err := connect()
				if err != nil {
					return err
				}
				return b.DeleteSchedule(c.Context, id)
			},
		},
	},
}

var sensorsCommand = cli.Command{
	Name:  "sensors",
	Usage: "Manage sensors",
	Subcommands: []*cli.Command{
		{
			Name:  "list",
			Usage: "List all sensors",
			Action: func(c *cli.Context) error {
				b, err := connect()
				if err != nil {
					return err
				}
				sensors, err := b.GetAllSensors(c.Context)
				if err != nil {
					return err
				}

				w := newTable()
				defer w.Flush()
				fmt.Fprintf(w, "id\tname\ttype\ton\tbattery\tlastupdated\n")
				for _, s := range sensors {
					battery := "-"
					if s.Config.Battery != nil {
						battery = fmt.Sprintf("%d%%", *s.Config.Battery)
					}
					fmt.Fprintf(w, "%s\t%s\t%s\t%t\t%s\t%s\n", s.ID, s.Name, s.Type, s.Config.On, battery, s.State.LastUpdated)
				}
				return nil
			},
		},
	},
}

var rulesCommand = cli.Command{
	Name:  "rules",
	Usage: "Manage rules",
	Subcommands: []*cli.Command{
		{
			Name:  "list",
			Usage: "List all rules",
			Action: func(c *cli.Context) error {
				b, err := connect()
				if err != nil {
					return err
				}
				rules, err := b.GetAllRules(c.Context)
				if err != nil {
					return err
				}

				w := newTable()
				defer w.Flush()
				fmt.Fprintf(w, "id\tname\tstatus\tconditions\tactions\ttriggered\n")
				for _, r := range rules {
					fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%d\t%d\n", r.ID, r.Name, r.Status, len(r.Conditions), len(r.Actions), r.TimesTriggered)
				}
				return nil
			},
		},
	},
}

var eventsCommand = cli.Command{
	Name:  "events",
	Usage: "Print events from the bridge event stream",
	Action: func(c *cli.Context) error {
		address, username, err := credentials()
		if err != nil {
			return err
		}

		consumer := events.NewEventConsumer(logger, events.StreamURL(address), username)
		return consumer.Subscribe(c.Context, func(e events.Event) {
			for _, d := range e.Data {
				line := fmt.Sprintf("%s %s %s %s", e.CreationTime.Local().Format(time.TimeOnly), e.Type, d.Type, d.ID)
				if d.IDv1 != "" {
					line += " " + d.IDv1
				}
				if d.On != nil {
					line += fmt.Sprintf(" on=%t", d.On.On)
				}
				if d.Dimming != nil {
					line += fmt.Sprintf(" brightness=%.1f", d.Dimming.Brightness)
				}
				if d.Status != "" {
					line += " status=" + d.Status
				}
				fmt.Println(line)
			}
		})
	},
}
