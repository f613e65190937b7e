package main

import (
	"fmt"
	"time"

	"github.com/urfave/cli/v2"
	"github.com/wheelibin/huelib/bridge"
	"github.com/wheelibin/huelib/internal/constants"
	"github.com/wheelibin/huelib/internal/repos"
)

var discoverCommand = cli.Command{
	Name:  "discover",
	Usage: "Find the bridges on this network",
	Action: func(c *cli.Context) error {
		transport := bridge.NewHTTPTransport(logger, cfg.Timeout)
		addrs, err := bridge.Discover(c.Context, transport, cfg.DiscoveryURL)
		if err != nil {
			return err
		}
		if len(addrs) == 0 {
			fmt.Println("no bridges found")
			return nil
		}
		for _, addr := range addrs {
			fmt.Println(addr)
		}
		return nil
	},
}

var registerCommand = cli.Command{
	Name:      "register",
	Usage:     "Register huectl with a bridge, press the link button first",
	ArgsUsage: "[address]",
	Flags: []cli.Flag{
		&cli.BoolFlag{
			Name:  "clientkey",
			Usage: "also generate an entertainment streaming key",
		},
	},
	Action: func(c *cli.Context) error {
		address := c.Args().First()
		if address == "" {
			address = cfg.BridgeIP
		}
		if address == "" {
			return fmt.Errorf("bridge address not specified")
		}

		transport := bridge.NewHTTPTransport(logger, cfg.Timeout)
		user, err := bridge.RegisterUser(c.Context, transport, address, constants.DeviceType, c.Bool("clientkey"))
		if err != nil {
			return err
		}

		name := ""
		b := bridge.NewWithTransport(address, user.Name, logger, transport)
		if bridgeConfig, err := b.GetConfig(c.Context); err == nil {
			name = bridgeConfig.Name
		} else {
			logger.Warn("unable to read bridge name", "err", err)
		}

		repo, closeRepo, err := openRepo()
		if err != nil {
			return err
		}
		defer closeRepo()
		err = repo.Save(repos.BridgeCredentials{
			Address:        address,
			Username:       user.Name,
			ClientKey:      user.ClientKey,
			Name:           name,
			RegisteredTime: time.Now(),
		})
		if err != nil {
			return err
		}

		fmt.Printf("registered with %s as %s\n", address, user.Name)
		return nil
	},
}

var bridgesCommand = cli.Command{
	Name:  "bridges",
	Usage: "List the bridges huectl is registered with",
	Action: func(c *cli.Context) error {
		repo, closeRepo, err := openRepo()
		if err != nil {
			return err
		}
		defer closeRepo()

		all, err := repo.All()
		if err != nil {
			return err
		}

		w := newTable()
		defer w.Flush()
		fmt.Fprintf(w, "address\tname\tusername\tregistered\tlast used\n")
		for _, b := range all {
			lastUsed := "-"
			if b.LastUsedTime != nil {
				lastUsed = b.LastUsedTime.Local().Format(time.DateTime)
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", b.Address, b.Name, b.Username, b.RegisteredTime.Local().Format(time.DateTime), lastUsed)
		}
		return nil
	},
}

var configCommand = cli.Command{
	Name:  "config",
	Usage: "Show bridge configuration",
	Subcommands: []*cli.Command{
		{
			Name:  "show",
			Usage: "Print the bridge configuration and capacity",
			Action: func(c *cli.Context) error {
				b, err := connect()
				if err != nil {
					return err
				}
				bridgeConfig, err := b.GetConfig(c.Context)
				if err != nil {
					return err
				}
				capabilities, err := b.GetCapabilities(c.Context)
				if err != nil {
					return err
				}

				w := newTable()
				defer w.Flush()
				fmt.Fprintf(w, "name\t%s\n", bridgeConfig.Name)
				fmt.Fprintf(w, "bridge id\t%s\n", bridgeConfig.BridgeID)
				fmt.Fprintf(w, "model\t%s\n", bridgeConfig.ModelID)
				fmt.Fprintf(w, "api version\t%s\n", bridgeConfig.APIVersion)
				fmt.Fprintf(w, "software\t%s\n", bridgeConfig.SoftwareVersion)
				fmt.Fprintf(w, "address\t%s\n", bridgeConfig.IPAddress)
				fmt.Fprintf(w, "zigbee channel\t%d\n", bridgeConfig.ZigbeeChannel)
				fmt.Fprintf(w, "timezone\t%s\n", bridgeConfig.Timezone)
				fmt.Fprintf(w, "lights\t%d available\n", capabilities.Lights.Available)
				fmt.Fprintf(w, "sensors\t%d available\n", capabilities.Sensors.Available)
				fmt.Fprintf(w, "groups\t%d available\n", capabilities.Groups.Available)
				fmt.Fprintf(w, "scenes\t%d available\n", capabilities.Scenes.Available)
				fmt.Fprintf(w, "rules\t%d available\n", capabilities.Rules.Available)
				return nil
			},
		},
	},
}
