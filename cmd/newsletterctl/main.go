// Copyright 2026 Pressbox, Inc.
// This software is released under an MIT/X11 open source license.

// Package newsletterctl provides a command-line client for the
// newsletter REST service.
package main

import (
	"fmt"
	"strconv"

	"github.com/satori/go.uuid"
	"github.com/urfave/cli"

	"github.com/pressbox/go-newsletter/restclient"
	"github.com/pressbox/go-newsletter/restdata"
)

var client *restclient.Client

func parseID(c *cli.Context) (int, error) {
	if c.NArg() != 1 {
		return 0, cli.NewExitError("expected exactly one newsletter id", 1)
	}
	id, err := strconv.Atoi(c.Args().First())
	if err != nil {
		return 0, cli.NewExitError("newsletter id must be a number", 1)
	}
	return id, nil
}

var list = cli.Command{
	Name:  "list",
	Usage: "list all newsletters",
	Action: func(c *cli.Context) error {
		newsletters, err := client.Newsletters()
		if err != nil {
			return err
		}
		for _, n := range newsletters {
			fmt.Printf("%s\t%s\t%s\n",
				n.Links["self"],
				n.PublishedAt.Format("2006-01-02"),
				n.Title)
		}
		return nil
	},
}

var get = cli.Command{
	Name:      "get",
	Usage:     "show one newsletter in full",
	ArgsUsage: "id",
	Action: func(c *cli.Context) error {
		id, err := parseID(c)
		if err != nil {
			return err
		}
		n, err := client.Newsletter(id)
		if err != nil {
			return err
		}
		fmt.Printf("id:\t%d\ntitle:\t%s\npublished:\t%s\n",
			n.ID, n.Title, n.PublishedAt.Format("2006-01-02 15:04:05"))
		if n.EditedAt != nil {
			fmt.Printf("edited:\t%s\n", n.EditedAt.Format("2006-01-02 15:04:05"))
		}
		fmt.Printf("\n%s\n", n.Body)
		return nil
	},
}

var create = cli.Command{
	Name:  "create",
	Usage: "create a newsletter",
	Flags: []cli.Flag{
		cli.StringFlag{
			Name:  "title",
			Usage: "newsletter title",
		},
		cli.StringFlag{
			Name:  "body",
			Usage: "newsletter body text",
		},
	},
	Action: func(c *cli.Context) error {
		n, err := client.Create(restdata.Fields{
			"title": c.String("title"),
			"body":  c.String("body"),
		})
		if err != nil {
			return err
		}
		fmt.Printf("created %s\n", n.Links["self"])
		return nil
	},
}

var update = cli.Command{
	Name:      "update",
	Usage:     "change the title or body of a newsletter",
	ArgsUsage: "id",
	Flags: []cli.Flag{
		cli.StringFlag{
			Name:  "title",
			Usage: "new newsletter title",
		},
		cli.StringFlag{
			Name:  "body",
			Usage: "new newsletter body text",
		},
	},
	Action: func(c *cli.Context) error {
		id, err := parseID(c)
		if err != nil {
			return err
		}
		fields := restdata.Fields{}
		if c.IsSet("title") {
			fields["title"] = c.String("title")
		}
		if c.IsSet("body") {
			fields["body"] = c.String("body")
		}
		n, err := client.Update(id, fields)
		if err != nil {
			return err
		}
		fmt.Printf("updated %s\n", n.Links["self"])
		return nil
	},
}

var destroy = cli.Command{
	Name:      "delete",
	Usage:     "delete a newsletter",
	ArgsUsage: "id",
	Action: func(c *cli.Context) error {
		id, err := parseID(c)
		if err != nil {
			return err
		}
		message, err := client.Destroy(id)
		if err != nil {
			return err
		}
		fmt.Println(message)
		return nil
	},
}

var seed = cli.Command{
	Name:  "seed",
	Usage: "populate the server with sample newsletters",
	Flags: []cli.Flag{
		cli.IntFlag{
			Name:  "count",
			Value: 5,
			Usage: "number of newsletters to create",
		},
	},
	Action: func(c *cli.Context) error {
		count := c.Int("count")
		for i := 1; i <= count; i++ {
			n, err := client.Create(restdata.Fields{
				"title": fmt.Sprintf("Sample newsletter %d", i),
				"body":  fmt.Sprintf("Body text for sample newsletter %s.", uuid.NewV4()),
			})
			if err != nil {
				return err
			}
			fmt.Printf("created %s\n", n.Links["self"])
		}
		return nil
	},
}

func main() {
	app := cli.NewApp()
	app.Usage = "manage newsletters on a running newsletter server"
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "url",
			Value: "http://localhost:5980/",
			Usage: "base URL of the newsletter server",
		},
	}
	app.Commands = []cli.Command{
		list,
		get,
		create,
		update,
		destroy,
		seed,
	}
	app.Before = func(c *cli.Context) (err error) {
		client, err = restclient.New(c.GlobalString("url"))
		return
	}
	app.RunAndExitOnError()
}
