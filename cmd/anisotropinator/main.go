package main

import (
	"errors"
	"fmt"
	"io/ioutil"
	"log"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/bodgit/anisotropy"
	"github.com/bodgit/anisotropy/preview"
	"github.com/urfave/cli/v2"
)

const description = `Converts an anisotropy texture between encodings and writes the result
next to the input as <inputfile>.<outputEncoding>.png, always an 8-bit three
channel PNG.

Encodings:
   3channel2   x,y direction and strength signed around 128 (legacy)
   3channel    x,y direction and strength
   2D          x,y vector with strength encoded as its magnitude
   angle       direction as an angle and strength`

func init() {
	cli.VersionFlag = &cli.BoolFlag{
		Name:    "version",
		Aliases: []string{"V"},
		Usage:   "print the version",
	}
}

func newLogger(c *cli.Context) *log.Logger {
	logger := log.New(ioutil.Discard, "", 0)
	if c.Bool("verbose") {
		logger.SetOutput(os.Stderr)
	}
	return logger
}

func openHistory(c *cli.Context) (*anisotropy.History, error) {
	if c.String("db") == "" {
		return nil, nil
	}
	return anisotropy.NewHistory(c.String("db"))
}

func writePreview(a *anisotropy.Converter, output string, encoding anisotropy.Encoding) (string, error) {
	b, err := a.Load(output, encoding)
	if err != nil {
		return "", err
	}

	file := strings.TrimSuffix(output, ".png") + ".preview.png"
	f, err := os.Create(file)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if err := preview.Encode(f, b); err != nil {
		return "", err
	}

	return file, nil
}

func convert(c *cli.Context) error {
	if c.NArg() != 3 {
		return cli.ShowAppHelp(c)
	}

	from, err := anisotropy.ParseEncoding(c.Args().Get(1))
	if err != nil {
		return cli.ShowAppHelp(c)
	}

	to, err := anisotropy.ParseEncoding(c.Args().Get(2))
	if err != nil {
		return cli.ShowAppHelp(c)
	}

	history, err := openHistory(c)
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	if history != nil {
		defer history.Close()
	}

	a := anisotropy.New(history, newLogger(c))

	output, err := a.ConvertFile(c.Args().First(), from, to)
	if err != nil {
		var ue *anisotropy.UnsupportedError
		if errors.As(err, &ue) {
			fmt.Printf("Unsupported conversion from %s to %s\n", c.Args().Get(1), c.Args().Get(2))
			return nil
		}
		return cli.NewExitError(err, 1)
	}
	fmt.Println(output)

	if c.Bool("preview") {
		file, err := writePreview(a, output, to)
		if err != nil {
			return cli.NewExitError(err, 1)
		}
		fmt.Println(file)
	}

	return nil
}

func main() {
	app := cli.NewApp()

	app.Name = "anisotropinator"
	app.Usage = "Anisotropy texture encoding converter"
	app.UsageText = "anisotropinator [global options] <inputfile> <inputEncoding> <outputEncoding>"
	app.Description = description
	app.Version = "1.0.0"

	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "db",
			EnvVars: []string{"ANISOTROPY_DB"},
			Usage:   "path to conversion history database",
		},
		&cli.BoolFlag{
			Name:  "preview",
			Usage: "also write a false colour preview of the output",
		},
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"v"},
			Usage:   "increase verbosity",
		},
	}

	app.Action = convert

	app.Commands = []*cli.Command{
		{
			Name:        "history",
			Usage:       "List previous conversions",
			Description: "",
			Action: func(c *cli.Context) error {
				history, err := openHistory(c)
				if err != nil {
					return cli.NewExitError(err, 1)
				}
				if history == nil {
					return cli.NewExitError("no history database, set --db", 1)
				}
				defer history.Close()

				entries, err := history.Entries()
				if err != nil {
					return cli.NewExitError(err, 1)
				}

				w := tabwriter.NewWriter(os.Stdout, 0, 8, 1, ' ', 0)
				for _, e := range entries {
					fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%dx%d\t%s\n", e.ID, e.Input, e.From, e.To, e.Output, e.Width, e.Height, e.SHA1)
				}
				return w.Flush()
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
