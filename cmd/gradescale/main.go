// Command gradescale prints a grading scale and, given a roster, the
// class results. It applies the same intents as the HTTP API.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"text/tabwriter"

	"github.com/mind-engage/gradescale/internal/config"
	"github.com/mind-engage/gradescale/internal/grading"
	"github.com/mind-engage/gradescale/internal/intent"
	"github.com/mind-engage/gradescale/internal/session"
	"github.com/mind-engage/gradescale/internal/storage"
)

func main() {
	log.SetFlags(0)
	if err := run(context.Background(), os.Args[1:], os.Stdout); err != nil {
		log.Fatalf("gradescale: %v", err)
	}
}

func run(ctx context.Context, args []string, out io.Writer) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	fs := flag.NewFlagSet("gradescale", flag.ContinueOnError)
	points := fs.Uint("points", uint(cfg.MaxPoints), "maximum points of the exam")
	scale := fs.String("scale", cfg.DefaultScale.String(), "ihk, techniker, linear or custom")
	half := fs.Bool("half", false, "half-point thresholds")
	rosterPath := fs.String("roster", "", "name,points CSV of the class")
	exportPath := fs.String("export", "", "write the scale to .csv, .toml or .xlsx")
	var commands []intent.Intent
	fs.Func("c", "command such as ':p 120' (repeatable)", func(s string) error {
		in, err := intent.ParseCommand(s)
		if err != nil {
			return err
		}
		commands = append(commands, in)
		return nil
	})
	if err := fs.Parse(args); err != nil {
		return err
	}

	kind, err := grading.ParseKind(*scale)
	if err != nil {
		return err
	}
	bs, err := storage.NewLocalStore(cfg.ExportPath)
	if err != nil {
		return err
	}
	sess, err := session.New(session.Options{
		Definition: grading.Standard(kind),
		MaxPoints:  float64(*points),
		Store:      bs,
	})
	if err != nil {
		return err
	}

	var intents []intent.Intent
	if *half {
		intents = append(intents, intent.ToggleHalfPoints{})
	}
	if *rosterPath != "" {
		intents = append(intents, intent.LoadRoster{Path: *rosterPath})
	}
	intents = append(intents, commands...)
	if *exportPath != "" {
		intents = append(intents, intent.ExportScale{Path: *exportPath})
	}
	for _, in := range intents {
		if err := sess.Apply(ctx, in); err != nil {
			return err
		}
	}
	return render(out, sess.View())
}

func render(out io.Writer, v session.View) error {
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "Scale %s [%s], %v points\n\n", v.Kind.Text(), v.Kind.KeyBinding(), v.MaxPoints)
	fmt.Fprintln(tw, "Grade\tMin\tMax\tPercent")
	for _, row := range v.Rows {
		fmt.Fprintf(tw, "%s\t%v\t%v\t%.2f%%\n", row.Grade, row.Min, row.Max, row.Percentage*100)
	}
	if v.ClassName != "" {
		fmt.Fprintf(tw, "\nClass %s\n\n", v.ClassName)
		fmt.Fprintln(tw, "Name\tPoints\tPercent\tGrade")
		for _, r := range v.Results {
			fmt.Fprintf(tw, "%s\t%v\t%.2f%%\t%s\n", r.Name, r.Points, r.Percentage*100, r.Grade)
		}
		fmt.Fprintln(tw)
		for i, g := range grading.Grades() {
			fmt.Fprintf(tw, "%s\t%s\t%d\n", g, g.Label(), v.Summary.Counts[i])
		}
		fmt.Fprintf(tw, "Average\t%.2f\n", v.Summary.Average)
	}
	if v.Status != "" {
		fmt.Fprintf(tw, "\n%s\n", v.Status)
	}
	return tw.Flush()
}
