package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"utilkit/deep"
	"utilkit/format"
	"utilkit/query"
	"utilkit/randstr"
	"utilkit/textutil"
	"utilkit/uuidutil"
)

// runner executes commands and renders their results.
type runner struct {
	out    io.Writer
	format string
	logger *zap.Logger
}

func (r *runner) dispatch(cmd string, args []string) error {
	r.logger.Debug("running command", zap.String("command", cmd), zap.Int("args", len(args)))

	switch cmd {
	case "bytes":
		return r.withNumber(args, func(v float64) error { return r.text(format.BytesToHuman(v)) })
	case "phone":
		return r.withText(args, format.Phone)
	case "lat":
		return r.withNumber(args, func(v float64) error { return r.text(format.Latitude(v)) })
	case "lon":
		return r.withNumber(args, func(v float64) error { return r.text(format.Longitude(v)) })
	case "random":
		return r.random(args)
	case "normalize":
		return r.withText(args, textutil.Normalize)
	case "fold":
		return r.withText(args, textutil.Fold)
	case "title":
		return r.withText(args, textutil.TitleCaseWords)
	case "uuid":
		return r.uuid(args)
	case "query":
		return r.withArg(args, func(raw string) error { return r.structured(query.Parse(raw)) })
	case "merge", "diff", "equal":
		return r.compare(cmd, args)
	case "tree":
		return r.tree(args)
	default:
		return fmt.Errorf("%w: unknown command %q", errUsage, cmd)
	}
}

func (r *runner) withArg(args []string, fn func(string) error) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: expected one argument, got %d", errUsage, len(args))
	}
	return fn(args[0])
}

func (r *runner) withText(args []string, fn func(string) string) error {
	return r.withArg(args, func(s string) error { return r.text(fn(s)) })
}

func (r *runner) withNumber(args []string, fn func(float64) error) error {
	return r.withArg(args, func(s string) error {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return fmt.Errorf("%w: %q is not a number", errUsage, s)
		}
		return fn(v)
	})
}

func (r *runner) random(args []string) error {
	fs := flag.NewFlagSet("random", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	unique := fs.Bool("unique", false, "disallow repeated characters")
	alphabet := fs.String("alphabet", "", "literal alphabet instead of named sets")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", errUsage, err)
	}

	rest := fs.Args()
	if len(rest) == 0 || len(rest) > 2 {
		return fmt.Errorf("%w: random LENGTH [SETS]", errUsage)
	}
	length, err := strconv.Atoi(rest[0])
	if err != nil {
		return fmt.Errorf("%w: %q is not a length", errUsage, rest[0])
	}

	var s string
	if *alphabet != "" {
		s, err = randstr.GenerateFrom(length, *alphabet, !*unique)
	} else {
		sets := []string{randstr.SetLetters, randstr.SetDigits}
		if len(rest) == 2 {
			sets = strings.Split(rest[1], ",")
		}
		s, err = randstr.Generate(length, sets, !*unique)
	}
	if err != nil {
		return err
	}
	return r.text(s)
}

func (r *runner) uuid(args []string) error {
	if len(args) == 1 && args[0] == "new" {
		return r.text(uuidutil.NewCompact())
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: uuid add|strip|canonical S", errUsage)
	}

	switch args[0] {
	case "add":
		return r.text(uuidutil.AddDashes(args[1]))
	case "strip":
		return r.text(uuidutil.StripDashes(args[1]))
	case "canonical":
		s, err := uuidutil.Canonical(args[1])
		if err != nil {
			return err
		}
		return r.text(s)
	default:
		return fmt.Errorf("%w: unknown uuid action %q", errUsage, args[0])
	}
}

func (r *runner) compare(cmd string, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("%w: %s A B", errUsage, cmd)
	}
	a, err := loadDocument(args[0])
	if err != nil {
		return err
	}
	b, err := loadDocument(args[1])
	if err != nil {
		return err
	}
	r.logger.Debug("loaded documents", zap.Int("keysA", len(a)), zap.Int("keysB", len(b)))

	switch cmd {
	case "merge":
		return r.structured(deep.Combine(a, b))
	case "diff":
		return r.structured(deep.Diff(a, b))
	default:
		return r.text(strconv.FormatBool(deep.Equal(a, b)))
	}
}

func (r *runner) tree(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: tree FILE", errUsage)
	}
	pairs, err := loadPairs(args[0])
	if err != nil {
		return err
	}
	return r.structured(query.PathToTree(pairs))
}

func (r *runner) text(s string) error {
	_, err := fmt.Fprintln(r.out, s)
	return err
}

// structured renders v as JSON or YAML. Both encoders sort mapping keys.
func (r *runner) structured(v any) error {
	if r.format == "yaml" {
		enc := yaml.NewEncoder(r.out)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	}
	enc := json.NewEncoder(r.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
