package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/maddsua/numrange/config"
	"github.com/maddsua/numrange/env"
	"github.com/maddsua/numrange/numrange"
)

type signError struct {
	value string
}

func (this *signError) Error() string {
	return fmt.Sprintf("sign '%s' must be exactly one character", this.value)
}

type CliFlags struct {
	Debug     *bool
	CfgFile   *string
	LogFmt    *string
	Separator *string
	RangeSign *string
	Sorted    *bool
	SkipEmpty *bool
	Limit     *int
	Set       *string
	Format    *string
}

func main() {

	godotenv.Load()

	cli := CliFlags{
		Debug:     flag.Bool("debug", false, "Show debug logging"),
		CfgFile:   flag.String("config", "", "Set config file path"),
		LogFmt:    flag.String("logfmt", "", "Log format: json|null"),
		Separator: flag.String("sep", "", "Separator sign (default ',')"),
		RangeSign: flag.String("range", "", "Range sign (default '-')"),
		Sorted:    flag.Bool("sorted", false, "Sort values in ascending order"),
		SkipEmpty: flag.Bool("tolerate-empty", false, "Skip blank values between separators instead of failing"),
		Limit:     flag.Int("limit", numrange.DefaultLimit, "Max amount of values per expression; 0 disables the limit"),
		Set:       flag.String("set", "", "Comma separated names of config file sets to print"),
		Format:    flag.String("format", string(FormatLines), "Output format: lines|json|compact"),
	}
	flag.Parse()

	if env.Get("LOG_FMT").ToLower() == "json" || strings.ToLower(*cli.LogFmt) == "json" {
		slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stderr, nil)))
	}

	if *cli.Debug || env.Get("LOG_LEVEL").ToLower() == "debug" {
		slog.SetLogLoggerLevel(slog.LevelDebug)
		slog.Debug("Enabled")
	}

	format, err := ParseOutputFormat(*cli.Format)
	if err != nil {
		slog.Error("Invalid output format",
			slog.String("err", err.Error()))
		os.Exit(1)
	}

	var results []Result

	if *cli.Set != "" {

		cfg := loadConfig(*cli.CfgFile)

		for _, name := range strings.Split(*cli.Set, ",") {

			name = strings.TrimSpace(name)

			values, has := cfg.Resolve(name)
			if !has {
				slog.Error("Set not found in config",
					slog.String("set", name))
				os.Exit(1)
			}

			results = append(results, Result{Name: name, Values: values, cfg: cfg.Parser()})
		}
	}

	if flag.NArg() > 0 || len(results) == 0 {

		parser, err := parserFromCli(cli)
		if err != nil {
			slog.Error("Invalid parser options",
				slog.String("err", err.Error()))
			os.Exit(1)
		}

		if flag.NArg() == 0 {

			if input := env.Get("NUMRANGE_INPUT"); !input.IsEmpty() {

				values, err := input.Ints(parser)
				if err != nil {
					slog.Error("Failed to parse NUMRANGE_INPUT",
						slog.String("err", err.Error()))
					os.Exit(1)
				}

				results = append(results, Result{Input: string(input), Values: values, cfg: parser})
			}
		}

		for _, expr := range flag.Args() {

			values, err := parser.Parse(expr)
			if err != nil {
				slog.Error("Failed to parse expression",
					slog.String("input", expr),
					slog.String("err", err.Error()))
				os.Exit(1)
			}

			results = append(results, Result{Input: expr, Values: values, cfg: parser})
		}
	}

	if len(results) == 0 {
		slog.Error("Nothing to expand: pass expressions as arguments, set NUMRANGE_INPUT or select config sets with -set")
		os.Exit(1)
	}

	if err := WriteResults(os.Stdout, format, results); err != nil {
		slog.Error("Failed to write output",
			slog.String("err", err.Error()))
		os.Exit(1)
	}
}

func loadConfig(path string) *config.Config {

	if path == "" {

		loc, has := config.FindLocation([]string{
			"./numrange.yml",
			"./numrange.json",
			"/etc/numrange/numrange.yml",
		})

		if !has {
			slog.Error("No config file found")
			os.Exit(1)
		}

		path = loc
	}

	slog.Debug("Loading config file",
		slog.String("from", path))

	cfg, err := config.LoadConfigFile(path)
	if err != nil {
		slog.Error("Failed to load config file",
			slog.String("err", err.Error()))
		os.Exit(1)
	}

	return cfg
}

// parserFromCli picks signs from flags first, then from NUMRANGE_SEPARATOR and NUMRANGE_RANGE_SIGN
func parserFromCli(cli CliFlags) (numrange.Config, error) {

	builder := numrange.NewBuilder().
		Limit(*cli.Limit).
		Sorted(*cli.Sorted || env.Get("NUMRANGE_SORTED").IsTrue()).
		TolerateEmpty(*cli.SkipEmpty || env.Get("NUMRANGE_TOLERATE_EMPTY").IsTrue())

	if sign, err := pickSign(*cli.Separator, "NUMRANGE_SEPARATOR"); err != nil {
		return numrange.Config{}, err
	} else if sign != 0 {
		builder.SeparatorSign(sign)
	}

	if sign, err := pickSign(*cli.RangeSign, "NUMRANGE_RANGE_SIGN"); err != nil {
		return numrange.Config{}, err
	} else if sign != 0 {
		builder.RangeSign(sign)
	}

	return builder.Build()
}

func pickSign(flagVal string, envKey string) (rune, error) {

	val := env.Value(flagVal)
	if val.IsEmpty() {
		val = env.Get(envKey)
	}

	if val.IsEmpty() {
		return 0, nil
	}

	sign, ok := val.Rune()
	if !ok {
		return 0, &signError{value: string(val)}
	}

	return sign, nil
}
