// Command settingfmt parses multi-enum settings given as flags and prints
// their canonical form.
//
//	settingfmt -mysql_datatypes_support_level=" datetime64, decimal" -join_algorithm=hash,auto
//	mysql_datatypes_support_level=decimal,datetime64
//	join_algorithm=hash,auto
package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/evan-idocoding/zsetting/enums"
	"github.com/evan-idocoding/zsetting/setting"
)

type settings struct {
	MySQLDataTypesSupportLevel enums.MySQLDataTypesSupportField
	JoinAlgorithm              enums.JoinAlgorithmField
}

func defaultSettings() settings {
	return settings{
		JoinAlgorithm: setting.NewOrderedMultiEnumField(enums.JoinDirect, enums.JoinParallelHash, enums.JoinHash),
	}
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	lv := new(slog.LevelVar)
	log := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: lv}))

	s := defaultSettings()

	fs := flag.NewFlagSet("settingfmt", flag.ContinueOnError)
	fs.SetOutput(stderr)
	format := fs.String("format", "text", "output format: text, json, toml or yaml")
	changedOnly := fs.Bool("changed", false, "print only settings given on the command line")
	verbose := fs.Bool("v", false, "debug logging")
	fs.Var(&s.MySQLDataTypesSupportLevel, "mysql_datatypes_support_level", "comma-separated MySQL types mapped natively")
	fs.Var(&s.JoinAlgorithm, "join_algorithm", "comma-separated join algorithms, in order of preference")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		log.Error("invalid arguments", "err", err)
		return 2
	}
	if *verbose {
		lv.Set(slog.LevelDebug)
	}
	log.Debug("parsed settings",
		"mysql_datatypes_support_level", s.MySQLDataTypesSupportLevel,
		"join_algorithm", s.JoinAlgorithm,
	)

	if err := write(stdout, *format, s, *changedOnly); err != nil {
		log.Error("write settings", "format", *format, "err", err)
		return 1
	}
	return 0
}

func write(w io.Writer, format string, s settings, changedOnly bool) error {
	switch format {
	case "text":
		if !changedOnly || s.MySQLDataTypesSupportLevel.Changed {
			if _, err := fmt.Fprintf(w, "mysql_datatypes_support_level=%s\n", s.MySQLDataTypesSupportLevel); err != nil {
				return err
			}
		}
		if !changedOnly || s.JoinAlgorithm.Changed {
			if _, err := fmt.Fprintf(w, "join_algorithm=%s\n", s.JoinAlgorithm); err != nil {
				return err
			}
		}
		return nil
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(filter(s, changedOnly))
	case "toml":
		return toml.NewEncoder(w).Encode(filter(s, changedOnly))
	case "yaml":
		enc := yaml.NewEncoder(w)
		if err := enc.Encode(filter(s, changedOnly)); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}

// filter returns the settings to encode, keyed by setting name.
func filter(s settings, changedOnly bool) map[string]any {
	out := make(map[string]any, 2)
	if !changedOnly || s.MySQLDataTypesSupportLevel.Changed {
		out["mysql_datatypes_support_level"] = s.MySQLDataTypesSupportLevel.Any()
	}
	if !changedOnly || s.JoinAlgorithm.Changed {
		out["join_algorithm"] = s.JoinAlgorithm.Any()
	}
	return out
}
