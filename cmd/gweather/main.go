package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"
	"sort"

	"github.com/joho/godotenv"

	"github.com/swelljoe/gweather/internal/config"
	"github.com/swelljoe/gweather/internal/logging"
	"github.com/swelljoe/gweather/internal/weather"
)

func main() {
	// Optional .env for local development; real env vars win.
	_ = godotenv.Load()

	unitFlag := flag.String("unit", "", `preferred degree unit: "c" or "f" (anything else means f)`)
	langFlag := flag.String("lang", "", "language code forwarded to the feed")
	jsonOut := flag.Bool("json", false, "print the report as JSON")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: gweather [flags] <location>")
		flag.PrintDefaults()
		os.Exit(2)
	}
	location := flag.Arg(0)

	cfg, err := config.LoadFromEnv()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	logger := logging.New(cfg, "gweather")

	if *langFlag == "" {
		*langFlag = cfg.Language
	}
	if *unitFlag == "" {
		*unitFlag = cfg.Unit
	}

	client := weather.NewClient()
	client.BaseURL = cfg.BaseURL
	client.HTTPClient.Timeout = cfg.HTTPTimeout

	svc := weather.NewService(client, logger)
	settings := weather.Settings{
		Unit:     weather.ParseUnit(*unitFlag),
		Language: *langFlag,
	}

	report, err := svc.GetWeather(context.Background(), location, settings)
	if err != nil {
		var ve *weather.ValidationError
		if errors.As(err, &ve) {
			logger.Error("feed response malformed", "location", location, "error", err)
		} else {
			logger.Error("weather lookup failed", "location", location, "error", err)
		}
		os.Exit(1)
	}

	if *jsonOut {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(report); err != nil {
			logger.Error("encode report", "error", err)
			os.Exit(1)
		}
		return
	}

	printReport(report, settings.Unit)
}

func printReport(r *weather.Report, unit weather.Unit) {
	suffix := "F"
	if unit == weather.Celsius {
		suffix = "C"
	}

	if r.Info.Zip != "" {
		fmt.Printf("%s (%s)\n", r.Info.City, r.Info.Zip)
	} else {
		fmt.Println(r.Info.City)
	}
	fmt.Printf("Now: %d%s, %s", r.Current.Temperature, suffix, r.Current.Condition)
	if r.Current.Humidity != "" {
		fmt.Printf(", %s", r.Current.Humidity)
	}
	if r.Current.WindCondition != "" {
		fmt.Printf(", %s", r.Current.WindCondition)
	}
	fmt.Println()

	days := make([]string, 0, len(r.Forecast))
	for day := range r.Forecast {
		days = append(days, day)
	}
	sort.Strings(days)
	for _, day := range days {
		fc := r.Forecast[day]
		fmt.Printf("%s: %d to %d%s, %s\n", day, fc.Low, fc.High, suffix, fc.Condition)
	}
}
