package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"time"

	sitecolors "github.com/kataras/site-colors"
	"github.com/kataras/site-colors/pkg/css"
	"github.com/kataras/site-colors/pkg/formatter"
	"github.com/kataras/site-colors/pkg/web"

	"github.com/fatih/color"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const version = web.Version

// Flag names double as viper keys, SITECOLORS_<NAME> in the environment.
const (
	keyURL         = "url"
	keyOutput      = "output"
	keyFormat      = "format"
	keySort        = "sort"
	keyTimeout     = "timeout"
	keyRetries     = "retries"
	keyConcurrency = "concurrency"
	keyLogFormat   = "log-format"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "site-colors [url]",
		Short: "Extract the colors a web page declares in its stylesheets",
		Long:  "A tool to collect every CSS color declared in a page's inline <style> blocks and linked stylesheets",
		Args:  cobra.MaximumNArgs(1),
		Run:   run,
	}

	rootCmd.Flags().StringP(keyURL, "u", "", "Page URL (or pass it as the first argument)")
	rootCmd.Flags().StringP(keyOutput, "o", "", "Output file (default stdout)")
	rootCmd.Flags().StringP(keyFormat, "f", "markdown", "Output format: markdown, json, yaml, swatch")
	rootCmd.Flags().String(keySort, "", "Order colors before printing: \"hue\" (default keeps stylesheet order)")
	rootCmd.Flags().Duration(keyTimeout, 30*time.Second, "Per request timeout")
	rootCmd.Flags().Int(keyRetries, 0, "Retries for failed requests, 429 and 5xx responses")
	rootCmd.Flags().Int(keyConcurrency, 4, "Linked stylesheets downloaded at once")
	rootCmd.Flags().String(keyLogFormat, "", "Log with logrus instead of colored output: text, json")

	for _, name := range []string{keyURL, keyOutput, keyFormat, keySort, keyTimeout, keyRetries, keyConcurrency, keyLogFormat} {
		lo.Must0(viper.BindPFlag(name, rootCmd.Flags().Lookup(name)))
	}
	viper.SetEnvPrefix("SITECOLORS")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("site-colors version %s\n", version)
		},
	}

	rootCmd.AddCommand(versionCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) {
	green := color.New(color.FgGreen)
	red := color.New(color.FgRed)
	cyan := color.New(color.FgCyan)

	pageURL := viper.GetString(keyURL)
	if len(args) == 1 {
		pageURL = args[0]
	}
	if pageURL == "" {
		red.Fprintln(os.Stderr, "Error: a page URL is required")
		cmd.Usage()
		os.Exit(1)
	}

	format := strings.ToLower(viper.GetString(keyFormat))
	if !lo.Contains([]string{"markdown", "json", "yaml", "swatch"}, format) {
		red.Fprintf(os.Stderr, "Error: unknown format %q\n", format)
		os.Exit(1)
	}

	logger, err := newLogger(viper.GetString(keyLogFormat))
	if err != nil {
		red.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if _, plain := logger.(*cliLogger); plain {
		cyan.Fprintln(os.Stderr, "\n🎨 Site Colors")
		cyan.Fprintln(os.Stderr, "==============")
		cyan.Fprintln(os.Stderr)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	client := web.NewClient(web.Config{
		Timeout:    viper.GetDuration(keyTimeout),
		MaxRetries: viper.GetInt(keyRetries),
	})

	result, err := sitecolors.Scrape(ctx, pageURL, sitecolors.Options{
		Fetcher:     client,
		Concurrency: viper.GetInt(keyConcurrency),
		Logger:      logger,
	})
	if err != nil {
		red.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	colors := result.Colors
	if strings.EqualFold(viper.GetString(keySort), "hue") {
		colors = formatter.SortByHue(colors)
	}

	out, err := render(format, result.URL, colors)
	if err != nil {
		red.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	outputFile := viper.GetString(keyOutput)
	if outputFile == "" {
		fmt.Print(out)
		return
	}

	green.Fprintf(os.Stderr, "\n💾 Writing to %s... ", outputFile)
	if err = os.WriteFile(outputFile, []byte(out), 0644); err != nil {
		red.Fprintf(os.Stderr, "✗\n")
		red.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	green.Fprintln(os.Stderr, "✓")

	green.Fprintf(os.Stderr, "\n✨ Successfully extracted %d color(s) to %s\n\n", len(colors), outputFile)
}

func render(format, pageURL string, colors []css.Color) (string, error) {
	switch format {
	case "json":
		b, err := formatter.ToJSON(formatter.NewReport(pageURL, colors))
		return string(b), err
	case "yaml":
		b, err := formatter.ToYAML(formatter.NewReport(pageURL, colors))
		return string(b), err
	case "swatch":
		return swatches(colors), nil
	default:
		return formatter.ToMarkdown(pageURL, colors), nil
	}
}

// swatches prints one line per distinct color with a block painted in that color.
// Alpha is ignored since terminals have no notion of it.
func swatches(colors []css.Color) string {
	var sb strings.Builder
	for _, c := range formatter.Unique(colors) {
		block := color.BgRGB(int(c.R), int(c.G), int(c.B)).Sprint("      ")
		sb.WriteString(fmt.Sprintf("%s  %-10s %s\n", block, c.Hex(), c.String()))
	}
	return sb.String()
}
