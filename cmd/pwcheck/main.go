package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/jessevdk/go-flags"

	"pwstrength/internal/domain/entity"
	service "pwstrength/internal/domain/service/strength"
	"pwstrength/internal/infrastructure/checkapi"
	"pwstrength/pkg/contextx"
	"pwstrength/pkg/logx"
	"pwstrength/pkg/rest"
)

const noSuggestions = "No suggestions, strong password!"

type Opts struct {
	URL     string        `short:"u" long:"url" env:"PWCHECK_URL" default:"http://localhost:8080" description:"password strength API base URL" value-name:"URL"`
	Timeout time.Duration `long:"timeout" default:"5s" description:"API request timeout"`
	Offline bool          `long:"offline" description:"print the local estimate only"`
	Stdin   bool          `long:"stdin" description:"read the password from the first line of stdin"`
	Verbose bool          `short:"v" long:"verbose" description:"log HTTP traffic (passwords are masked)"`

	Args struct {
		Password string `positional-arg-name:"PASSWORD"`
	} `positional-args:"yes"`
}

type view struct {
	Title       string
	Entropy     float64
	Length      int
	Score       int
	Rating      string
	Suggestions []string
	Warning     string
}

func main() {
	var opts Opts

	if _, err := flags.ParseArgs(&opts, os.Args[1:]); err != nil {
		os.Exit(2) //nolint:mnd
	}

	level := slog.LevelWarn
	if opts.Verbose {
		level = slog.LevelDebug
	}

	ctx := contextx.WithLogger(context.Background(), slog.New(logx.NewHandler(os.Stderr, "text", level)))

	if err := run(ctx, opts, os.Stdin, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "pwcheck:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, opts Opts, stdin io.Reader, out io.Writer) error {
	password := opts.Args.Password

	if opts.Stdin {
		line, err := bufio.NewReader(stdin).ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return fmt.Errorf("read stdin: %w", err)
		}

		password = strings.TrimRight(line, "\r\n")
	}

	// The local estimate needs no dictionary.
	local, err := service.NewStrengthService(nil).Local(password)
	if err != nil {
		return fmt.Errorf("Local: %w", err)
	}

	printView(out, localView(local))

	if opts.Offline {
		return nil
	}

	result, err := checkapi.NewClient(opts.URL, opts.Timeout).Check(ctx, password)
	if err != nil {
		return fmt.Errorf("checkapi.Check: %w", err)
	}

	fmt.Fprintln(out)
	printView(out, remoteView(result))

	return nil
}

func localView(r entity.Report) view {
	return view{
		Title:       "Local estimate",
		Entropy:     r.EntropyBits,
		Length:      r.Length,
		Score:       r.Score,
		Rating:      r.Rating.String(),
		Suggestions: r.Suggestions,
	}
}

func remoteView(r rest.CheckResponse) view {
	return view{
		Title:       "Server check",
		Entropy:     r.Entropy,
		Length:      r.Length,
		Score:       r.Score,
		Rating:      r.Rating,
		Suggestions: r.Suggestions,
		Warning:     r.Warning,
	}
}

func printView(out io.Writer, v view) {
	fmt.Fprintln(out, v.Title)
	fmt.Fprintf(out, "  Entropy:  %.2f bits\n", v.Entropy)
	fmt.Fprintf(out, "  Length:   %d\n", v.Length)
	fmt.Fprintf(out, "  Score:    %d/100 (%s)\n", v.Score, v.Rating)

	if v.Warning != "" {
		fmt.Fprintf(out, "  Warning:  %s\n", v.Warning)
	}

	suggestions := v.Suggestions
	if len(suggestions) == 0 {
		suggestions = []string{noSuggestions}
	}

	fmt.Fprintln(out, "  Suggestions:")

	for _, s := range suggestions {
		fmt.Fprintf(out, "    - %s\n", s)
	}
}
