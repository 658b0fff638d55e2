package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/go-chi/chi/v5"
	"github.com/rivo/uniseg"
	"go.uber.org/zap"

	"github.com/hugochinchilla79/cardbrand"
	"github.com/hugochinchilla79/cardbrand/models"
)

var (
	validStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#10B981"))
	invalidStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#EF4444"))
	labelStyle   = lipgloss.NewStyle().Bold(true)
)

var errUsage = errors.New("usage: cardbrand [-json] [-type] number...  |  cardbrand -samples  |  cardbrand -serve addr")

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run executes the command line tool. The logger is synced on every return
// path, including errors.
func run(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("cardbrand", flag.ContinueOnError)
	envFile := fs.String("env", ".env", "dotenv file to load before reading CARDBRAND_* variables")
	asJSON := fs.Bool("json", false, "print JSON instead of styled text")
	typed := fs.Bool("type", false, "classify every prefix of each number, as if typed")
	samples := fs.Bool("samples", false, "classify the sample catalog and fail on mismatches")
	samplesFile := fs.String("samples-file", "", "YAML sample catalog (overrides CARDBRAND_SAMPLES_FILE)")
	serveAddr := fs.String("serve", "", "serve the HTTP API on this address (\"-\" uses CARDBRAND_HTTP_ADDR)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg := cardbrand.LoadConfigFromDotEnv(*envFile)
	if *samplesFile != "" {
		cfg.SamplesFile = *samplesFile
	}

	logger, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer logger.Sync()

	classifier, err := cardbrand.NewClassifierFromConfig(cfg, logger)
	if err != nil {
		return err
	}

	p := printer{w: stdout, json: *asJSON}
	switch {
	case *serveAddr != "":
		addr := *serveAddr
		if addr == "-" {
			addr = cfg.HTTPAddr
		}
		return serve(addr, classifier, logger)
	case *samples:
		return runSamples(p, classifier, cfg)
	default:
		if fs.NArg() == 0 {
			return errUsage
		}
		for _, number := range fs.Args() {
			inputs := []string{number}
			if *typed {
				inputs = prefixes(number)
			}
			for _, in := range inputs {
				p.print("", classifier.Describe(in))
			}
		}
		return nil
	}
}

func newLogger(cfg cardbrand.Config) (*zap.Logger, error) {
	level, err := cfg.Level()
	if err != nil {
		return nil, err
	}
	zcfg := zap.NewProductionConfig()
	zcfg.Level = zap.NewAtomicLevelAt(level)
	zcfg.OutputPaths = []string{"stderr"}
	return zcfg.Build()
}

// prefixes returns number as it appears after each typed character.
func prefixes(number string) []string {
	var out []string
	g := uniseg.NewGraphemes(number)
	for g.Next() {
		_, end := g.Positions()
		out = append(out, number[:end])
	}
	return out
}

func runSamples(p printer, classifier *cardbrand.Classifier, cfg cardbrand.Config) error {
	samples := cardbrand.DefaultSamples()
	if cfg.SamplesFile != "" {
		loaded, err := cardbrand.LoadSamples(cfg.SamplesFile)
		if err != nil {
			return err
		}
		samples = loaded
	}
	for _, s := range samples {
		p.print(s.Name, classifier.Describe(s.Number))
	}
	return cardbrand.CheckSamples(classifier, samples)
}

type printer struct {
	w    io.Writer
	json bool
}

func (p printer) print(label string, res models.Classification) {
	if p.json {
		enc, _ := json.Marshal(struct {
			Name string `json:"name,omitempty"`
			models.Classification
		}{label, res})
		fmt.Fprintln(p.w, string(enc))
		return
	}

	style := validStyle
	if !res.Valid {
		style = invalidStyle
	}
	line := style.Render(fmt.Sprintf("%-19s %-16s", res.Masked, res.Brand))
	if res.Icon != "" {
		line += " " + res.IconPath
	}
	if label != "" {
		line = labelStyle.Render(fmt.Sprintf("%-28s", label)) + " " + line
	}
	fmt.Fprintln(p.w, line)
}

func serve(addr string, classifier *cardbrand.Classifier, logger *zap.Logger) error {
	router := chi.NewRouter()
	cardbrand.NewAPI(classifier, logger).AppendRoutes(router)

	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server started", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("starting http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down http server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
