package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"slices"

	"go.uber.org/zap"

	"voynich/internal/analysis"
	"voynich/internal/cipher"
	"voynich/internal/config"
	"voynich/internal/dictionary"
	"voynich/internal/exporter"
	"voynich/internal/importer/source"
	"voynich/internal/logging"
	"voynich/internal/processor"
	"voynich/internal/tokenizer"
	"voynich/internal/types"
)

const missingSourceMessage = "Error: Ciphertext file is empty or not found."

// errAborted stops a run after the user has already been told why.
var errAborted = errors.New("analysis aborted")

type Globals struct {
	Config     string `short:"c" help:"YAML configuration file." type:"existingfile"`
	Dictionary string `help:"YAML dictionary file (word: [translations]) replacing the configured one." type:"existingfile"`
	Encoding   string `short:"e" help:"Source encoding (utf8, cp437, cp850, iso-8859-1)."`
	Format     string `short:"f" help:"Output format (text, table, json)."`
	Debug      bool   `short:"d" help:"Enable debug logging on stderr."`
}

type CLI struct {
	Globals

	Analyze AnalyzeCmd `cmd:"" default:"withargs" help:"Frequency analysis, substitution decryption and translation (default)."`
	Shift   ShiftCmd   `cmd:"" help:"Count dictionary matches for every Caesar shift from 1 to 25."`
	Caesar  CaesarCmd  `cmd:"" help:"Print the text rotated by a single Caesar shift."`
	Stats   StatsCmd   `cmd:"" help:"Display character and word frequencies only."`
}

// App carries the resolved configuration shared by every command.
type App struct {
	Config *config.Config
	Logger *zap.Logger
	Out    io.Writer
}

func NewApp(g Globals, out io.Writer) (*App, error) {
	cfg := config.Default()
	if g.Config != "" {
		loaded, err := config.Load(g.Config)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if g.Dictionary != "" {
		dict, err := dictionary.LoadFile(g.Dictionary)
		if err != nil {
			return nil, err
		}
		cfg.Dictionary = dict
	}
	if g.Encoding != "" {
		cfg.Source.Encoding = g.Encoding
	}
	if g.Format != "" {
		cfg.Report.Format = g.Format
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger, err := logging.New(cfg.Logging, g.Debug)
	if err != nil {
		return nil, err
	}

	return &App{Config: cfg, Logger: logger, Out: out}, nil
}

// loadText resolves the source: the file argument, then a stdin pipe, then
// the configured path. A missing or empty source prints the abort message.
func (a *App) loadText(file string) (string, string, error) {
	path := file
	if path == "" {
		pipe, err := source.StdinIsPipe()
		if err != nil {
			return "", "", err
		}
		path = a.Config.Source.Path
		if pipe {
			path = source.Stdin
		}
	}

	a.Logger.Debug("Loading source", zap.String("path", path), zap.String("encoding", a.Config.Source.Encoding))

	text, err := source.LoadText(path, a.Config.Source.Encoding)
	if err != nil {
		if source.IsMissingOrEmpty(err) {
			a.Logger.Debug("Nothing to analyze", zap.Error(err))
			fmt.Fprintln(a.Out, missingSourceMessage)
			return "", "", errAborted
		}
		return "", "", err
	}

	return path, text, nil
}

func (a *App) topWords(flag int) int {
	if flag != 0 {
		return flag
	}
	return a.Config.Report.TopWords
}

func (a *App) write(report *types.Report, annotate, showBest bool) error {
	switch a.Config.Report.Format {
	case "json":
		return exporter.ExportReportJSON(report, a.Out)
	case "table":
		return exporter.ExportReportToTable(report, a.Out)
	default:
		return exporter.WriteReport(a.Out, report, annotate, showBest)
	}
}

/////////////////////////////////////////////////////////////////////////////
// COMMANDS
/////////////////////////////////////////////////////////////////////////////

type AnalyzeCmd struct {
	File     string `arg:"" optional:"" help:"Ciphertext file, '-' for stdin."`
	Top      int    `short:"n" help:"Number of most common words to display; 0 uses the configured value, negative displays all."`
	Annotate bool   `short:"a" help:"Display translations as 'token -> translations'."`
	Shifts   bool   `short:"s" help:"Also run the Caesar shift scan."`
	Save     string `help:"Also export the decrypted text and JSON report to <base>.txt and <base>.json."`
}

func (c *AnalyzeCmd) Run(app *App) error {
	name, text, err := app.loadText(c.File)
	if err != nil {
		return err
	}

	m, err := app.Config.SubstitutionMap()
	if err != nil {
		return err
	}

	top := app.topWords(c.Top)

	a := &processor.Analyzer{
		Substitution: processor.NewSubstitutionPipeline(m, app.Config.Dictionary, top, app.Logger),
	}
	if c.Shifts {
		a.Shift = processor.NewShiftScanner(app.Config.Dictionary, false, app.Logger)
	}

	report, err := a.Run(context.Background(), name, text)
	if err != nil {
		return err
	}

	if c.Save != "" {
		txtPath, jsonPath, err := exporter.ExportToMultifile(report, c.Save)
		if err != nil {
			return err
		}
		app.Logger.Info("Report saved", zap.String("text", txtPath), zap.String("json", jsonPath))
	}

	return app.write(report, c.Annotate || app.Config.Report.Annotate, false)
}

type ShiftCmd struct {
	File     string `arg:"" optional:"" help:"Ciphertext file, '-' for stdin."`
	Parallel bool   `short:"p" help:"Evaluate the 25 shifts concurrently."`
	Best     bool   `short:"b" help:"Also display the shift with the most matches."`
}

func (c *ShiftCmd) Run(app *App) error {
	name, text, err := app.loadText(c.File)
	if err != nil {
		return err
	}

	a := &processor.Analyzer{
		Shift: processor.NewShiftScanner(app.Config.Dictionary, c.Parallel, app.Logger),
	}

	report, err := a.Run(context.Background(), name, text)
	if err != nil {
		return err
	}

	return app.write(report, false, c.Best)
}

type CaesarCmd struct {
	File    string `arg:"" optional:"" help:"Text file, '-' for stdin."`
	Amount  int    `name:"shift" short:"k" required:"" help:"Shift amount; any integer, applied modulo 26."`
	Decrypt bool   `short:"r" help:"Rotate backwards instead of forwards."`
}

func (c *CaesarCmd) Run(app *App) error {
	_, text, err := app.loadText(c.File)
	if err != nil {
		return err
	}

	if c.Decrypt {
		text = cipher.Unshift(text, c.Amount)
	} else {
		text = cipher.Shift(text, c.Amount)
	}

	_, err = fmt.Fprintln(app.Out, text)
	return err
}

type StatsCmd struct {
	File string `arg:"" optional:"" help:"Ciphertext file, '-' for stdin."`
	Mode string `short:"m" help:"Tokenizer mode (cipher, words)." default:"cipher"`
	Top  int    `short:"n" help:"Number of most common words to display; 0 uses the configured value, negative displays all."`
}

func (c *StatsCmd) Run(app *App) error {
	if !slices.Contains([]string{"cipher", "words"}, c.Mode) {
		return fmt.Errorf("unsupported tokenizer mode: %s", c.Mode)
	}

	name, text, err := app.loadText(c.File)
	if err != nil {
		return err
	}

	mode := types.ModeCipher
	if c.Mode == "words" {
		mode = types.ModeWords
	}

	top := app.topWords(c.Top)

	tok := tokenizer.NewTokenizer(text, mode)
	tokens := tok.Tokenize()
	chars := analysis.Report(analysis.CharacterFrequency(tokens, mode == types.ModeWords).Ranked())
	words := analysis.Report(analysis.TokenFrequency(tokens).Top(top))

	switch app.Config.Report.Format {
	case "json":
		return exporter.ExportReportJSON(&types.Report{
			Source: name,
			Substitution: &types.SubstitutionReport{
				Stats:         tok.GetStats(),
				CharFrequency: chars,
				WordFrequency: words,
			},
		}, app.Out)
	case "table":
		if err := exporter.ExportFrequencyToTable("Character Frequency", chars, app.Out); err != nil {
			return err
		}
		return exporter.ExportFrequencyToTable("Most Common Words", words, app.Out)
	}

	fmt.Fprintln(app.Out, "Character Frequency:")
	if err := exporter.WriteFrequency(app.Out, chars); err != nil {
		return err
	}
	fmt.Fprintln(app.Out, "\nMost Common Words:")
	return exporter.WriteFrequency(app.Out, words)
}
