// Command snrpick selects per-record corner frequencies for a set of seismic
// waveform records and prints the chosen bands.
//
// Usage:
//
//	snrpick [flags] records.json
//
// The input file holds an array of records:
//
//	[{"id": "CI.CLC.HNZ", "sample_rate": 100.0,
//	  "start_time": "2019-07-06T03:19:53Z",
//	  "split_time": "2019-07-06T03:20:13Z",
//	  "data": [0.0, ...]}]
//
// Picker settings come from the environment or an optional config file (see
// -config). Records failing the SNR check are logged and excluded from the
// report.
//
// Examples:
//
//	snrpick records.json
//	snrpick -config picker.env records.json
//	SNR_THRESHOLD=2.0 snrpick records.json
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/cwbudde/algo-seismic/internal/config"
	"github.com/cwbudde/algo-seismic/pick"
	"github.com/cwbudde/algo-seismic/waveform"
)

type recordFile struct {
	ID         string    `json:"id"`
	SampleRate float64   `json:"sample_rate"`
	StartTime  time.Time `json:"start_time"`
	SplitTime  time.Time `json:"split_time"`
	Data       []float64 `json:"data"`
}

func main() {
	configPath := flag.String("config", "", "optional config file (env format)")
	flag.Parse()

	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: snrpick [flags] records.json")
		os.Exit(2)
	}

	if err := run(*configPath, flag.Arg(0)); err != nil {
		log.Fatal().Err(err).Msg("snrpick failed")
	}
}

func run(configPath, inputPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	st, err := loadRecords(inputPath)
	if err != nil {
		return err
	}

	switch cfg.Picker {
	case config.PickerConstant:
		pick.NewConstant(cfg.Constant.Highpass, cfg.Constant.Lowpass).Apply(st)
	case config.PickerSNR:
		picker := pick.NewSNR(
			pick.WithThreshold(cfg.SNR.Threshold),
			pick.WithMaxLowFreq(cfg.SNR.MaxLowFreq),
			pick.WithMinHighFreq(cfg.SNR.MinHighFreq),
			pick.WithBandwidth(cfg.SNR.Bandwidth),
			pick.WithLogger(log.Logger),
		)

		if err := picker.Apply(st); err != nil {
			return err
		}
	}

	return report(st)
}

func loadRecords(path string) (*waveform.Collection, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	var entries []recordFile
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	records := make([]*waveform.Record, 0, len(entries))

	for _, e := range entries {
		rec := &waveform.Record{
			ID:         e.ID,
			SampleRate: e.SampleRate,
			StartTime:  e.StartTime,
			Data:       e.Data,
		}
		rec.SetSplitTime(e.SplitTime)

		records = append(records, rec)
	}

	return waveform.NewCollection(records...), nil
}

func report(st *waveform.Collection) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)

	fmt.Fprintln(w, "RECORD\tMETHOD\tHIGHPASS [Hz]\tLOWPASS [Hz]")

	for _, rec := range st.Records() {
		cf, ok := pick.Corners(rec)
		if !ok {
			continue
		}

		fmt.Fprintf(w, "%s\t%s\t%.4f\t%.4f\n", rec.ID, cf.Method, cf.Highpass, cf.Lowpass)
	}

	return w.Flush()
}
