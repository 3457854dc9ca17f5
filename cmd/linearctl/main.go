// SPDX-License-Identifier: MIT

package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/linear"
	"github.com/katalvlaran/linear/config"
)

func main() {
	cfgPath := flag.String("config", "", "engine config (TOML); defaults apply when empty")
	script := flag.String("script", "", "session script (TOML)")
	flag.Parse()

	if *script == "" {
		fmt.Fprintln(os.Stderr, "linearctl: -script is required")
		os.Exit(2)
	}
	if err := run(*cfgPath, *script, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "linearctl: %v\n", err)
		os.Exit(1)
	}
}

func initLogger(app string, level zerolog.Level) zerolog.Logger {
	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
	}

	return zerolog.New(output).Level(level).With().Timestamp().Str("app", app).Logger()
}

func run(cfgPath, scriptPath string, w io.Writer) error {
	cfg := config.Default()
	if cfgPath != "" {
		var err error
		if cfg, err = config.Load(cfgPath); err != nil {
			return err
		}
	}
	log := initLogger("linearctl", cfg.Level())

	s, err := config.LoadScript(scriptPath)
	if err != nil {
		return err
	}

	return execute(linear.New(cfg.Options(log)...), s, log, w)
}

// execute runs every step of s in order and prints one line per step:
// the scalar result for scalar and vector-reduction steps, the operand
// otherwise.
func execute(e *linear.Engine, s *config.Script, log zerolog.Logger, w io.Writer) error {
	ws, err := s.Build()
	if err != nil {
		return err
	}
	defer ws.Release()

	for i, st := range s.Ops {
		call, err := ws.Call(st)
		if err != nil {
			return fmt.Errorf("ops[%d]: %w", i, err)
		}
		r, err := e.Call(st.Op, call...)
		if err != nil {
			return fmt.Errorf("ops[%d]: %w", i, err)
		}
		log.Info().Int("step", i).Str("op", st.Op).Str("on", st.On).Msg("done")

		switch {
		case st.Value != nil:
			fmt.Fprintf(w, "%s = %g\n", st.Op, r)
		case st.Out != "":
			fmt.Fprintf(w, "%s %s -> %s = %v\n", st.Op, st.On, st.Out, ws.Vectors[st.Out])
		case ws.Matrices[st.On] != nil:
			fmt.Fprintf(w, "%s %s = %v\n", st.Op, st.On, ws.Matrices[st.On])
		case isReduction(st.Op):
			fmt.Fprintf(w, "%s %s = %g\n", st.Op, st.On, r)
		default:
			fmt.Fprintf(w, "%s %s = %v\n", st.Op, st.On, ws.Vectors[st.On])
		}
	}

	return nil
}

func isReduction(op string) bool {
	switch op {
	case linear.OpSum, linear.OpMean, linear.OpVar, linear.OpStd, linear.OpNrm2, linear.OpAsum:
		return true
	}

	return false
}
