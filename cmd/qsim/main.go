package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/charmbracelet/log"
	"github.com/spf13/pflag"
	"github.com/theapemachine/qsim"
	"github.com/theapemachine/qsim/program"
)

func main() {
	flags := pflag.NewFlagSet("qsim", pflag.ExitOnError)
	flags.StringP("file", "f", "circuit.yaml", "circuit description (yaml, json or toml)")
	flags.IntP("shots", "s", 0, "number of shots, overrides the file")
	flags.Uint64("seed", 0, "sampling seed, overrides the file (0 keeps the file value)")
	flags.IntP("workers", "w", 0, "sampling workers (0 uses GOMAXPROCS)")
	flags.Int("batch", 0, "shots per pool job (0 uses the default)")
	flags.String("plot", "", "write a bar chart of the counts to this PNG path")
	flags.String("log-level", "info", "debug, info, warn or error")
	_ = flags.Parse(os.Args[1:])

	if err := run(flags); err != nil {
		log.Fatal("simulation failed", "err", err)
	}
}

func run(flags *pflag.FlagSet) error {
	v := program.NewViper()
	if err := v.BindPFlags(flags); err != nil {
		return err
	}

	level, err := log.ParseLevel(v.GetString("log-level"))
	if err != nil {
		return err
	}
	log.SetLevel(level)

	v.SetConfigFile(v.GetString("file"))
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("read program %s: %w", v.GetString("file"), err)
	}

	// Flags that were set win over QSIM_* env, env over the file.
	prog, err := program.FromViper(v)
	if err != nil {
		return err
	}

	config := qsim.NewConfig()
	if w := v.GetInt("workers"); w > 0 {
		config.Workers = w
	}
	if b := v.GetInt("batch"); b > 0 {
		config.BatchSize = b
	}

	log.Info("running circuit",
		"qubits", prog.Qubits,
		"gates", len(prog.Circuit),
		"shots", prog.Shots,
		"workers", config.Workers,
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	final, tally, err := prog.Run(ctx, config)
	if err != nil {
		return err
	}

	log.Debug("final state", "norm", final.Norm())

	fmt.Println(renderTally(tally, prog.Shots))

	if path := v.GetString("plot"); path != "" {
		if err := plotTally(tally, path); err != nil {
			return err
		}
		log.Info("wrote chart", "path", path)
	}

	return nil
}
