package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/urfave/cli/v2"
)

// appState is shared by the commands once the Before hook has run.
type appState struct {
	cfg    *Config
	logger *log.Logger
}

func newApp() *cli.App {
	st := &appState{}

	return &cli.App{
		Name:  "qdense",
		Usage: "dense state-vector quantum circuit simulator",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Aliases: []string{"c"}, Usage: "YAML config file"},
			&cli.StringFlag{Name: "log-level", Value: "info", Usage: "debug, info, warn or error"},
		},
		Before: func(c *cli.Context) error {
			level, err := log.ParseLevel(c.String("log-level"))
			if err != nil {
				return cli.Exit(err, 2)
			}
			st.logger = log.NewWithOptions(os.Stderr, log.Options{
				Level:           level,
				Prefix:          "qdense",
				ReportTimestamp: true,
				TimeFormat:      time.Kitchen,
			})
			cfg, err := LoadConfig(c.String("config"))
			if err != nil {
				return cli.Exit(err, 2)
			}
			st.cfg = cfg
			st.logger.Debug("config loaded", "max_qubits", cfg.MaxQubits, "tolerance", cfg.Tolerance)
			return nil
		},
		Commands: []*cli.Command{
			{
				Name:      "run",
				Usage:     "simulate an OpenQASM 2.0 file (x, z, h, cx only)",
				ArgsUsage: "<file.qasm>",
				Action:    st.runFile,
			},
			{
				Name:  "ghz",
				Usage: "prepare an n-qubit GHZ state",
				Flags: []cli.Flag{
					&cli.IntFlag{Name: "qubits", Aliases: []string{"n"}, Value: 3},
				},
				Action: func(c *cli.Context) error {
					return st.simulate(GHZ(c.Int("qubits")), "ghz")
				},
			},
			{
				Name:  "deutsch-jozsa",
				Usage: "run the 4-qubit Deutsch-Jozsa circuit",
				Action: func(c *cli.Context) error {
					return st.simulate(DeutschJozsa(), "deutsch-jozsa")
				},
			},
			{
				Name:  "bench",
				Usage: "time gate construction and application",
				Flags: []cli.Flag{
					&cli.IntFlag{Name: "qubits", Aliases: []string{"n"}, Usage: "register size (default from config)"},
					&cli.IntFlag{Name: "repeats", Aliases: []string{"r"}, Usage: "runs per scenario"},
					&cli.IntFlag{Name: "parallel", Aliases: []string{"p"}, Usage: "scenarios timed at once"},
				},
				Action: st.bench,
			},
			{
				Name:  "tui",
				Usage: "interactive circuit editor and state stepper",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "file", Aliases: []string{"f"}, Usage: "QASM file to open"},
				},
				Action: st.tui,
			},
		},
	}
}

func (st *appState) runFile(c *cli.Context) error {
	if c.NArg() != 1 {
		return cli.Exit("run: expected exactly one QASM file", 2)
	}
	path := c.Args().First()
	data, err := os.ReadFile(path)
	if err != nil {
		return cli.Exit(err, 1)
	}
	var circuit Circuit
	if err := circuit.ParseQASM(string(data)); err != nil {
		return cli.Exit(fmt.Errorf("%s: %w", path, err), 1)
	}
	return st.simulate(&circuit, path)
}

func (st *appState) simulate(circuit *Circuit, name string) error {
	if err := st.cfg.checkQubits(circuit.NumQubits); err != nil {
		return cli.Exit(err, 2)
	}
	start := time.Now()
	reg, err := SimulateCircuit(circuit, -1)
	if err != nil {
		return cli.Exit(fmt.Errorf("%s: %w", name, err), 1)
	}
	st.logger.Info("simulated",
		"circuit", name,
		"qubits", reg.NumQubits(),
		"gates", len(circuit.Gates),
		"elapsed", time.Since(start),
		"norm", reg.Norm(),
	)
	writeState(os.Stdout, reg, st.cfg.Tolerance)
	return nil
}

func (st *appState) bench(c *cli.Context) error {
	cfg := st.cfg.Bench
	if c.IsSet("qubits") {
		cfg.Qubits = c.Int("qubits")
	}
	if c.IsSet("repeats") {
		cfg.Repeats = c.Int("repeats")
	}
	if c.IsSet("parallel") {
		cfg.Parallel = c.Int("parallel")
	}
	if err := st.cfg.checkQubits(cfg.Qubits); err != nil {
		return cli.Exit(err, 2)
	}
	if cfg.Repeats <= 0 || cfg.Parallel <= 0 {
		return cli.Exit("bench: repeats and parallel must be positive", 2)
	}

	ctx, stop := signal.NotifyContext(c.Context, os.Interrupt)
	defer stop()

	st.logger.Info("bench starting", "qubits", cfg.Qubits, "repeats", cfg.Repeats, "parallel", cfg.Parallel)
	p := NewProfiler()
	if err := RunBench(ctx, p, cfg); err != nil {
		return cli.Exit(fmt.Errorf("bench: %w", err), 1)
	}
	p.Render(os.Stdout)
	return nil
}

func (st *appState) tui(c *cli.Context) error {
	m := initialModel(st.cfg)
	if path := c.String("file"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cli.Exit(err, 1)
		}
		if err := m.loadQASM(string(data)); err != nil {
			return cli.Exit(fmt.Errorf("%s: %w", path, err), 1)
		}
	}
	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return cli.Exit(err, 1)
	}
	return nil
}

func main() {
	if err := newApp().RunContext(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}
