package program

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/viper"
	"github.com/theapemachine/errnie"
	"github.com/theapemachine/qsim"
)

// Program is a complete simulation request: register, circuit, defaults and shots.
type Program struct {
	Qubits   int
	Shots    int
	Seed     uint64
	Defaults qsim.Defaults
	Circuit  qsim.Circuit
}

type rawGate struct {
	Gate   string         `mapstructure:"gate"`
	Target []int          `mapstructure:"target"`
	Params map[string]any `mapstructure:"params"`
}

/*
Load reads a program from a YAML, JSON or TOML file. Keys absent from the file
fall back to QSIM_* environment variables and then to built-in defaults
(1000 shots, theta 3.1415, phi 1.5708, lambda -3.1415).
*/
func Load(path string) (*Program, error) {
	v := NewViper()
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read program %s: %w", path, err)
	}

	return FromViper(v)
}

// Parse reads a program of the given format ("yaml", "json", "toml") from r.
func Parse(r io.Reader, format string) (*Program, error) {
	v := NewViper()
	v.SetConfigType(format)

	if err := v.ReadConfig(r); err != nil {
		return nil, fmt.Errorf("parse program: %w", err)
	}

	return FromViper(v)
}

// NewViper returns a viper instance carrying the program defaults and env binding.
func NewViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix("QSIM")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("shots", 1000)
	v.SetDefault("seed", 0)
	v.SetDefault("defaults.theta", 3.1415)
	v.SetDefault("defaults.phi", 1.5708)
	v.SetDefault("defaults.lambda", -3.1415)

	return v
}

// FromViper builds and validates a Program from already-loaded settings.
func FromViper(v *viper.Viper) (*Program, error) {
	prog := &Program{
		Qubits: v.GetInt("qubits"),
		Shots:  v.GetInt("shots"),
		Seed:   v.GetUint64("seed"),
		Defaults: qsim.Defaults{
			Theta:  v.GetFloat64("defaults.theta"),
			Phi:    v.GetFloat64("defaults.phi"),
			Lambda: v.GetFloat64("defaults.lambda"),
		},
	}

	var raw []rawGate
	if err := v.UnmarshalKey("circuit", &raw); err != nil {
		return nil, fmt.Errorf("decode circuit: %w", err)
	}

	for i, rg := range raw {
		gate, err := buildGate(rg)
		if err != nil {
			return nil, &qsim.GateError{Index: i, Gate: rg.Gate, Err: err}
		}
		prog.Circuit = append(prog.Circuit, gate)
	}

	if err := prog.Circuit.Validate(prog.Qubits); err != nil {
		return nil, err
	}

	if prog.Shots < 0 {
		return nil, fmt.Errorf("%w: %d", qsim.ErrInvalidShots, prog.Shots)
	}

	return prog, nil
}

func buildGate(rg rawGate) (qsim.Gate, error) {
	params := make(map[string]qsim.Param, len(rg.Params))
	for name, raw := range rg.Params {
		p, err := ParseParam(raw)
		if err != nil {
			return nil, fmt.Errorf("param %s: %w", name, err)
		}
		params[strings.ToLower(name)] = p
	}

	return qsim.NewGate(rg.Gate, rg.Target, params)
}

/*
Run evolves the ground state through the circuit and samples it Shots times,
scheduling the shot batches on a pool sized by config.
*/
func (p *Program) Run(ctx context.Context, config *qsim.Config) (*qsim.StateVector, qsim.Tally, error) {
	errnie.Info("Program.Run - qubits %d, shots %d, seed %d", p.Qubits, p.Shots, p.Seed)

	initial, err := qsim.GroundState(p.Qubits)
	if err != nil {
		return nil, nil, err
	}

	final, err := qsim.NewExecutor(config).Run(ctx, initial, p.Circuit, p.Defaults)
	if err != nil {
		return nil, nil, err
	}

	pool := qsim.NewPool(ctx, config)
	defer pool.Close()

	tally, err := qsim.NewAggregator(pool, config, p.Seed).Tally(ctx, final, p.Shots)
	if err != nil {
		return nil, nil, err
	}

	return final, tally, nil
}
