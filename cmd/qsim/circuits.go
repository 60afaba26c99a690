package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/theapemachine/errnie"
	"github.com/theapemachine/qsim"
)

func newBellCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "bell",
		Short: "Prepare a Bell pair and dump it",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			errnie.Info("bell - seed %v, epsilon %v", cfg.Seed, cfg.Epsilon)

			sim := qsim.New(qsim.WithConfig(cfg))
			return runBell(cmd, sim)
		},
	}
}

func runBell(cmd *cobra.Command, sim *qsim.Simulator) error {
	q0 := sim.Allocate()
	q1 := sim.Allocate()

	if err := sim.H(q0); err != nil {
		return err
	}
	if err := sim.MCX([]int{q0}, q1); err != nil {
		return err
	}

	return sim.Dump(cmd.OutOrStdout())
}

func newGHZCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ghz",
		Short: "Entangle a chain of qubits, then measure the control",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			n, _ := cmd.Flags().GetInt("qubits")
			if n < 1 {
				return errors.New("qsim: --qubits must be at least 1")
			}

			errnie.Info("ghz - qubits %v, seed %v, epsilon %v", n, cfg.Seed, cfg.Epsilon)

			sim := qsim.New(qsim.WithConfig(cfg))
			return runGHZ(cmd, sim, n)
		},
	}

	cmd.Flags().IntP("qubits", "n", 8, "Number of qubits in the chain")
	return cmd
}

func runGHZ(cmd *cobra.Command, sim *qsim.Simulator, n int) error {
	out := cmd.OutOrStdout()

	ctl := sim.Allocate()
	if err := sim.H(ctl); err != nil {
		return err
	}

	qs := []int{ctl}
	for i := 1; i < n; i++ {
		q := sim.Allocate()
		if err := sim.MCX([]int{ctl}, q); err != nil {
			return err
		}
		qs = append(qs, q)
	}

	fmt.Fprintf(out, "qubits: %d, entries before measurement: %d\n", sim.QubitCount(), sim.StateSize())

	outcome, err := sim.Measure(ctl)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "outcome: %t, entries after measurement: %d\n", outcome, sim.StateSize())

	if n <= 16 {
		if err := sim.Dump(out); err != nil {
			return err
		}
	}

	for _, q := range qs {
		if err := sim.Release(q); err != nil {
			return err
		}
	}

	fmt.Fprintf(out, "metrics: %v\n", sim.Metrics())
	return nil
}
