package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rgehrsitz/isoamt/internal/calculation"
	"github.com/rgehrsitz/isoamt/internal/config"
	"github.com/rgehrsitz/isoamt/internal/domain"
	"github.com/rgehrsitz/isoamt/internal/taxtables"
	"github.com/rgehrsitz/isoamt/internal/tui"
)

func main() {
	settings, err := config.LoadEnv(".env")
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	// An optional scenario file pre-fills the inputs
	var initial domain.RawInputs
	year := settings.TaxYear
	tables := settings.Tables
	if len(os.Args) > 1 {
		scenario, err := config.NewInputParser().LoadFromFile(os.Args[1])
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
		initial = scenario.Inputs
		tables = append(tables, scenario.Tables...)
		if scenario.TaxYear != 0 {
			year = scenario.TaxYear
		}
	}

	registry := taxtables.MustDefault()
	if err := registry.LoadInto(tables...); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	engine, err := calculation.NewEngineForYear(registry, year)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	p := tea.NewProgram(
		tui.NewModel(engine, initial),
		tea.WithAltScreen(),
	)
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running TUI: %v\n", err)
		os.Exit(1)
	}
}
