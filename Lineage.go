/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: Lineage.go
Description: Standalone demo driver for the Lineage inference engine. Builds
the classic three-member family pedigree in memory, runs exact inference with
and without trait evidence, prints both posteriors side by side, and writes a
JSON report to ./inference_output. Modular, clean, and beautiful.
*/

package main

import (
	"fmt"
	"os"

	"github.com/kleascm/lineage/pkg/engine"
	"github.com/kleascm/lineage/pkg/interfaces"
	"github.com/kleascm/lineage/pkg/model"
	"github.com/kleascm/lineage/pkg/population"
	"github.com/kleascm/lineage/pkg/utils"
)

func demoFamily() (*population.Population, error) {
	trait := true
	return population.New([]interfaces.MemberRecord{
		{ID: "Lily", MotherID: "", FatherID: ""},
		{ID: "James", MotherID: "", FatherID: "", Trait: &trait},
		{ID: "Harry", MotherID: "Lily", FatherID: "James"},
	})
}

func runDemo(pop *population.Population, ev population.Evidence) (*interfaces.Marginals, error) {
	eng := engine.NewEngine()
	eng.SetModel(model.DefaultModel())

	if err := eng.Initialize(&interfaces.EngineConfig{LogLevel: "warn"}); err != nil {
		return nil, fmt.Errorf("initialize failed: %w", err)
	}

	return eng.Infer(pop, ev)
}

func printComparison(pop *population.Population, prior, posterior *interfaces.Marginals) {
	for _, id := range pop.IDs() {
		p := prior.Members[id]
		q := posterior.Members[id]
		fmt.Printf("%s:\n", id)
		fmt.Printf("  Gene (no evidence / with evidence):\n")
		for v := len(p.Hidden) - 1; v >= 0; v-- {
			fmt.Printf("    %d: %.4f / %.4f\n", v, p.Hidden[v], q.Hidden[v])
		}
		fmt.Printf("  Trait (no evidence / with evidence):\n")
		fmt.Printf("    True: %.4f / %.4f\n", p.Observed.True, q.Observed.True)
		fmt.Printf("    False: %.4f / %.4f\n", p.Observed.False, q.Observed.False)
	}
}

func main() {
	pop, err := demoFamily()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to build demo family: %v\n", err)
		os.Exit(1)
	}

	prior, err := runDemo(pop, population.Evidence{})
	if err != nil {
		fmt.Fprintf(os.Stderr, "inference without evidence failed: %v\n", err)
		os.Exit(1)
	}

	posterior, err := runDemo(pop, pop.Evidence())
	if err != nil {
		fmt.Fprintf(os.Stderr, "inference with evidence failed: %v\n", err)
		os.Exit(1)
	}

	printComparison(pop, prior, posterior)

	path, err := utils.WriteResult("./inference_output", posterior.RunID, posterior)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to write report: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("\nReport written to %s\n", path)
}
