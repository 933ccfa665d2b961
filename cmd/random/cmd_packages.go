package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"sigs.k8s.io/yaml"

	"github.com/Yandex-Practicum/go-ftracker/internal/app"
	"github.com/Yandex-Practicum/go-ftracker/internal/random"
	"github.com/Yandex-Practicum/go-ftracker/internal/training"
)

func newCmdPackages() *cobra.Command {
	var (
		count int
		code  string
	)

	cmd := &cobra.Command{
		Use:   "packages",
		Short: "generates YAML list of tracker packages for ftracker report -f",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if count < 0 {
				return fmt.Errorf("count must not be negative")
			}
			if _, ok := training.Arity(code); code != "" && !ok {
				return fmt.Errorf("%w: %q", training.ErrUnknownTraining, code)
			}

			packages := make([]app.Package, 0, count)
			for i := 0; i < count; i++ {
				p := app.Package{Type: code}
				if p.Type == "" {
					p.Type = random.TrainingCode()
				}
				p.Data = random.TrainingData(p.Type)
				packages = append(packages, p)
			}

			out, err := yaml.Marshal(packages)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	}
	cmd.Flags().IntVarP(&count, "count", "n", 3, "number of packages")
	cmd.Flags().StringVarP(&code, "type", "t", "", "training type code, random when empty")
	return cmd
}
