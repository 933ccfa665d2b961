// Package app ties dispatch, calculation and reporting together.
package app

import (
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/Yandex-Practicum/go-ftracker/internal/training"
)

type Options struct {
	// KeepGoing reports the remaining packages after a failed one.
	KeepGoing bool
}

// Report computes the training described by p.
func Report(p Package) (training.InfoMessage, error) {
	c, err := training.ReadPackage(p.Type, p.Data)
	if err != nil {
		return training.InfoMessage{}, err
	}
	return training.ShowTrainingInfo(c)
}

// Process writes one report line per package to w, in input order.
// It stops at the first failed package unless opts.KeepGoing is set, in
// which case all failures are returned joined.
func Process(w io.Writer, packages []Package, opts Options) error {
	var errs []error
	for i, p := range packages {
		info, err := Report(p)
		if err != nil {
			err = fmt.Errorf("package #%d (%s): %w", i+1, p.Type, err)
			if !opts.KeepGoing {
				return err
			}
			zap.S().Warnw("skipping package", "index", i+1, "type", p.Type, "error", err)
			errs = append(errs, err)
			continue
		}

		zap.S().Debugw("training calculated", "index", i+1, "type", p.Type, "calories", info.Calories)
		if _, err := fmt.Fprintln(w, info.Message()); err != nil {
			return fmt.Errorf("writing report: %w", err)
		}
	}
	return errors.Join(errs...)
}
