//-------------------------------------------------------------------------
//
// Retail Analytics Dashboard
//
// Copyright (c) 2025 - 2026, Thant Thiha
// This software is released under The MIT License
//
//-------------------------------------------------------------------------

// Package datagen produces the synthetic five-file retail dataset.
package datagen

import (
	"time"

	"github.com/brianvoe/gofakeit/v7"
)

// Faker draws the random values the dataset generator needs from a
// single gofakeit source, so one seed fixes the whole dataset.
type Faker struct {
	faker *gofakeit.Faker
}

// NewFaker returns a faker seeded with seed. A zero seed takes the
// seed from the clock instead, giving a different dataset per run.
func NewFaker(seed int64) *Faker {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Faker{faker: gofakeit.New(uint64(seed))}
}

// Int draws an integer in [min, max].
func (f *Faker) Int(min, max int) int {
	return f.faker.IntRange(min, max)
}

// Float64 draws a float64 in [min, max].
func (f *Faker) Float64(min, max float64) float64 {
	return f.faker.Float64Range(min, max)
}

// Price draws a price in [min, max], rounded to cents.
func (f *Faker) Price(min, max float64) float64 {
	return f.faker.Price(min, max)
}

// Bool draws a coin flip.
func (f *Faker) Bool() bool {
	return f.faker.Bool()
}

// Choose draws one element of items uniformly. An empty slice yields
// the zero value.
func Choose[T any](f *Faker, items []T) T {
	if len(items) == 0 {
		var zero T
		return zero
	}
	return items[f.Int(0, len(items)-1)]
}

// ChooseWeighted draws one element of items with probability
// proportional to its weight. Empty input yields the zero value.
func ChooseWeighted[T any](f *Faker, items []T, weights []int) T {
	if len(items) == 0 || len(weights) == 0 {
		var zero T
		return zero
	}

	total := 0
	for _, w := range weights {
		total += w
	}

	r := f.Int(0, total-1)
	for i, w := range weights {
		if r < w {
			return items[i]
		}
		r -= w
	}
	return items[len(items)-1]
}
