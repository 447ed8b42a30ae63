package ising

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("MagnetizationScan", func() {
	var (
		lat *Lattice
		sim *Simulator
	)

	BeforeEach(func() {
		var err error
		lat, err = NewRandom(8, 8, 1, newTestRand(42))
		Expect(err).NotTo(HaveOccurred())
		sim = New(lat, Params{Coupling: Uniform(1), Boltzmann: 1, Seed: 42})
	})

	It("returns one average per temperature, index-aligned", func() {
		temps := []float64{0.5, 1.0, 2.0, 4.0}
		got, err := sim.MagnetizationScan(context.Background(), temps, 20, Periodic)
		Expect(err).NotTo(HaveOccurred())
		Expect(got).To(HaveLen(len(temps)))
	})

	It("gives every run a private lattice copy", func() {
		before := append([]float64(nil), lat.Spins()...)

		_, err := sim.MagnetizationScan(context.Background(), []float64{1, 2, 3}, 50, Periodic)
		Expect(err).NotTo(HaveOccurred())
		Expect(lat.Spins()).To(Equal(before), "scan must not mutate the shared lattice")
	})

	It("is reproducible for a fixed seed", func() {
		temps := []float64{0.5, 1.5, 3.0}

		first, err := sim.MagnetizationScan(context.Background(), temps, 30, Periodic)
		Expect(err).NotTo(HaveOccurred())

		again, err := sim.MagnetizationScan(context.Background(), temps, 30, Periodic)
		Expect(err).NotTo(HaveOccurred())
		Expect(again).To(Equal(first))
	})

	It("matches a sequential single-temperature run", func() {
		temps := []float64{2.5}
		got, err := sim.MagnetizationScan(context.Background(), temps, 25, Open)
		Expect(err).NotTo(HaveOccurred())

		seq := New(lat.Clone(), Params{Coupling: Uniform(1), Boltzmann: 1, Seed: 42 + 1})
		want, err := seq.MagnetizationAt(2.5, 25, Open)
		Expect(err).NotTo(HaveOccurred())
		Expect(got[0]).To(Equal(want))
	})

	It("rejects sweep counts below 1 before starting any run", func() {
		_, err := sim.MagnetizationScan(context.Background(), []float64{1}, 0, Periodic)
		Expect(err).To(MatchError(ErrInvalidSweepCount))
	})

	It("rejects invalid boundary selectors before starting any run", func() {
		before := append([]float64(nil), lat.Spins()...)

		_, err := sim.MagnetizationScan(context.Background(), []float64{1}, 10, Boundary(99))
		Expect(err).To(MatchError(ErrInvalidBoundary))
		Expect(lat.Spins()).To(Equal(before))
	})

	It("stops when the context is cancelled", func() {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := sim.MagnetizationScan(ctx, []float64{1, 2}, 10, Periodic)
		Expect(err).To(MatchError(context.Canceled))
	})

	It("handles an empty temperature list", func() {
		got, err := sim.MagnetizationScan(context.Background(), nil, 10, Periodic)
		Expect(err).NotTo(HaveOccurred())
		Expect(got).To(BeEmpty())
	})
})
