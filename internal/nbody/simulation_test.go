package nbody_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/orbitlab/internal/nbody"
)

var _ = Describe("Simulation", func() {
	var sim *nbody.Simulation

	BeforeEach(func() {
		sim = nbody.New()
	})

	Describe("construction", func() {
		It("starts empty, at t=0, running, with the default G", func() {
			Expect(sim.Len()).To(BeZero())
			Expect(sim.Time()).To(BeZero())
			Expect(sim.Running()).To(BeTrue())
			Expect(sim.G()).To(Equal(nbody.DefaultG))
			Expect(sim.Method()).To(Equal(nbody.SemiImplicitEuler))
		})
	})

	Describe("AddBody", func() {
		It("appends bodies in order", func() {
			Expect(sim.AddBody(1, nbody.Vec3{1, 0, 0}, nbody.Vec3{0, 1, 0})).To(Succeed())
			Expect(sim.AddBody(2, nbody.Vec3{-1, 0, 0}, nbody.Vec3{0, -1, 0})).To(Succeed())
			Expect(sim.Len()).To(Equal(2))

			b, err := sim.Body(1)
			Expect(err).NotTo(HaveOccurred())
			Expect(b.Mass).To(Equal(2.0))
			Expect(b.Pos).To(Equal(nbody.Vec3{-1, 0, 0}))
		})

		It("rejects non-positive mass", func() {
			Expect(sim.AddBody(0, nbody.Vec3{}, nbody.Vec3{})).To(MatchError(nbody.ErrNonPositiveMass))
			Expect(sim.AddBody(-1, nbody.Vec3{}, nbody.Vec3{})).To(MatchError(nbody.ErrNonPositiveMass))
			Expect(sim.Len()).To(BeZero())
		})
	})

	Describe("SetBody", func() {
		BeforeEach(func() {
			Expect(sim.AddBody(1, nbody.Vec3{1, 0, 0}, nbody.Vec3{})).To(Succeed())
			Expect(sim.AddBody(1, nbody.Vec3{2, 0, 0}, nbody.Vec3{})).To(Succeed())
		})

		It("replaces the body in place", func() {
			Expect(sim.SetBody(1, 5, nbody.Vec3{0, 3, 0}, nbody.Vec3{0, 0, 1})).To(Succeed())
			b, _ := sim.Body(1)
			Expect(b).To(Equal(nbody.Body{Mass: 5, Pos: nbody.Vec3{0, 3, 0}, Vel: nbody.Vec3{0, 0, 1}}))
		})

		It("fails with ErrOutOfRange and leaves all bodies unchanged", func() {
			before := sim.Bodies()
			Expect(sim.SetBody(2, 5, nbody.Vec3{}, nbody.Vec3{})).To(MatchError(nbody.ErrOutOfRange))
			Expect(sim.SetBody(-1, 5, nbody.Vec3{}, nbody.Vec3{})).To(MatchError(nbody.ErrOutOfRange))
			Expect(sim.Bodies()).To(Equal(before))
		})

		It("rejects non-positive mass without touching the body", func() {
			before, _ := sim.Body(0)
			Expect(sim.SetBody(0, 0, nbody.Vec3{9, 9, 9}, nbody.Vec3{})).To(MatchError(nbody.ErrNonPositiveMass))
			after, _ := sim.Body(0)
			Expect(after).To(Equal(before))
		})
	})

	Describe("RemoveBody", func() {
		BeforeEach(func() {
			Expect(sim.AddBody(1, nbody.Vec3{0, 0, 0}, nbody.Vec3{})).To(Succeed())
			Expect(sim.AddBody(2, nbody.Vec3{1, 0, 0}, nbody.Vec3{})).To(Succeed())
			Expect(sim.AddBody(3, nbody.Vec3{2, 0, 0}, nbody.Vec3{})).To(Succeed())
		})

		It("shifts later indices down by one", func() {
			Expect(sim.RemoveBody(1)).To(Succeed())
			Expect(sim.Len()).To(Equal(2))

			b, err := sim.Body(1)
			Expect(err).NotTo(HaveOccurred())
			Expect(b.Mass).To(Equal(3.0))
			Expect(b.Pos).To(Equal(nbody.Vec3{2, 0, 0}))
		})

		It("fails with ErrOutOfRange on a bad index", func() {
			Expect(sim.RemoveBody(3)).To(MatchError(nbody.ErrOutOfRange))
			Expect(sim.RemoveBody(-1)).To(MatchError(nbody.ErrOutOfRange))
			Expect(sim.Len()).To(Equal(3))
		})
	})

	Describe("diagnostics", func() {
		It("reports ErrEmptySystem for the center of mass of no bodies", func() {
			_, err := sim.CenterOfMass()
			Expect(err).To(MatchError(nbody.ErrEmptySystem))
		})

		It("reports a single body's own position as center of mass", func() {
			Expect(sim.AddBody(2.5, nbody.Vec3{3, -1, 2}, nbody.Vec3{1, 1, 1})).To(Succeed())
			com, err := sim.CenterOfMass()
			Expect(err).NotTo(HaveOccurred())
			Expect(com).To(Equal(nbody.Vec3{3, -1, 2}))
		})

		It("mass-weights the center of mass", func() {
			Expect(sim.AddBody(1, nbody.Vec3{0, 0, 0}, nbody.Vec3{})).To(Succeed())
			Expect(sim.AddBody(3, nbody.Vec3{4, 0, 0}, nbody.Vec3{})).To(Succeed())
			com, err := sim.CenterOfMass()
			Expect(err).NotTo(HaveOccurred())
			Expect(com[0]).To(BeNumerically("~", 3.0, 1e-12))
		})

		It("sums linear momentum over all bodies", func() {
			Expect(sim.AddBody(2, nbody.Vec3{}, nbody.Vec3{1, 0, 0})).To(Succeed())
			Expect(sim.AddBody(3, nbody.Vec3{}, nbody.Vec3{0, -1, 0})).To(Succeed())
			Expect(sim.LinearMomentum()).To(Equal(nbody.Vec3{2, -3, 0}))
		})

		It("returns the z component of angular momentum about the default frame", func() {
			// one unit mass on a unit circle at unit speed: L_z = 1
			Expect(sim.AddBody(1, nbody.Vec3{1, 0, 0}, nbody.Vec3{0, 1, 0})).To(Succeed())
			Expect(sim.AngularMomentum(nbody.ReferenceFrame{})).To(BeNumerically("~", 1.0, 1e-12))
		})

		It("measures angular momentum against the supplied frame", func() {
			Expect(sim.AddBody(1, nbody.Vec3{2, 0, 0}, nbody.Vec3{0, 1, 0})).To(Succeed())
			ref := nbody.ReferenceFrame{Pos: nbody.Vec3{1, 0, 0}}
			Expect(sim.AngularMomentum(ref)).To(BeNumerically("~", 1.0, 1e-12))
		})

		It("computes total energy as kinetic minus pairwise potential", func() {
			sim.SetG(2.0)
			Expect(sim.AddBody(1, nbody.Vec3{0, 0, 0}, nbody.Vec3{3, 0, 0})).To(Succeed())
			Expect(sim.AddBody(4, nbody.Vec3{2, 0, 0}, nbody.Vec3{0, 0, 0})).To(Succeed())
			// KE = 0.5*1*9 = 4.5, PE = 2*1*4/2 = 4
			Expect(sim.TotalEnergy()).To(BeNumerically("~", 0.5, 1e-12))
		})

		It("extracts positions by axis in body order", func() {
			Expect(sim.AddBody(1, nbody.Vec3{1, 2, 3}, nbody.Vec3{})).To(Succeed())
			Expect(sim.AddBody(1, nbody.Vec3{4, 5, 6}, nbody.Vec3{})).To(Succeed())
			xs, ys, zs := sim.PositionsByAxis()
			Expect(xs).To(Equal([]float64{1, 4}))
			Expect(ys).To(Equal([]float64{2, 5}))
			Expect(zs).To(Equal([]float64{3, 6}))
		})
	})

	Describe("run state", func() {
		It("toggles the running flag without touching anything else", func() {
			Expect(sim.AddBody(1, nbody.Vec3{1, 0, 0}, nbody.Vec3{})).To(Succeed())
			sim.SetRunning(false)
			Expect(sim.Running()).To(BeFalse())
			Expect(sim.Len()).To(Equal(1))
			Expect(sim.Time()).To(BeZero())
		})

		It("lets drivers adjust G between steps", func() {
			sim.SetG(1.25)
			Expect(sim.G()).To(Equal(1.25))
		})
	})
})
