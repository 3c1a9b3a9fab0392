package breakout

// Particle is a short-lived visual spark used for impact bursts and the
// ball trail. Particles shrink every tick and shift from orange toward red
// as they age.
type Particle struct {
	X, Y     float64
	VX, VY   float64
	Size     float64
	Lifetime int
	R, G     uint8 // Blue stays 0; color drifts toward pure red
}

// Particle tuning.
const (
	particleLifetime = 50
	particleShrink   = 0.2
	burstCount       = 10
)

// NewParticle creates a particle at (x, y) with randomized velocity, size
// and warm color.
func NewParticle(x, y float64, rng *Rand) *Particle {
	return &Particle{
		X:        x,
		Y:        y,
		VX:       rng.FloatRange(-1.5, 1.5),
		VY:       rng.FloatRange(-2, 0),
		Size:     float64(rng.IntRange(5, 10)),
		Lifetime: particleLifetime,
		R:        uint8(rng.IntRange(200, 255)),
		G:        uint8(rng.IntRange(100, 200)),
	}
}

// Update advances the particle one tick: move, shrink, age, redden.
func (p *Particle) Update() {
	p.X += p.VX
	p.Y += p.VY
	p.Size -= particleShrink
	if p.Size < 0 {
		p.Size = 0
	}
	p.Lifetime--

	if p.R < 250 {
		p.R += 5
	} else {
		p.R = 255
	}
	if p.G > 5 {
		p.G -= 5
	} else {
		p.G = 0
	}
}

// Alive reports whether the particle should stay in the active set.
func (p *Particle) Alive() bool {
	return p.Lifetime > 0 && p.Size > 0
}

// SpawnBurst appends a burst of particles around (x, y) to dst.
func SpawnBurst(dst []*Particle, x, y float64, rng *Rand) []*Particle {
	for i := 0; i < burstCount; i++ {
		dst = append(dst, NewParticle(x, y, rng))
	}
	return dst
}

// UpdateParticles advances all particles and filters out dead ones in place.
func UpdateParticles(ps []*Particle) []*Particle {
	active := ps[:0]
	for _, p := range ps {
		p.Update()
		if p.Alive() {
			active = append(active, p)
		}
	}
	return active
}

// Fragment is a falling shard of a destroyed brick. It shrinks by its decay
// rate every tick and disappears when either dimension reaches zero.
type Fragment struct {
	X, Y   float64
	VX, VY float64
	W, H   float64
	Decay  float64
}

// NewFragment creates a shard from a brick's body with randomized size,
// velocity and decay.
func NewFragment(b *Brick, rng *Rand) *Fragment {
	return &Fragment{
		X:     rng.FloatRange(b.Rect.X, b.Rect.Right()),
		Y:     rng.FloatRange(b.Rect.Y, b.Rect.Bottom()),
		VX:    rng.FloatRange(-1, 1),
		VY:    rng.FloatRange(1, 3),
		W:     rng.FloatRange(BrickW/4, BrickW/2),
		H:     rng.FloatRange(BrickH/4, BrickH/2),
		Decay: rng.FloatRange(0.05, 0.1),
	}
}

// Update advances the fragment one tick.
func (f *Fragment) Update() {
	f.X += f.VX
	f.Y += f.VY
	f.W -= f.Decay
	f.H -= f.Decay
	if f.W < 0 {
		f.W = 0
	}
	if f.H < 0 {
		f.H = 0
	}
}

// Alive reports whether the fragment is still visible.
func (f *Fragment) Alive() bool {
	return f.W > 0 && f.H > 0
}

// SpawnFragments appends 4 to 10 shards of the given brick to dst.
func SpawnFragments(dst []*Fragment, b *Brick, rng *Rand) []*Fragment {
	count := rng.IntRange(4, 10)
	for i := 0; i < count; i++ {
		dst = append(dst, NewFragment(b, rng))
	}
	return dst
}

// UpdateFragments advances all fragments and filters out dead ones in place.
func UpdateFragments(fs []*Fragment) []*Fragment {
	active := fs[:0]
	for _, f := range fs {
		f.Update()
		if f.Alive() {
			active = append(active, f)
		}
	}
	return active
}
