package synastry

import "github.com/sankalpsthakur/astronova/pkg/astro"

// elementAffinity scores element pairs in [0, 1]. Same element is a
// perfect match; fire/air and earth/water support each other; the rest
// sit low. The matrix is symmetric.
var elementAffinity = map[astro.Element]map[astro.Element]float64{
	astro.Fire: {
		astro.Fire: 1.0, astro.Air: 0.8, astro.Earth: 0.25, astro.Water: 0.2,
	},
	astro.Earth: {
		astro.Earth: 1.0, astro.Water: 0.8, astro.Fire: 0.25, astro.Air: 0.3,
	},
	astro.Air: {
		astro.Air: 1.0, astro.Fire: 0.8, astro.Earth: 0.3, astro.Water: 0.3,
	},
	astro.Water: {
		astro.Water: 1.0, astro.Earth: 0.8, astro.Fire: 0.2, astro.Air: 0.3,
	},
}

// modalityAffinity scores modality pairs in [0, 1]. Symmetric.
var modalityAffinity = map[astro.Modality]map[astro.Modality]float64{
	astro.Cardinal: {
		astro.Cardinal: 1.0, astro.Fixed: 0.5, astro.Mutable: 0.6,
	},
	astro.Fixed: {
		astro.Fixed: 1.0, astro.Cardinal: 0.5, astro.Mutable: 0.4,
	},
	astro.Mutable: {
		astro.Mutable: 1.0, astro.Cardinal: 0.6, astro.Fixed: 0.4,
	},
}

// elementShare weights the element relationship over the modality one
// when blending the two into a sign affinity.
const elementShare = 0.6

// SignAffinity scores a sign pair in [0, 1] from the element and
// modality tables. Identical signs always score 1.
func SignAffinity(a, b astro.Sign) float64 {
	elem := elementAffinity[a.Element()][b.Element()]
	mod := modalityAffinity[a.Modality()][b.Modality()]
	return elementShare*elem + (1-elementShare)*mod
}
