package species

import "fmt"

// ChannelFamily selects one of the four stored radial-function families.
type ChannelFamily int

const (
	Density ChannelFamily = iota
	DensityDerivative
	Laplacian
	KineticEnergyDensity
)

var channelNames = map[ChannelFamily]string{
	Density:              "dens",
	DensityDerivative:    "d_dens",
	Laplacian:            "lapl",
	KineticEnergyDensity: "ked",
}

func (f ChannelFamily) String() string {
	if name, ok := channelNames[f]; ok {
		return name
	}
	return fmt.Sprintf("ChannelFamily(%d)", int(f))
}

// ParseChannelFamily maps a channel name ("dens", "d_dens", "lapl",
// "ked") to its ChannelFamily.
func ParseChannelFamily(name string) (ChannelFamily, error) {
	for f, n := range channelNames {
		if n == name {
			return f, nil
		}
	}
	return 0, fmt.Errorf("unknown channel family %q", name)
}

// Spin selects a spin variant of a channel family.
type Spin int

const (
	SpinAlpha Spin = iota
	SpinBeta
	SpinTotal
	SpinMagnetization
)

var spinNames = map[Spin]string{
	SpinAlpha:         "a",
	SpinBeta:          "b",
	SpinTotal:         "ab",
	SpinMagnetization: "m",
}

func (s Spin) String() string {
	if name, ok := spinNames[s]; ok {
		return name
	}
	return fmt.Sprintf("Spin(%d)", int(s))
}

// ParseSpin maps a spin name ("a", "b", "ab", "m") to its Spin.
func ParseSpin(name string) (Spin, error) {
	for s, n := range spinNames {
		if n == name {
			return s, nil
		}
	}
	return 0, fmt.Errorf("unknown spin %q", name)
}
