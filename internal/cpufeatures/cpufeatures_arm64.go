//go:build arm64

package cpufeatures

// All arm64 platforms Go supports have NEON.
func detectImpl() Features {
	return Features{NEON: true}
}
