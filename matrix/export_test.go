// SPDX-License-Identifier: MIT
package matrix

// GatherOptions_TestOnly exposes the resolved (eps, rcond) pair.
func GatherOptions_TestOnly(opts ...Option) (eps, rcond float64) {
	o := gatherOptions(opts...)

	return o.eps, o.rcond
}

// ValidatesNaNInf_TestOnly reports the numeric policy carried by m.
func ValidatesNaNInf_TestOnly(m *Dense) bool { return m.validateNaNInf }
