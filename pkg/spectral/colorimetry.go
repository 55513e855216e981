package spectral

// xyz is a color in the device-independent CIE XYZ space, the intermediate
// step between spectral data and displayable RGB.
type xyz struct {
	x, y, z float32
}

// xyzToRGBMatrix converts a CIE XYZ color to linear sRGB. Gamma correction
// is deliberately not applied; accumulated frames must stay linear.
var xyzToRGBMatrix = [3][3]float32{
	{2.041369, -0.5649464, -0.3446944},
	{-0.969266, 1.8760108, 0.0415560},
	{0.0134474, -0.1183897, 1.0154096},
}

// ToRGB integrates the distribution against the CIE XYZ lookup table and
// converts the result to linear sRGB. Each sample's table entry is weighted
// by the sample intensity and by 1/N before summation, so the result scales
// with average rather than total energy. The table and matrix are fixed;
// identical inputs reproduce identical outputs bit for bit.
func (d *Distribution) ToRGB() (r, g, b float32) {
	step := d.Step()
	invN := 1.0 / float32(d.n)

	var sum xyz
	for i := 0; i < d.n; i++ {
		wavelength := d.lower + step*float32(i)
		entry := wavelengthToXYZ(wavelength)
		weight := d.samples[i] * invN
		sum.x += entry.x * weight
		sum.y += entry.y * weight
		sum.z += entry.z * weight
	}

	m := &xyzToRGBMatrix
	r = m[0][0]*sum.x + m[0][1]*sum.y + m[0][2]*sum.z
	g = m[1][0]*sum.x + m[1][1]*sum.y + m[1][2]*sum.z
	b = m[2][0]*sum.x + m[2][1]*sum.y + m[2][2]*sum.z
	return r, g, b
}

// wavelengthToXYZ computes the CIE XYZ color of a single light wavelength
// in nanometers. Wavelengths between table entries are linearly
// interpolated; anything outside the visible 380-780 nm range is black.
func wavelengthToXYZ(wavelength float32) xyz {
	if wavelength < 380.0 || wavelength > 780.0 {
		return xyz{}
	}

	position := (wavelength - 380.0) / 5.0
	index := int(position)
	frac := position - float32(index)

	lower := wavelengthToXYZTable[index]
	if frac == 0 {
		return lower
	}

	upper := wavelengthToXYZTable[index+1]
	return xyz{
		x: lower.x*(1-frac) + upper.x*frac,
		y: lower.y*(1-frac) + upper.y*frac,
		z: lower.z*(1-frac) + upper.z*frac,
	}
}

// wavelengthToXYZTable maps light wavelengths to the CIE XYZ color space,
// sampled at 5-nanometer intervals from 380 nm to 780 nm (81 entries).
var wavelengthToXYZTable = [81]xyz{
	{0.00016, 0.000017, 0.000705}, // 380nm
	{0.000662, 0.000072, 0.002928},
	{0.002362, 0.000253, 0.010482},
	{0.007242, 0.000769, 0.032344},
	{0.01911, 0.002004, 0.086011}, // 400nm
	{0.0434, 0.004509, 0.197120},
	{0.084736, 0.008756, 0.389366},
	{0.140638, 0.014456, 0.656760},
	{0.204492, 0.021391, 0.972542},
	{0.264737, 0.029497, 1.28250},
	{0.314679, 0.038676, 1.55348},
	{0.357719, 0.049602, 1.79850},
	{0.383734, 0.062077, 1.96728},
	{0.386726, 0.074704, 2.02730},
	{0.370702, 0.089456, 1.99480}, // 450nm
	{0.342957, 0.106256, 1.90070},
	{0.302273, 0.128201, 1.74537},
	{0.254085, 0.152761, 1.55490},
	{0.195618, 0.18519, 1.31756},
	{0.132349, 0.21994, 1.03020},
	{0.080507, 0.253589, 0.772125},
	{0.041072, 0.297665, 0.570060},
	{0.016172, 0.339133, 0.415254},
	{0.005132, 0.395379, 0.302356},
	{0.003816, 0.460777, 0.218502}, // 500nm
	{0.015444, 0.53136, 0.159249},
	{0.037465, 0.606741, 0.112044},
	{0.071358, 0.68566, 0.082248},
	{0.117749, 0.761757, 0.060709},
	{0.172953, 0.82333, 0.043050},
	{0.236491, 0.875211, 0.030451},
	{0.304213, 0.92381, 0.020584},
	{0.376772, 0.961988, 0.013676},
	{0.451584, 0.9822, 0.007918},
	{0.529826, 0.991761, 0.003988}, // 550nm
	{0.616053, 0.99911, 0.001091},
	{0.705224, 0.99734, 0.000000},
	{0.793832, 0.98238, 0.000000},
	{0.878655, 0.955552, 0.000000},
	{0.951162, 0.915175, 0.000000},
	{1.01416, 0.868934, 0.000000},
	{1.0743, 0.825623, 0.000000},
	{1.11852, 0.777405, 0.000000},
	{1.1343, 0.720353, 0.000000},
	{1.12399, 0.658341, 0.000000}, // 600nm
	{1.0891, 0.593878, 0.000000},
	{1.03048, 0.527963, 0.000000},
	{0.95074, 0.461834, 0.000000},
	{0.856297, 0.398057, 0.000000},
	{0.75493, 0.339554, 0.000000},
	{0.647467, 0.283493, 0.000000},
	{0.53511, 0.228254, 0.000000},
	{0.431567, 0.179828, 0.000000},
	{0.34369, 0.140211, 0.000000},
	{0.268329, 0.107633, 0.000000}, // 650nm
	{0.2043, 0.081187, 0.000000},
	{0.152568, 0.060281, 0.000000},
	{0.11221, 0.044096, 0.000000},
	{0.081261, 0.0318, 0.000000},
	{0.05793, 0.022602, 0.000000},
	{0.040851, 0.015905, 0.000000},
	{0.028623, 0.01113, 0.000000},
	{0.019941, 0.007749, 0.000000},
	{0.013842, 0.005375, 0.000000},
	{0.009577, 0.003718, 0.000000}, // 700nm
	{0.006605, 0.002565, 0.000000},
	{0.004553, 0.001768, 0.000000},
	{0.003145, 0.001222, 0.000000},
	{0.002175, 0.000846, 0.000000},
	{0.001506, 0.000586, 0.000000},
	{0.001045, 0.000407, 0.000000},
	{0.000727, 0.000284, 0.000000},
	{0.000508, 0.000199, 0.000000},
	{0.000356, 0.00014, 0.000000},
	{0.000251, 0.000098, 0.000000}, // 750nm
	{0.000178, 0.00007, 0.000000},
	{0.000126, 0.00005, 0.000000},
	{0.00009, 0.000036, 0.000000},
	{0.000065, 0.000025, 0.000000},
	{0.000046, 0.000018, 0.000000},
	{0.000033, 0.000013, 0.000000}, // 780nm
}
