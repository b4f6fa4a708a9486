package geodesic

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func eqish(x, y float64, prec int) bool {
	return math.Abs(x-y) < float64(1.0)/math.Pow10(prec)
}

type geodesicCase struct {
	lat1, lon1, azi1 float64
	lat2, lon2, azi2 float64
	s12, a12, m12    float64
	M12, M21, S12    float64
}

// Reference solutions on WGS84 with unrolled longitudes.
var geodesicCases = []geodesicCase{
	{35.60777, -139.44815, 111.098748429560326,
		-11.17491, -69.95921, 129.289270889708762,
		8935244.5604818305, 80.50729714281974, 6273170.2055303837,
		0.16606318447386067, 0.16479116945612937, 12841384694976.432},
	{55.52454, 106.05087, 22.020059880982801,
		77.03196, 197.18234, 109.112041110671519,
		4105086.1713924406, 36.892740690445894, 3828869.3344387607,
		0.80076349608092607, 0.80101006984201008, 61674961290615.615},
	{-21.97856, 142.59065, -32.44456876433189,
		41.84138, 98.56635, -41.84359951440466,
		8394328.894657671, 75.62930491011522, 6161154.5773110616,
		0.24816339233950381, 0.24930251203627892, -6637997720646.717},
	{-66.99028, 112.2363, 173.73491240878403,
		-12.70631, 285.90344, 2.512956620913668,
		11150344.2312080241, 100.278634181155759, 6289939.5670446687,
		-0.17199490274700385, -0.17722569526345708, -121287239862139.744},
	{-17.42761, 173.34268, -159.033557661192928,
		-15.84784, 5.93557, -20.787484651536988,
		16076603.1631180673, 144.640108810286253, 3732902.1583877189,
		-0.81273638700070476, -0.81299800519154474, 97825992354058.708},
	{32.84994, 48.28919, 150.492927788121982,
		-56.28556, 202.29132, 48.113449399816759,
		16727068.9438164461, 150.565799985466607, 3147838.1910180939,
		-0.87334918086923126, -0.86505036767110637, -72445258525585.010},
	{6.96833, 52.74123, 92.581585386317712,
		-7.39675, 206.17291, 90.721692165923907,
		17102477.2496958388, 154.147366239113561, 2772035.6169917581,
		-0.89991282520302447, -0.89986892177110739, -1311796973197.995},
	{-50.56724, -16.30485, -105.439679907590164,
		-33.56571, -94.97412, -47.348547835650331,
		6455670.5118668696, 58.083719495371259, 5409150.7979815838,
		0.53053508035997263, 0.52988722644436602, 41071447902810.047},
	{-58.93002, -8.90775, 140.965397902500679,
		-8.91104, 133.13503, 19.255429433416599,
		11756066.0219864627, 105.755691241406877, 6151101.2270708536,
		-0.26548622269867183, -0.27068483874510741, -86143460552774.735},
	{-68.82867, -74.28391, 93.774347763114881,
		-50.63005, -8.36685, 34.65564085411343,
		3956936.926063544, 35.572254987389284, 3708890.9544062657,
		0.81443963736383502, 0.81420859815358342, -41845309450093.787},
	{-10.62672, -32.0898, -86.426713286747751,
		5.883, -134.31681, -80.473780971034875,
		11470869.3864563009, 103.387395634504061, 6184411.6622659713,
		-0.23138683500430237, -0.23155097622286792, 4198803992123.548},
	{-21.76221, 166.90563, 29.319421206936428,
		48.72884, 213.97627, 43.508671946410168,
		9098627.3986554915, 81.963476716121964, 6299240.9166992283,
		0.13965943368590333, 0.14152969707656796, 10024709850277.476},
	{-19.79938, -174.47484, 71.167275780171533,
		-11.99349, -154.35109, 65.589099775199228,
		2319004.8601169389, 20.896611684802389, 2267960.8703918325,
		0.93427001867125849, 0.93424887135032789, -3935477535005.785},
	{-11.95887, -116.94513, 92.712619830452549,
		4.57352, 7.16501, 78.64960934409585,
		13834722.5801401374, 124.688684161089762, 5228093.177931598,
		-0.56879356755666463, -0.56918731952397221, -9919582785894.853},
	{-87.85331, 85.66836, -65.120313040242748,
		66.48646, 16.09921, -4.888658719272296,
		17286615.3147144645, 155.58592449699137, 2635887.4729110181,
		-0.90697975771398578, -0.91095608883042767, 42667211366919.534},
	{1.74708, 128.32011, -101.584843631173858,
		-11.16617, 11.87109, -86.325793296437476,
		12942901.1241347408, 116.650512484301857, 5682744.8413270572,
		-0.44857868222697644, -0.44824490340007729, 10763055294345.653},
	{-25.72959, -144.90758, -153.647468693117198,
		-57.70581, -269.17879, -48.343983158876487,
		9413446.7452453107, 84.664533838404295, 6356176.6898881281,
		0.09492245755254703, 0.09737058264766572, 74515122850712.444},
	{-41.22777, 122.32875, 14.285113402275739,
		-7.57291, 130.37946, 10.805303085187369,
		3812686.035106021, 34.34330804743883, 3588703.8812128856,
		0.82605222593217889, 0.82572158200920196, -2456961531057.857},
	{11.01307, 138.25278, 79.43682622782374,
		6.62726, 247.05981, 103.708090215522657,
		11911190.819018408, 107.341669954114577, 6070904.722786735,
		-0.29767608923657404, -0.29785143390252321, 17121631423099.696},
	{-29.47124, 95.14681, -163.779130441688382,
		-27.46601, -69.15955, -15.909335945554969,
		13487015.8381145492, 121.294026715742277, 5481428.9945736388,
		-0.51527225545373252, -0.51556587964721788, 104679964020340.318},
}

func TestInverseCases(t *testing.T) {
	for i, c := range geodesicCases {
		r := WGS84.Inverse(c.lat1, c.lon1, c.lat2, c.lon2, All|LongUnroll)
		assert.InDelta(t, c.lon2, r.Lon2, 1e-12, "case %d lon2", i)
		assert.InDelta(t, c.azi1, r.Azi1, 1e-12, "case %d azi1", i)
		assert.InDelta(t, c.azi2, r.Azi2, 1e-12, "case %d azi2", i)
		assert.InDelta(t, c.s12, r.S12, 1e-7, "case %d s12", i)
		assert.InDelta(t, c.a12, r.A12, 1e-12, "case %d a12", i)
		assert.InDelta(t, c.m12, r.ReducedLength, 1e-7, "case %d m12", i)
		assert.InDelta(t, c.M12, r.M12, 1e-14, "case %d M12", i)
		assert.InDelta(t, c.M21, r.M21, 1e-14, "case %d M21", i)
		assert.InDelta(t, c.S12, r.Area, 0.1, "case %d S12", i)
	}
}

func TestDirectCases(t *testing.T) {
	for i, c := range geodesicCases {
		r := WGS84.Direct(c.lat1, c.lon1, c.azi1, c.s12, All|LongUnroll)
		assert.InDelta(t, c.lat2, r.Lat2, 1e-12, "case %d lat2", i)
		assert.InDelta(t, c.lon2, r.Lon2, 1e-12, "case %d lon2", i)
		assert.InDelta(t, c.azi2, r.Azi2, 1e-12, "case %d azi2", i)
		assert.InDelta(t, c.a12, r.A12, 1e-12, "case %d a12", i)
		assert.InDelta(t, c.m12, r.ReducedLength, 1e-7, "case %d m12", i)
		assert.InDelta(t, c.M12, r.M12, 1e-14, "case %d M12", i)
		assert.InDelta(t, c.M21, r.M21, 1e-14, "case %d M21", i)
		assert.InDelta(t, c.S12, r.Area, 0.1, "case %d S12", i)
	}
}

func TestArcDirectCases(t *testing.T) {
	for i, c := range geodesicCases {
		r := WGS84.ArcDirect(c.lat1, c.lon1, c.azi1, c.a12, All|LongUnroll)
		assert.InDelta(t, c.lat2, r.Lat2, 1e-12, "case %d lat2", i)
		assert.InDelta(t, c.lon2, r.Lon2, 1e-12, "case %d lon2", i)
		assert.InDelta(t, c.azi2, r.Azi2, 1e-12, "case %d azi2", i)
		assert.InDelta(t, c.s12, r.S12, 1e-7, "case %d s12", i)
		assert.InDelta(t, c.m12, r.ReducedLength, 1e-7, "case %d m12", i)
		assert.InDelta(t, c.M12, r.M12, 1e-14, "case %d M12", i)
		assert.InDelta(t, c.M21, r.M21, 1e-14, "case %d M21", i)
		assert.InDelta(t, c.S12, r.Area, 0.1, "case %d S12", i)
	}
}

func TestNewEllipsoid(t *testing.T) {
	e, err := NewEllipsoid(6378137, 1/298.257223563)
	require.NoError(t, err)
	assert.Equal(t, 6378137.0, e.Radius())
	assert.InDelta(t, 6356752.314245, e.MinorRadius(), 1e-6)
	assert.False(t, e.Spherical())
	// Earth's surface area, about 510 million km^2
	assert.InDelta(t, 5.10065621724e14, e.EllipsoidArea(), 1e4)

	for _, bad := range [][2]float64{
		{0, 0}, {-1, 0}, {math.NaN(), 0}, {math.Inf(1), 0},
		{6378137, 1}, {6378137, 2}, {6378137, math.NaN()},
	} {
		_, err := NewEllipsoid(bad[0], bad[1])
		require.Error(t, err, "a=%v f=%v", bad[0], bad[1])
		assert.ErrorIs(t, err, ErrInvalidEllipsoid)
	}
	assert.Panics(t, func() { MustEllipsoid(-1, 0) })

	// prolate is allowed
	_, err = NewEllipsoid(6.4e6, -1/150.0)
	assert.NoError(t, err)
}

func TestInverseGeodSolve(t *testing.T) {
	r := WGS84.Inverse(40.6, -73.8, 49.01666667, 2.55, Standard)
	assert.InDelta(t, 53.47022, r.Azi1, 0.5e-5)
	assert.InDelta(t, 111.59367, r.Azi2, 0.5e-5)
	assert.InDelta(t, 5853226, r.S12, 0.5)

	// short line
	r = WGS84.Inverse(36.493349428792, 0, 36.49334942879201, .0000008, Standard)
	assert.InDelta(t, 0.072, r.S12, 0.5e-3)

	// nearly antipodal
	for _, c := range []struct{ lat1, lat2, lon2, s12 float64 }{
		{88.202499451857, -88.202499451857, 179.981022032992859592, 20003898.214},
		{89.262080389218, -89.262080389218, 179.992207982775375662, 20003925.854},
		{89.333123580033, -89.333123580032997687, 179.99295812360148422, 20003926.881},
		{56.320923501171, -56.320923501171, 179.664747671772880215, 19993558.287},
		{52.784459512564, -52.784459512563990912, 179.634407464943777557, 19991596.095},
		{48.522876735459, -48.52287673545898293, 179.599720456223079643, 19989144.774},
	} {
		r = WGS84.Inverse(c.lat1, 0, c.lat2, c.lon2, Distance)
		assert.InDelta(t, c.s12, r.S12, 0.5e-3)
	}

	// Wellington to Salamanca
	r = WGS84.Inverse(-(41 + 19/60.0), 174+49/60.0, 40+58/60.0, -(5 + 30/60.0), Standard)
	assert.InDelta(t, 160.39137649664, r.Azi1, 0.5e-11)
	assert.InDelta(t, 19.50042925176, r.Azi2, 0.5e-11)
	assert.InDelta(t, 19960543.857179, r.S12, 0.5e-6)

	r = WGS84.Inverse(27.2, 0.0, -27.1, 179.5, Standard)
	assert.InDelta(t, 45.82468716758, r.Azi1, 0.5e-11)
	assert.InDelta(t, 134.22776532670, r.Azi2, 0.5e-11)
	assert.InDelta(t, 19974354.765767, r.S12, 0.5e-6)

	// points close with longitudes close to 180 apart
	r = WGS84.Inverse(5, 0.00000000000001, 10, 180, Standard)
	assert.InDelta(t, 0.000000000000035, r.Azi1, 1.5e-14)
	assert.InDelta(t, 179.99999999999996, r.Azi2, 1.5e-14)
	assert.InDelta(t, 18345191.174332713, r.S12, 4e-9)

	r = WGS84.Inverse(54.1589, 15.3872, 54.1591, 15.3877, All)
	assert.InDelta(t, 55.723110355, r.Azi1, 5e-9)
	assert.InDelta(t, 55.723515675, r.Azi2, 5e-9)
	assert.InDelta(t, 39.527686385, r.S12, 5e-9)
	assert.InDelta(t, 0.000355495, r.A12, 5e-9)
	assert.InDelta(t, 39.527686385, r.ReducedLength, 5e-9)
	assert.InDelta(t, 0.999999995, r.M12, 5e-9)
	assert.InDelta(t, 0.999999995, r.M21, 5e-9)
	assert.InDelta(t, 286698586.30197, r.Area, 5e-4)
}

func TestInverseEquatorial(t *testing.T) {
	prolate300 := MustEllipsoid(6.4e6, -1/300.0)
	sphere := MustEllipsoid(6.4e6, 0)
	for _, c := range []struct {
		e               *Ellipsoid
		lat2, lon2      float64
		azi1, azi2, s12 float64
		absAzi2         bool
	}{
		{WGS84, 0, 179, 90, 90, 19926189, false},
		{WGS84, 0, 179.5, 55.96650, 124.03350, 19980862, false},
		{WGS84, 0, 180, 0, 180, 20003931, true},
		{WGS84, 1, 180, 0, 180, 19893357, true},
		{sphere, 0, 179, 90, 90, 19994492, false},
		{sphere, 0, 180, 0, 180, 20106193, true},
		{sphere, 1, 180, 0, 180, 19994492, true},
		{prolate300, 0, 179, 90, 90, 19994492, false},
		{prolate300, 0, 180, 90, 90, 20106193, false},
		{prolate300, 0.5, 180, 33.02493, 146.97364, 20082617, false},
		{prolate300, 1, 180, 0, 180, 20027270, true},
	} {
		r := c.e.Inverse(0, 0, c.lat2, c.lon2, Standard)
		assert.InDelta(t, c.azi1, r.Azi1, 0.5e-5, "lat2=%v lon2=%v", c.lat2, c.lon2)
		azi2 := r.Azi2
		if c.absAzi2 {
			azi2 = math.Abs(azi2)
		}
		assert.InDelta(t, c.azi2, azi2, 0.5e-5, "lat2=%v lon2=%v", c.lat2, c.lon2)
		assert.InDelta(t, c.s12, r.S12, 0.5, "lat2=%v lon2=%v", c.lat2, c.lon2)
	}
}

func TestInverseEccentric(t *testing.T) {
	prolate := MustEllipsoid(6.4e6, -1/150.0)
	r := prolate.Inverse(0.07476, 0, -0.07476, 180, Standard)
	assert.InDelta(t, 90.00078, r.Azi1, 0.5e-5)
	assert.InDelta(t, 90.00078, r.Azi2, 0.5e-5)
	assert.InDelta(t, 20106193, r.S12, 0.5)
	r = prolate.Inverse(0.1, 0, -0.1, 180, Standard)
	assert.InDelta(t, 90.00105, r.Azi1, 0.5e-5)
	assert.InDelta(t, 90.00105, r.Azi2, 0.5e-5)
	assert.InDelta(t, 20106193, r.S12, 0.5)

	extreme := MustEllipsoid(89.8, -1.83)
	r = extreme.Inverse(0, 0, -10, 160, Standard)
	assert.InDelta(t, 120.27, r.Azi1, 1e-2)
	assert.InDelta(t, 105.15, r.Azi2, 1e-2)
	assert.InDelta(t, 266.7, r.S12, 1e-1)

	r = prolate.Direct(1, 2, 3, 4, Area)
	assert.InDelta(t, 23700, r.Area, 0.5)

	sphere := MustEllipsoid(6.4e6, 0)
	r = sphere.Inverse(1, 2, 3, 4, Area)
	assert.InDelta(t, 49911046115.0, r.Area, 0.5)

	oblate := MustEllipsoid(6.4e6, 0.1)
	r = oblate.Direct(1, 2, 10, 5e6, Standard)
	assert.InDelta(t, 48.55570690, r.A12, 0.5e-8)
}

func TestInverseNaN(t *testing.T) {
	for _, c := range [][4]float64{
		{0, 0, 1, math.NaN()},
		{math.NaN(), 0, 0, 90},
		{math.NaN(), 0, 90, 3},
		{0, math.Inf(1), 0, 0},
	} {
		r := WGS84.Inverse(c[0], c[1], c[2], c[3], All)
		assert.True(t, math.IsNaN(r.Azi1))
		assert.True(t, math.IsNaN(r.Azi2))
		assert.True(t, math.IsNaN(r.S12))
		assert.True(t, math.IsNaN(r.A12))
		assert.True(t, math.IsNaN(r.Lat1))
		assert.True(t, math.IsNaN(r.Area))
	}
}

func TestInverseMask(t *testing.T) {
	r := WGS84.Inverse(10, 20, 30, 40, Distance)
	assert.False(t, math.IsNaN(r.S12))
	assert.False(t, math.IsNaN(r.A12))
	assert.True(t, math.IsNaN(r.Azi1))
	assert.True(t, math.IsNaN(r.ReducedLength))
	assert.True(t, math.IsNaN(r.M12))
	assert.True(t, math.IsNaN(r.Area))
	assert.Equal(t, 10.0, r.Lat1)
	assert.Equal(t, 40.0, r.Lon2)

	// outputs sharing a series do not alias each other
	r = WGS84.Inverse(10, 20, 30, 40, ReducedLength)
	assert.False(t, math.IsNaN(r.ReducedLength))
	assert.True(t, math.IsNaN(r.S12))
	assert.True(t, math.IsNaN(r.M12))
}

func TestInverseCoincident(t *testing.T) {
	for _, p := range [][2]float64{{10, 20}, {0, 0}, {-45, 170}, {90, 0}, {-90, 30}} {
		r := WGS84.Inverse(p[0], p[1], p[0], p[1], All)
		assert.Equal(t, 0.0, r.S12)
		assert.Equal(t, 0.0, r.A12)
		assert.Equal(t, 0.0, r.ReducedLength)
		assert.Equal(t, r.Azi1, r.Azi2)
		assert.True(t, r.Azi1 == 0 || r.Azi1 == 180, "azi1 = %v", r.Azi1)
		assert.InDelta(t, 1, r.M12, 1e-15)
	}
}

func TestInverseLongUnroll(t *testing.T) {
	r := WGS84.Inverse(0, 539, 0, 181, Standard)
	assert.InDelta(t, 179, r.Lon1, 1e-10)
	assert.InDelta(t, -179, r.Lon2, 1e-10)
	assert.InDelta(t, 222639, r.S12, 0.5)
	r = WGS84.Inverse(0, 539, 0, 181, Standard|LongUnroll)
	assert.InDelta(t, 539, r.Lon1, 1e-10)
	assert.InDelta(t, 541, r.Lon2, 1e-10)
	assert.InDelta(t, 222639, r.S12, 0.5)
}

func TestInverseSymmetry(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 2000; i++ {
		lat1 := rng.Float64()*180 - 90
		lon1 := rng.Float64()*360 - 180
		lat2 := rng.Float64()*180 - 90
		lon2 := rng.Float64()*360 - 180
		fwd := WGS84.Inverse(lat1, lon1, lat2, lon2, All)
		rev := WGS84.Inverse(lat2, lon2, lat1, lon1, All)
		assert.InDelta(t, fwd.S12, rev.S12, 1e-6)
		assert.GreaterOrEqual(t, fwd.S12, 0.0)
		// the reversed path arrives at point 1 heading back along azi1
		assert.InDelta(t, 0, angNormalize(fwd.Azi1-(rev.Azi2+180)), 1e-12)
		assert.InDelta(t, 0, angNormalize(fwd.Azi2-(rev.Azi1+180)), 1e-12)
		assert.InDelta(t, fwd.M12, rev.M21, 1e-14)
		assert.InDelta(t, fwd.M21, rev.M12, 1e-14)
		assert.InDelta(t, fwd.ReducedLength, rev.ReducedLength, 1e-6)
	}
}

func TestDirectInverseRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 2000; i++ {
		lat1 := rng.Float64()*180 - 90
		lon1 := rng.Float64()*360 - 180
		azi1 := rng.Float64()*360 - 180
		s12 := rng.Float64() * 18e6 // short of the cut locus
		d := WGS84.Direct(lat1, lon1, azi1, s12, Standard)
		inv := WGS84.Inverse(lat1, lon1, d.Lat2, d.Lon2, Standard)
		if !eqish(inv.S12, s12, 5) {
			t.Fatalf("round trip (%v %v %v %v): got s12 %v", lat1, lon1, azi1, s12, inv.S12)
		}
		assert.InDelta(t, d.A12, inv.A12, 1e-13)
	}
}

func TestDirectGeodSolve(t *testing.T) {
	r := WGS84.Direct(40.63972222, -73.77888889, 53.5, 5850e3, Standard)
	assert.InDelta(t, 49.01467, r.Lat2, 0.5e-5)
	assert.InDelta(t, 2.56106, r.Lon2, 0.5e-5)
	assert.InDelta(t, 111.62947, r.Azi2, 0.5e-5)

	// point 2 at the pole
	r = WGS84.Direct(0.01777745589997, 30, 0, 10e6, Standard)
	assert.InDelta(t, 90, r.Lat2, 0.5e-5)
	if r.Lon2 < 0 {
		assert.InDelta(t, -150, r.Lon2, 0.5e-5)
		assert.InDelta(t, 180, math.Abs(r.Azi2), 0.5e-5)
	} else {
		assert.InDelta(t, 30, r.Lon2, 0.5e-5)
		assert.InDelta(t, 0, r.Azi2, 0.5e-5)
	}

	r = WGS84.Direct(40, -75, -10, 2e7, Standard|LongUnroll)
	assert.InDelta(t, -39, r.Lat2, 1)
	assert.InDelta(t, -254, r.Lon2, 1)
	assert.InDelta(t, -170, r.Azi2, 1)
	r = WGS84.Direct(40, -75, -10, 2e7, Standard)
	assert.InDelta(t, -39, r.Lat2, 1)
	assert.InDelta(t, 105, r.Lon2, 1)
	assert.InDelta(t, -170, r.Azi2, 1)

	// small negative azimuths are west-going
	r = WGS84.Direct(45, 0, -0.000000000000000003, 1e7, Standard|LongUnroll)
	assert.InDelta(t, 45.30632, r.Lat2, 0.5e-5)
	assert.InDelta(t, -180, r.Lon2, 0.5e-5)
	assert.InDelta(t, 180, math.Abs(r.Azi2), 0.5e-5)

	// backwards from the pole
	r = WGS84.Direct(90, 10, 180, -1e6, Standard)
	assert.InDelta(t, 81.04623, r.Lat2, 0.5e-5)
	assert.InDelta(t, -170, r.Lon2, 0.5e-5)
	assert.InDelta(t, 0, r.Azi2, 0.5e-5)
}

func TestDirectZero(t *testing.T) {
	r := WGS84.Direct(12, 34, 56, 0, All)
	assert.InDelta(t, 12, r.Lat2, 1e-13)
	assert.InDelta(t, 34, r.Lon2, 1e-13)
	assert.InDelta(t, 56, r.Azi2, 1e-13)
	assert.InDelta(t, 0, r.A12, 1e-12)
	assert.InDelta(t, 0, r.ReducedLength, 1e-9)
	assert.InDelta(t, 1, r.M12, 1e-15)
	assert.InDelta(t, 0, r.Area, 1e-6)
}

func TestSpherical(t *testing.T) {

	if !Globe.Spherical() {
		t.Fatal()
	}
	if Globe.Flattening() != 0 {
		t.Fatal()
	}
	if wrap180(-181) != 179 {
		t.Fatal()
	}
	if wrap180(+181) != -179 {
		t.Fatal()
	}

	rng := rand.New(rand.NewSource(1))

	e := MustEllipsoid(Globe.Radius(), 0)
	for i := 0; i < 100_000; i++ {
		lat1 := rng.Float64()*180 - 90
		lon1 := rng.Float64()*360 - 180
		lat2 := rng.Float64()*180 - 90
		lon2 := rng.Float64()*360 - 180

		inv := e.Inverse(lat1, lon1, lat2, lon2, Standard)
		ret := Globe.Inverse(lat1, lon1, lat2, lon2, Standard)
		if !eqish(ret.S12, inv.S12, 4) ||
			!eqish(ret.Azi1, inv.Azi1, 4) ||
			!eqish(ret.Azi2, inv.Azi2, 4) {
			t.Fatalf("inverse failure (%f %f %f %f %f %f %f)",
				lat1, lon1, lat2, lon2, inv.S12, inv.Azi1, inv.Azi2)
		}
		ret = Globe.Direct(lat1, lon1, inv.Azi1, inv.S12, Standard)
		if !eqish(ret.Lat2, lat2, 4) ||
			!eqish(ret.Lon2, lon2, 4) ||
			!eqish(ret.Azi2, inv.Azi2, 4) {
			t.Fatalf("direct failure (%f %f %f %f %f %f %f)",
				lat1, lon1, lat2, lon2, inv.S12, inv.Azi1, inv.Azi2)
		}
	}
}

func TestSphericalFallback(t *testing.T) {
	// Area is beyond the great-circle formulas, so the full solver runs.
	r := Globe.Inverse(1, 2, 3, 4, Standard|Area)
	e := MustEllipsoid(Globe.Radius(), 0)
	want := e.Inverse(1, 2, 3, 4, Standard|Area)
	assert.Equal(t, want.Area, r.Area)
	assert.InDelta(t, want.S12, r.S12, 1e-6)

	d := Globe.Direct(0, 170, 90, 2e6, Standard|LongUnroll)
	assert.Greater(t, d.Lon2, 180.0)

	a := Globe.ArcDirect(0, 0, 90, 90, Standard)
	assert.InDelta(t, 90, a.Lon2, 1e-9)
	assert.InDelta(t, math.Pi/2*Globe.Radius(), a.S12, 1e-6)
	assert.Equal(t, 90.0, a.A12)
}
